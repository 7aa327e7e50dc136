package clinic

import (
	"net/http"

	"petclinic-api/internal/validation"

	"github.com/go-chi/chi/v5"
)

// listOwnersHandler godoc
// @Summary Listar owners
// @Description Devuelve todos los owners con sus mascotas. 404 si no hay ninguno.
// @Tags owners
// @Produce json
// @Param X-Debug-Roles header string false "Solo en modo dev, roles separados por coma"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} ownerResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string ""
// @Router /api/owners/ [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owners, err := svc.FindAllOwners(r.Context())
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeList(w, mapAll(owners, toOwnerResponse))
	}
}

// ownersByLastNameHandler godoc
// @Summary Buscar owners por apellido
// @Description Coincidencia por prefijo del apellido. 404 si no hay resultados.
// @Tags owners
// @Produce json
// @Param lastName path string true "Apellido o prefijo"
// @Success 200 {array} ownerResponse
// @Failure 404 {string} string ""
// @Router /api/owners/*/lastname/{lastName} [get]
func ownersByLastNameHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "ownerId") != "*" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		owners, err := svc.FindOwnersByLastName(r.Context(), chi.URLParam(r, "lastName"))
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeList(w, mapAll(owners, toOwnerResponse))
	}
}

// getOwnerHandler godoc
// @Summary Obtener owner
// @Tags owners
// @Produce json
// @Param ownerId path int true "ID del owner"
// @Success 200 {object} ownerResponse
// @Failure 404 {string} string ""
// @Router /api/owners/{ownerId} [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "ownerId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		o, err := svc.FindOwnerByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// createOwnerHandler godoc
// @Summary Crear owner
// @Description El body no debe traer id. Errores de validación en el header `errors` y en el body.
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body ownerPayload true "Owner"
// @Success 201 {object} ownerResponse
// @Failure 400 {object} validation.FieldError
// @Router /api/owners/ [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodeBody[ownerPayload](r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := validation.Create("owner", p.id(), p); errs.HasErrors() {
			validation.Respond(w, errs, p)
			return
		}

		o, err := svc.SaveOwner(r.Context(), Owner{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Address:   p.Address,
			City:      p.City,
			Telephone: p.Telephone,
		})
		if err != nil {
			svc.writeError(w, r, err, p)
			return
		}
		writeCreated(w, "owners", o.ID, toOwnerResponse(o))
	}
}

// updateOwnerHandler godoc
// @Summary Actualizar owner
// @Description Reemplazo completo. Si el body trae id debe coincidir con el del path.
// @Tags owners
// @Accept json
// @Param ownerId path int true "ID del owner"
// @Param payload body ownerPayload true "Owner"
// @Success 204
// @Failure 400 {object} validation.FieldError
// @Failure 404 {string} string ""
// @Router /api/owners/{ownerId} [put]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "ownerId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		p, err := decodeBody[ownerPayload](r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := validation.Update("owner", id, p.id(), p); errs.HasErrors() {
			validation.Respond(w, errs, p)
			return
		}

		current, err := svc.FindOwnerByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		current.FirstName = p.FirstName
		current.LastName = p.LastName
		current.Address = p.Address
		current.City = p.City
		current.Telephone = p.Telephone

		if _, err := svc.SaveOwner(r.Context(), current); err != nil {
			svc.writeError(w, r, err, p)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteOwnerHandler godoc
// @Summary Borrar owner
// @Description Borra también sus mascotas y las visitas de esas mascotas.
// @Tags owners
// @Param ownerId path int true "ID del owner"
// @Success 204
// @Failure 404 {string} string ""
// @Router /api/owners/{ownerId} [delete]
func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "ownerId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		o, err := svc.FindOwnerByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		if err := svc.DeleteOwner(r.Context(), o); err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
