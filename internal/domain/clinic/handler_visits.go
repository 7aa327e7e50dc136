package clinic

import (
	"net/http"

	"petclinic-api/internal/validation"
)

// listVisitsHandler godoc
// @Summary Listar visitas
// @Tags visits
// @Produce json
// @Success 200 {array} visitResponse
// @Failure 404 {string} string ""
// @Router /api/visits/ [get]
func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visits, err := svc.FindAllVisits(r.Context())
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeList(w, mapAll(visits, toVisitResponse))
	}
}

// getVisitHandler godoc
// @Summary Obtener visita
// @Tags visits
// @Produce json
// @Param visitId path int true "ID de la visita"
// @Success 200 {object} visitResponse
// @Failure 404 {string} string ""
// @Router /api/visits/{visitId} [get]
func getVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "visitId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		v, err := svc.FindVisitByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, toVisitResponse(v))
	}
}

// createVisitHandler godoc
// @Summary Registrar visita
// @Description pet.id es obligatorio y debe existir. Sin date se usa el día actual.
// @Tags visits
// @Accept json
// @Produce json
// @Param payload body visitPayload true "Visita; date en formato yyyy/MM/dd"
// @Success 201 {object} visitResponse
// @Failure 400 {object} validation.FieldError
// @Router /api/visits/ [post]
func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodeBody[visitPayload](r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := validation.Create("visit", p.id(), p); errs.HasErrors() {
			validation.Respond(w, errs, p)
			return
		}

		v, err := svc.SaveVisit(r.Context(), Visit{
			Date:        p.Date,
			Description: p.Description,
			PetID:       p.Pet.value(),
		})
		if err != nil {
			svc.writeError(w, r, err, p)
			return
		}
		writeCreated(w, "visits", v.ID, toVisitResponse(v))
	}
}

// updateVisitHandler godoc
// @Summary Actualizar visita
// @Tags visits
// @Accept json
// @Param visitId path int true "ID de la visita"
// @Param payload body visitPayload true "Visita"
// @Success 204
// @Failure 400 {object} validation.FieldError
// @Failure 404 {string} string ""
// @Router /api/visits/{visitId} [put]
func updateVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "visitId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		p, err := decodeBody[visitPayload](r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := validation.Update("visit", id, p.id(), p); errs.HasErrors() {
			validation.Respond(w, errs, p)
			return
		}

		current, err := svc.FindVisitByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		current.Date = p.Date
		current.Description = p.Description
		current.PetID = p.Pet.value()

		if _, err := svc.SaveVisit(r.Context(), current); err != nil {
			svc.writeError(w, r, err, p)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteVisitHandler godoc
// @Summary Borrar visita
// @Tags visits
// @Param visitId path int true "ID de la visita"
// @Success 204
// @Failure 404 {string} string ""
// @Router /api/visits/{visitId} [delete]
func deleteVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "visitId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		v, err := svc.FindVisitByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		if err := svc.DeleteVisit(r.Context(), v); err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
