package clinic

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"petclinic-api/internal/middleware"
	"petclinic-api/internal/ports/auth"
	"petclinic-api/internal/validation"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

var errTrailingData = errors.New("unexpected data after json value")

// RegisterRoutes monta /api/{owners,pets,pettypes,specialties,vets,visits}.
// Cada grupo exige su set de roles antes de llegar al handler.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/owners", func(or chi.Router) {
		or.Use(middleware.RequireRole(auth.RoleOwnerAdmin))

		or.Get("/", listOwnersHandler(svc))
		or.Post("/", createOwnerHandler(svc))
		or.Get("/{ownerId}", getOwnerHandler(svc))
		or.Put("/{ownerId}", updateOwnerHandler(svc))
		or.Delete("/{ownerId}", deleteOwnerHandler(svc))

		// /api/owners/*/lastname/{lastName}: el segmento comodín comparte
		// nombre de param con {ownerId} para no chocar en el árbol de chi.
		or.Get("/{ownerId}/lastname/{lastName}", ownersByLastNameHandler(svc))
	})

	r.Route("/api/pets", func(pr chi.Router) {
		pr.Use(middleware.RequireRole(auth.RoleOwnerAdmin))

		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Get("/pettypes", cachedPetTypesHandler(svc))
		pr.Get("/{petId}", getPetHandler(svc))
		pr.Put("/{petId}", updatePetHandler(svc))
		pr.Delete("/{petId}", deletePetHandler(svc))
		pr.Get("/{petId}/visits", listPetVisitsHandler(svc))
	})

	r.Route("/api/pettypes", func(tr chi.Router) {
		read := middleware.RequireRole(auth.RoleOwnerAdmin, auth.RoleVetAdmin)
		tr.With(read).Get("/", listPetTypesHandler(svc))
		tr.With(read).Get("/{petTypeId}", getPetTypeHandler(svc))

		tr.Group(func(wr chi.Router) {
			wr.Use(middleware.RequireRole(auth.RoleVetAdmin))
			wr.Post("/", createPetTypeHandler(svc))
			wr.Put("/{petTypeId}", updatePetTypeHandler(svc))
			wr.Delete("/{petTypeId}", deletePetTypeHandler(svc))
		})
	})

	r.Route("/api/specialties", func(sr chi.Router) {
		sr.Use(middleware.RequireRole(auth.RoleVetAdmin))

		sr.Get("/", listSpecialtiesHandler(svc))
		sr.Post("/", createSpecialtyHandler(svc))
		sr.Get("/{specialtyId}", getSpecialtyHandler(svc))
		sr.Put("/{specialtyId}", updateSpecialtyHandler(svc))
		sr.Delete("/{specialtyId}", deleteSpecialtyHandler(svc))
	})

	r.Route("/api/vets", func(vr chi.Router) {
		vr.Use(middleware.RequireRole(auth.RoleVetAdmin))

		vr.Get("/", listVetsHandler(svc))
		vr.Post("/", createVetHandler(svc))
		vr.Get("/{vetId}", getVetHandler(svc))
		vr.Put("/{vetId}", updateVetHandler(svc))
		vr.Delete("/{vetId}", deleteVetHandler(svc))
	})

	r.Route("/api/visits", func(vr chi.Router) {
		vr.Use(middleware.RequireRole(auth.RoleOwnerAdmin))

		vr.Get("/", listVisitsHandler(svc))
		vr.Post("/", createVisitHandler(svc))
		vr.Get("/{visitId}", getVisitHandler(svc))
		vr.Put("/{visitId}", updateVisitHandler(svc))
		vr.Delete("/{visitId}", deleteVisitHandler(svc))
	})
}

// pathID parsea el id del path. No numérico o negativo => not found.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// decodeBody devuelve nil (sin error) para body vacío o "null";
// la validación lo reporta como "must not be null".
// Cualquier dato después del primer valor JSON es error.
func decodeBody[T any](r *http.Request) (*T, error) {
	var p *T
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if dec.More() {
		return nil, errTrailingData
	}
	return p, nil
}

// writeError traduce errores de la fachada a status HTTP.
func (s *Service) writeError(w http.ResponseWriter, r *http.Request, err error, entity any) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		validation.Respond(w, verrs, entity)
	case errors.Is(err, ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		s.log.Error("request failed", map[string]any{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": chimw.GetReqID(r.Context()),
			"err":        err,
		})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeList responde 404 si la colección está vacía.
func writeList[T any](w http.ResponseWriter, items []T) {
	if len(items) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func writeCreated(w http.ResponseWriter, kind string, id int, body any) {
	w.Header().Set("Location", fmt.Sprintf("/api/%s/%d", kind, id))
	writeJSON(w, http.StatusCreated, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
