package clinic

import (
	"net/http"

	"petclinic-api/internal/validation"
)

// listVetsHandler godoc
// @Summary Listar veterinarios
// @Description Con cached=true usa el listado cacheado (se invalida con cualquier escritura de vets o especialidades).
// @Tags vets
// @Produce json
// @Param cached query bool false "Usar el listado cacheado"
// @Success 200 {array} vetResponse
// @Failure 404 {string} string ""
// @Router /api/vets/ [get]
func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		find := svc.FindAllVets
		if r.URL.Query().Get("cached") == "true" {
			find = svc.FindVets
		}
		vets, err := find(r.Context())
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeList(w, mapAll(vets, toVetResponse))
	}
}

// getVetHandler godoc
// @Summary Obtener veterinario
// @Tags vets
// @Produce json
// @Param vetId path int true "ID del veterinario"
// @Success 200 {object} vetResponse
// @Failure 404 {string} string ""
// @Router /api/vets/{vetId} [get]
func getVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "vetId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		v, err := svc.FindVetByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, toVetResponse(v))
	}
}

func createVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodeBody[vetPayload](r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := validation.Create("vet", p.id(), p); errs.HasErrors() {
			validation.Respond(w, errs, p)
			return
		}

		v, err := svc.SaveVet(r.Context(), Vet{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Specialties: specialtyRefs(p.Specialties),
		})
		if err != nil {
			svc.writeError(w, r, err, p)
			return
		}
		writeCreated(w, "vets", v.ID, toVetResponse(v))
	}
}

// updateVetHandler reemplaza nombre y el set completo de especialidades.
func updateVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "vetId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		p, err := decodeBody[vetPayload](r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := validation.Update("vet", id, p.id(), p); errs.HasErrors() {
			validation.Respond(w, errs, p)
			return
		}

		current, err := svc.FindVetByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		current.FirstName = p.FirstName
		current.LastName = p.LastName
		current.Specialties = specialtyRefs(p.Specialties)

		if _, err := svc.SaveVet(r.Context(), current); err != nil {
			svc.writeError(w, r, err, p)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "vetId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		v, err := svc.FindVetByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		if err := svc.DeleteVet(r.Context(), v); err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// specialtyRefs arma especialidades solo con id; la fachada completa el nombre.
func specialtyRefs(refs []entityRef) []Specialty {
	out := make([]Specialty, 0, len(refs))
	for i := range refs {
		out = append(out, Specialty{ID: refs[i].value()})
	}
	return out
}
