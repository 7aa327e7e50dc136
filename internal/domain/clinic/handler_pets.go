package clinic

import (
	"net/http"

	"petclinic-api/internal/validation"
)

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 404 {string} string ""
// @Router /api/pets/ [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pets, err := svc.FindAllPets(r.Context())
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeList(w, mapAll(pets, toPetResponse))
	}
}

// cachedPetTypesHandler godoc
// @Summary Tipos de mascota (cacheado)
// @Description Responde 200 aunque la lista esté vacía.
// @Tags pets
// @Produce json
// @Success 200 {array} petTypeResponse
// @Router /api/pets/pettypes [get]
func cachedPetTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := svc.FindPetTypes(r.Context())
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, mapAll(types, toPetTypeResponse))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petId path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {string} string ""
// @Router /api/pets/{petId} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "petId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		p, err := svc.FindPetByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// listPetVisitsHandler godoc
// @Summary Visitas de una mascota
// @Tags pets
// @Produce json
// @Param petId path int true "ID de la mascota"
// @Success 200 {array} visitResponse
// @Failure 404 {string} string ""
// @Router /api/pets/{petId}/visits [get]
func listPetVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "petId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		visits, err := svc.FindVisitsByPetID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeList(w, mapAll(visits, toVisitResponse))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description owner.id es obligatorio y debe existir. type es opcional.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body petPayload true "Mascota; birthDate en formato yyyy/MM/dd"
// @Success 201 {object} petResponse
// @Failure 400 {object} validation.FieldError
// @Router /api/pets/ [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodeBody[petPayload](r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := validation.Create("pet", p.id(), p); errs.HasErrors() {
			validation.Respond(w, errs, p)
			return
		}

		pet, err := svc.SavePet(r.Context(), Pet{
			Name:      p.Name,
			BirthDate: p.BirthDate,
			TypeID:    p.Type.value(),
			OwnerID:   p.Owner.value(),
		})
		if err != nil {
			svc.writeError(w, r, err, p)
			return
		}
		writeCreated(w, "pets", pet.ID, toPetResponse(pet))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Tags pets
// @Accept json
// @Param petId path int true "ID de la mascota"
// @Param payload body petPayload true "Mascota"
// @Success 204
// @Failure 400 {object} validation.FieldError
// @Failure 404 {string} string ""
// @Router /api/pets/{petId} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "petId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		p, err := decodeBody[petPayload](r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := validation.Update("pet", id, p.id(), p); errs.HasErrors() {
			validation.Respond(w, errs, p)
			return
		}

		current, err := svc.FindPetByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		current.Name = p.Name
		current.BirthDate = p.BirthDate
		current.TypeID = p.Type.value()
		current.OwnerID = p.Owner.value()

		if _, err := svc.SavePet(r.Context(), current); err != nil {
			svc.writeError(w, r, err, p)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra también sus visitas.
// @Tags pets
// @Param petId path int true "ID de la mascota"
// @Success 204
// @Failure 404 {string} string ""
// @Router /api/pets/{petId} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "petId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		p, err := svc.FindPetByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		if err := svc.DeletePet(r.Context(), p); err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
