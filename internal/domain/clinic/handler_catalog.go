package clinic

import (
	"net/http"

	"petclinic-api/internal/validation"
)

// Catálogos: tipos de mascota y especialidades. Misma forma {id, name}.

func listPetTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := svc.FindAllPetTypes(r.Context())
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeList(w, mapAll(types, toPetTypeResponse))
	}
}

func getPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "petTypeId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		t, err := svc.FindPetTypeByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, toPetTypeResponse(t))
	}
}

func createPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodeBody[namedPayload](r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := validation.Create("petType", p.id(), p); errs.HasErrors() {
			validation.Respond(w, errs, p)
			return
		}
		t, err := svc.SavePetType(r.Context(), PetType{Name: p.Name})
		if err != nil {
			svc.writeError(w, r, err, p)
			return
		}
		writeCreated(w, "pettypes", t.ID, toPetTypeResponse(t))
	}
}

func updatePetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "petTypeId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		p, err := decodeBody[namedPayload](r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := validation.Update("petType", id, p.id(), p); errs.HasErrors() {
			validation.Respond(w, errs, p)
			return
		}
		current, err := svc.FindPetTypeByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		current.Name = p.Name
		if _, err := svc.SavePetType(r.Context(), current); err != nil {
			svc.writeError(w, r, err, p)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deletePetTypeHandler borra también las mascotas de ese tipo.
func deletePetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "petTypeId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		t, err := svc.FindPetTypeByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		if err := svc.DeletePetType(r.Context(), t); err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listSpecialtiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		specs, err := svc.FindAllSpecialties(r.Context())
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeList(w, mapAll(specs, toSpecialtyResponse))
	}
}

func getSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "specialtyId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		sp, err := svc.FindSpecialtyByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, toSpecialtyResponse(sp))
	}
}

func createSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodeBody[namedPayload](r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := validation.Create("specialty", p.id(), p); errs.HasErrors() {
			validation.Respond(w, errs, p)
			return
		}
		sp, err := svc.SaveSpecialty(r.Context(), Specialty{Name: p.Name})
		if err != nil {
			svc.writeError(w, r, err, p)
			return
		}
		writeCreated(w, "specialties", sp.ID, toSpecialtyResponse(sp))
	}
}

func updateSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "specialtyId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		p, err := decodeBody[namedPayload](r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := validation.Update("specialty", id, p.id(), p); errs.HasErrors() {
			validation.Respond(w, errs, p)
			return
		}
		current, err := svc.FindSpecialtyByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		current.Name = p.Name
		if _, err := svc.SaveSpecialty(r.Context(), current); err != nil {
			svc.writeError(w, r, err, p)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteSpecialtyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "specialtyId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		sp, err := svc.FindSpecialtyByID(r.Context(), id)
		if err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		if err := svc.DeleteSpecialty(r.Context(), sp); err != nil {
			svc.writeError(w, r, err, nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
