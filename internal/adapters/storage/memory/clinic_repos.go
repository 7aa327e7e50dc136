package memory

import (
	"context"
	"slices"
	"strings"

	"petclinic-api/internal/domain/clinic"
)

type ownerRepo struct{ d *dataset }

func (r ownerRepo) FindByID(_ context.Context, id int) (clinic.Owner, bool, error) {
	o, ok := r.d.owners.get(id)
	return o, ok, nil
}

func (r ownerRepo) FindAll(_ context.Context) ([]clinic.Owner, error) {
	return r.d.owners.list(nil), nil
}

func (r ownerRepo) FindByLastName(_ context.Context, prefix string) ([]clinic.Owner, error) {
	return r.d.owners.list(func(o clinic.Owner) bool {
		return strings.HasPrefix(o.LastName, prefix)
	}), nil
}

func (r ownerRepo) Save(_ context.Context, o clinic.Owner) (clinic.Owner, error) {
	o.ID = r.d.owners.assign(o.ID)
	o.Pets = nil
	r.d.owners.rows[o.ID] = o
	return o, nil
}

func (r ownerRepo) Delete(_ context.Context, id int) error {
	delete(r.d.owners.rows, id)
	return nil
}

type petRepo struct{ d *dataset }

func (r petRepo) FindByID(_ context.Context, id int) (clinic.Pet, bool, error) {
	p, ok := r.d.pets.get(id)
	return p, ok, nil
}

func (r petRepo) FindAll(_ context.Context) ([]clinic.Pet, error) {
	return r.d.pets.list(nil), nil
}

func (r petRepo) FindByOwner(_ context.Context, ownerID int) ([]clinic.Pet, error) {
	return r.d.pets.list(func(p clinic.Pet) bool { return p.OwnerID == ownerID }), nil
}

func (r petRepo) FindByType(_ context.Context, typeID int) ([]clinic.Pet, error) {
	return r.d.pets.list(func(p clinic.Pet) bool { return p.TypeID == typeID }), nil
}

func (r petRepo) Save(_ context.Context, p clinic.Pet) (clinic.Pet, error) {
	p.ID = r.d.pets.assign(p.ID)
	p.Type = nil
	p.Owner = nil
	p.Visits = nil
	r.d.pets.rows[p.ID] = p
	return p, nil
}

func (r petRepo) Delete(_ context.Context, id int) error {
	delete(r.d.pets.rows, id)
	return nil
}

type petTypeRepo struct{ d *dataset }

func (r petTypeRepo) FindByID(_ context.Context, id int) (clinic.PetType, bool, error) {
	t, ok := r.d.petTypes.get(id)
	return t, ok, nil
}

func (r petTypeRepo) FindAll(_ context.Context) ([]clinic.PetType, error) {
	return r.d.petTypes.list(nil), nil
}

func (r petTypeRepo) Save(_ context.Context, t clinic.PetType) (clinic.PetType, error) {
	t.ID = r.d.petTypes.assign(t.ID)
	r.d.petTypes.rows[t.ID] = t
	return t, nil
}

func (r petTypeRepo) Delete(_ context.Context, id int) error {
	delete(r.d.petTypes.rows, id)
	return nil
}

type visitRepo struct{ d *dataset }

func (r visitRepo) FindByID(_ context.Context, id int) (clinic.Visit, bool, error) {
	v, ok := r.d.visits.get(id)
	return v, ok, nil
}

func (r visitRepo) FindAll(_ context.Context) ([]clinic.Visit, error) {
	return r.d.visits.list(nil), nil
}

func (r visitRepo) FindByPet(_ context.Context, petID int) ([]clinic.Visit, error) {
	return r.d.visits.list(func(v clinic.Visit) bool { return v.PetID == petID }), nil
}

func (r visitRepo) Save(_ context.Context, v clinic.Visit) (clinic.Visit, error) {
	v.ID = r.d.visits.assign(v.ID)
	v.Pet = nil
	r.d.visits.rows[v.ID] = v
	return v, nil
}

func (r visitRepo) Delete(_ context.Context, id int) error {
	delete(r.d.visits.rows, id)
	return nil
}

type vetRepo struct{ d *dataset }

// toVet resuelve los nombres de las especialidades vinculadas.
func (r vetRepo) toVet(row vetRow) clinic.Vet {
	v := clinic.Vet{ID: row.ID, FirstName: row.FirstName, LastName: row.LastName}
	for _, id := range row.SpecialtyIDs {
		if sp, ok := r.d.specialties.get(id); ok {
			v.AddSpecialty(sp)
		}
	}
	return v
}

func (r vetRepo) FindByID(_ context.Context, id int) (clinic.Vet, bool, error) {
	row, ok := r.d.vets.get(id)
	if !ok {
		return clinic.Vet{}, false, nil
	}
	return r.toVet(row), true, nil
}

func (r vetRepo) FindAll(_ context.Context) ([]clinic.Vet, error) {
	rows := r.d.vets.list(nil)
	out := make([]clinic.Vet, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.toVet(row))
	}
	return out, nil
}

func (r vetRepo) Save(_ context.Context, v clinic.Vet) (clinic.Vet, error) {
	v.ID = r.d.vets.assign(v.ID)
	r.d.vets.rows[v.ID] = vetRow{
		ID:           v.ID,
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		SpecialtyIDs: v.SpecialtyIDs(),
	}
	return r.toVet(r.d.vets.rows[v.ID]), nil
}

func (r vetRepo) Delete(_ context.Context, id int) error {
	delete(r.d.vets.rows, id)
	return nil
}

func (r vetRepo) UnlinkSpecialty(_ context.Context, specialtyID int) error {
	for id, row := range r.d.vets.rows {
		if !slices.Contains(row.SpecialtyIDs, specialtyID) {
			continue
		}
		// copia nueva: la fila original puede estar compartida con el snapshot previo
		row.SpecialtyIDs = slices.DeleteFunc(slices.Clone(row.SpecialtyIDs), func(s int) bool {
			return s == specialtyID
		})
		r.d.vets.rows[id] = row
	}
	return nil
}

type specialtyRepo struct{ d *dataset }

func (r specialtyRepo) FindByID(_ context.Context, id int) (clinic.Specialty, bool, error) {
	sp, ok := r.d.specialties.get(id)
	return sp, ok, nil
}

func (r specialtyRepo) FindAll(_ context.Context) ([]clinic.Specialty, error) {
	return r.d.specialties.list(nil), nil
}

func (r specialtyRepo) Save(_ context.Context, sp clinic.Specialty) (clinic.Specialty, error) {
	sp.ID = r.d.specialties.assign(sp.ID)
	r.d.specialties.rows[sp.ID] = sp
	return sp, nil
}

func (r specialtyRepo) Delete(_ context.Context, id int) error {
	delete(r.d.specialties.rows, id)
	return nil
}
