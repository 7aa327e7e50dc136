package clinic

import "context"

// Store abre unidades de trabajo. Lo que fn escribe es visible para
// lecturas posteriores dentro del mismo tx; si fn devuelve error no
// se aplica nada.
type Store interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx expone un repositorio por tipo de entidad, todos sobre el mismo snapshot.
type Tx interface {
	Owners() OwnerRepository
	Pets() PetRepository
	PetTypes() PetTypeRepository
	Visits() VisitRepository
	Vets() VetRepository
	Specialties() SpecialtyRepository
}

// Los FindByID devuelven found=false (sin error) cuando el id no existe.
// Un error no nil es siempre una falla del store.
// Save inserta con id generado si ID == 0; si no, reemplaza el registro completo.
// Los listados vienen ordenados por id.

type OwnerRepository interface {
	FindByID(ctx context.Context, id int) (Owner, bool, error)
	FindAll(ctx context.Context) ([]Owner, error)
	FindByLastName(ctx context.Context, prefix string) ([]Owner, error)
	Save(ctx context.Context, o Owner) (Owner, error)
	Delete(ctx context.Context, id int) error
}

type PetRepository interface {
	FindByID(ctx context.Context, id int) (Pet, bool, error)
	FindAll(ctx context.Context) ([]Pet, error)
	FindByOwner(ctx context.Context, ownerID int) ([]Pet, error)
	FindByType(ctx context.Context, typeID int) ([]Pet, error)
	Save(ctx context.Context, p Pet) (Pet, error)
	Delete(ctx context.Context, id int) error
}

type PetTypeRepository interface {
	FindByID(ctx context.Context, id int) (PetType, bool, error)
	FindAll(ctx context.Context) ([]PetType, error)
	Save(ctx context.Context, t PetType) (PetType, error)
	Delete(ctx context.Context, id int) error
}

type VisitRepository interface {
	FindByID(ctx context.Context, id int) (Visit, bool, error)
	FindAll(ctx context.Context) ([]Visit, error)
	FindByPet(ctx context.Context, petID int) ([]Visit, error)
	Save(ctx context.Context, v Visit) (Visit, error)
	Delete(ctx context.Context, id int) error
}

// VetRepository persiste el vet junto con sus vínculos a especialidades.
// Las especialidades se devuelven con nombre.
type VetRepository interface {
	FindByID(ctx context.Context, id int) (Vet, bool, error)
	FindAll(ctx context.Context) ([]Vet, error)
	Save(ctx context.Context, v Vet) (Vet, error)
	Delete(ctx context.Context, id int) error
	UnlinkSpecialty(ctx context.Context, specialtyID int) error
}

type SpecialtyRepository interface {
	FindByID(ctx context.Context, id int) (Specialty, bool, error)
	FindAll(ctx context.Context) ([]Specialty, error)
	Save(ctx context.Context, s Specialty) (Specialty, error)
	Delete(ctx context.Context, id int) error
}
