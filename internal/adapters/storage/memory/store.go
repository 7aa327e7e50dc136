package memory

import (
	"context"
	"sort"
	"sync"

	"petclinic-api/internal/domain/clinic"
)

// Store guarda todo en memoria. Cada tx trabaja sobre una copia del
// dataset y la publica solo si fn termina sin error. Un único mutex
// serializa las transacciones.
type Store struct {
	mu   sync.Mutex
	data *dataset
}

func NewStore() *Store {
	return &Store{data: newDataset()}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx clinic.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(ctx, &memTx{d: work}); err != nil {
		return err
	}
	s.data = work
	return nil
}

// table es un mapa id -> fila con secuencia propia.
type table[T any] struct {
	rows map[int]T
	seq  int
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int]T)}
}

func (t *table[T]) clone() *table[T] {
	out := &table[T]{rows: make(map[int]T, len(t.rows)), seq: t.seq}
	for k, v := range t.rows {
		out.rows[k] = v
	}
	return out
}

// assign devuelve el id a usar: genera uno si id == 0.
func (t *table[T]) assign(id int) int {
	if id == 0 {
		t.seq++
		return t.seq
	}
	if id > t.seq {
		t.seq = id
	}
	return id
}

func (t *table[T]) get(id int) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

// list devuelve las filas que cumplen keep, ordenadas por id.
func (t *table[T]) list(keep func(T) bool) []T {
	ids := make([]int, 0, len(t.rows))
	for id, v := range t.rows {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

type vetRow struct {
	ID           int
	FirstName    string
	LastName     string
	SpecialtyIDs []int
}

type dataset struct {
	owners      *table[clinic.Owner]
	pets        *table[clinic.Pet]
	petTypes    *table[clinic.PetType]
	visits      *table[clinic.Visit]
	vets        *table[vetRow]
	specialties *table[clinic.Specialty]
}

func newDataset() *dataset {
	return &dataset{
		owners:      newTable[clinic.Owner](),
		pets:        newTable[clinic.Pet](),
		petTypes:    newTable[clinic.PetType](),
		visits:      newTable[clinic.Visit](),
		vets:        newTable[vetRow](),
		specialties: newTable[clinic.Specialty](),
	}
}

// clone es superficial por fila: las filas no se mutan in place.
func (d *dataset) clone() *dataset {
	return &dataset{
		owners:      d.owners.clone(),
		pets:        d.pets.clone(),
		petTypes:    d.petTypes.clone(),
		visits:      d.visits.clone(),
		vets:        d.vets.clone(),
		specialties: d.specialties.clone(),
	}
}

type memTx struct {
	d *dataset
}

func (tx *memTx) Owners() clinic.OwnerRepository          { return ownerRepo{d: tx.d} }
func (tx *memTx) Pets() clinic.PetRepository              { return petRepo{d: tx.d} }
func (tx *memTx) PetTypes() clinic.PetTypeRepository      { return petTypeRepo{d: tx.d} }
func (tx *memTx) Visits() clinic.VisitRepository          { return visitRepo{d: tx.d} }
func (tx *memTx) Vets() clinic.VetRepository              { return vetRepo{d: tx.d} }
func (tx *memTx) Specialties() clinic.SpecialtyRepository { return specialtyRepo{d: tx.d} }
