package clinic

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"petclinic-api/internal/platform/logger"
	"petclinic-api/internal/validation"
)

var ErrNotFound = errors.New("not found")

// LookupPolicy decide qué hacer cuando el store falla en una búsqueda por id.
type LookupPolicy string

const (
	// LookupMask trata la falla como not-found y la loguea en warn.
	LookupMask LookupPolicy = "mask"
	// LookupPropagate devuelve la falla al caller (500).
	LookupPropagate LookupPolicy = "propagate"
)

func ParseLookupPolicy(s string) (LookupPolicy, error) {
	switch p := LookupPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return LookupMask, nil
	case LookupMask, LookupPropagate:
		return p, nil
	default:
		return "", fmt.Errorf("unknown lookup policy %q", s)
	}
}

// Service es la fachada de la clínica: un método por caso de uso,
// cada uno dentro de su propia unidad de trabajo.
type Service struct {
	store  Store
	cache  *KindCache
	log    logger.Logger
	lookup LookupPolicy
	now    func() time.Time
}

type Option func(*Service)

func WithLogger(l logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithLookupPolicy(p LookupPolicy) Option {
	return func(s *Service) { s.lookup = p }
}

func WithCache(c *KindCache) Option {
	return func(s *Service) { s.cache = c }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		log:    logger.Nop(),
		lookup: LookupMask,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		// tamaño fijo > 0: no puede fallar
		s.cache, _ = NewKindCache(8)
	}
	return s
}

// lookupErr normaliza el error de una búsqueda por id según la política.
func (s *Service) lookupErr(kind string, id int, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	case s.lookup == LookupPropagate:
		return fmt.Errorf("find %s %d: %w", kind, id, err)
	}
	s.log.Warn("lookup failed, answering not found", map[string]any{
		"kind": kind,
		"id":   id,
		"err":  err,
	})
	return ErrNotFound
}

// checkRef anota un error "does not exist" si la referencia no está.
func checkRef(errs *validation.Errors, object, field string, id int, found bool, err error) error {
	if err != nil {
		return fmt.Errorf("check %s %s: %w", object, field, err)
	}
	if !found {
		errs.Add(object, field, id, validation.MsgDoesNotExist)
	}
	return nil
}

// ---- Owners ----

func (s *Service) FindOwnerByID(ctx context.Context, id int) (Owner, error) {
	var out Owner
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		o, found, err := tx.Owners().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		if o.Pets, err = loadOwnerPets(ctx, tx, o.ID); err != nil {
			return err
		}
		out = o
		return nil
	})
	return out, s.lookupErr("owner", id, err)
}

func (s *Service) FindAllOwners(ctx context.Context) ([]Owner, error) {
	var out []Owner
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		owners, err := tx.Owners().FindAll(ctx)
		if err != nil {
			return err
		}
		out, err = withPets(ctx, tx, owners)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("find all owners: %w", err)
	}
	return out, nil
}

// FindOwnersByLastName busca por prefijo de apellido.
func (s *Service) FindOwnersByLastName(ctx context.Context, lastName string) ([]Owner, error) {
	var out []Owner
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		owners, err := tx.Owners().FindByLastName(ctx, lastName)
		if err != nil {
			return err
		}
		out, err = withPets(ctx, tx, owners)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("find owners by last name: %w", err)
	}
	return out, nil
}

func (s *Service) SaveOwner(ctx context.Context, o Owner) (Owner, error) {
	var out Owner
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		saved, err := tx.Owners().Save(ctx, o)
		if err != nil {
			return fmt.Errorf("save owner: %w", err)
		}
		if saved.Pets, err = loadOwnerPets(ctx, tx, saved.ID); err != nil {
			return err
		}
		out = saved
		return nil
	})
	return out, err
}

// DeleteOwner borra el owner, sus mascotas y las visitas de esas mascotas.
func (s *Service) DeleteOwner(ctx context.Context, o Owner) error {
	return s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		pets, err := tx.Pets().FindByOwner(ctx, o.ID)
		if err != nil {
			return err
		}
		for _, p := range pets {
			if err := deletePetCascade(ctx, tx, p.ID); err != nil {
				return err
			}
		}
		if err := tx.Owners().Delete(ctx, o.ID); err != nil {
			return fmt.Errorf("delete owner %d: %w", o.ID, err)
		}
		return nil
	})
}

func withPets(ctx context.Context, tx Tx, owners []Owner) ([]Owner, error) {
	for i := range owners {
		pets, err := loadOwnerPets(ctx, tx, owners[i].ID)
		if err != nil {
			return nil, err
		}
		owners[i].Pets = pets
	}
	return owners, nil
}

func loadOwnerPets(ctx context.Context, tx Tx, ownerID int) ([]Pet, error) {
	pets, err := tx.Pets().FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range pets {
		if err := fillPet(ctx, tx, &pets[i]); err != nil {
			return nil, err
		}
	}
	return pets, nil
}

// fillPet carga el tipo, el owner y las visitas de p.
func fillPet(ctx context.Context, tx Tx, p *Pet) error {
	if err := fillPetRefs(ctx, tx, p); err != nil {
		return err
	}
	visits, err := tx.Visits().FindByPet(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Visits = visits
	return nil
}

// fillPetRefs carga tipo y owner (sin sus mascotas).
func fillPetRefs(ctx context.Context, tx Tx, p *Pet) error {
	p.Type, p.Owner = nil, nil
	if p.TypeID != 0 {
		t, found, err := tx.PetTypes().FindByID(ctx, p.TypeID)
		if err != nil {
			return err
		}
		if found {
			p.Type = &t
		}
	}
	o, found, err := tx.Owners().FindByID(ctx, p.OwnerID)
	if err != nil {
		return err
	}
	if found {
		o.Pets = nil
		p.Owner = &o
	}
	return nil
}

// fillVisit carga la mascota de v, sin sus visitas.
func fillVisit(ctx context.Context, tx Tx, v *Visit) error {
	v.Pet = nil
	p, found, err := tx.Pets().FindByID(ctx, v.PetID)
	if err != nil || !found {
		return err
	}
	if err := fillPetRefs(ctx, tx, &p); err != nil {
		return err
	}
	v.Pet = &p
	return nil
}

func fillVisits(ctx context.Context, tx Tx, visits []Visit) error {
	for i := range visits {
		if err := fillVisit(ctx, tx, &visits[i]); err != nil {
			return err
		}
	}
	return nil
}

func deletePetCascade(ctx context.Context, tx Tx, petID int) error {
	visits, err := tx.Visits().FindByPet(ctx, petID)
	if err != nil {
		return err
	}
	for _, v := range visits {
		if err := tx.Visits().Delete(ctx, v.ID); err != nil {
			return fmt.Errorf("delete visit %d: %w", v.ID, err)
		}
	}
	if err := tx.Pets().Delete(ctx, petID); err != nil {
		return fmt.Errorf("delete pet %d: %w", petID, err)
	}
	return nil
}

// ---- Pets ----

func (s *Service) FindPetByID(ctx context.Context, id int) (Pet, error) {
	var out Pet
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		p, found, err := tx.Pets().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		if err := fillPet(ctx, tx, &p); err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, s.lookupErr("pet", id, err)
}

func (s *Service) FindAllPets(ctx context.Context) ([]Pet, error) {
	var out []Pet
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		pets, err := tx.Pets().FindAll(ctx)
		if err != nil {
			return err
		}
		for i := range pets {
			if err := fillPet(ctx, tx, &pets[i]); err != nil {
				return err
			}
		}
		out = pets
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find all pets: %w", err)
	}
	return out, nil
}

// SavePet exige que el owner (y el tipo, si viene) existan.
func (s *Service) SavePet(ctx context.Context, p Pet) (Pet, error) {
	var out Pet
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		var errs validation.Errors

		_, found, err := tx.Owners().FindByID(ctx, p.OwnerID)
		if err = checkRef(&errs, "pet", "owner.id", p.OwnerID, found, err); err != nil {
			return err
		}
		if p.TypeID != 0 {
			_, found, err = tx.PetTypes().FindByID(ctx, p.TypeID)
			if err = checkRef(&errs, "pet", "type.id", p.TypeID, found, err); err != nil {
				return err
			}
		}
		if errs.HasErrors() {
			return errs
		}

		saved, err := tx.Pets().Save(ctx, p)
		if err != nil {
			return fmt.Errorf("save pet: %w", err)
		}
		if err := fillPet(ctx, tx, &saved); err != nil {
			return err
		}
		out = saved
		return nil
	})
	return out, err
}

// DeletePet borra la mascota y sus visitas.
func (s *Service) DeletePet(ctx context.Context, p Pet) error {
	return s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		return deletePetCascade(ctx, tx, p.ID)
	})
}

// ---- Pet types ----

func (s *Service) FindPetTypeByID(ctx context.Context, id int) (PetType, error) {
	var out PetType
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		t, found, err := tx.PetTypes().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		out = t
		return nil
	})
	return out, s.lookupErr("petType", id, err)
}

func (s *Service) FindAllPetTypes(ctx context.Context) ([]PetType, error) {
	var out []PetType
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) (err error) {
		out, err = tx.PetTypes().FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("find all pet types: %w", err)
	}
	return out, nil
}

// FindPetTypes es la variante cacheada de FindAllPetTypes.
func (s *Service) FindPetTypes(ctx context.Context) ([]PetType, error) {
	if v, ok := s.cache.Get(cachePetTypes); ok {
		return slices.Clone(v.([]PetType)), nil
	}
	types, err := s.FindAllPetTypes(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Add(cachePetTypes, slices.Clone(types))
	return types, nil
}

func (s *Service) SavePetType(ctx context.Context, t PetType) (PetType, error) {
	var out PetType
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		saved, err := tx.PetTypes().Save(ctx, t)
		if err != nil {
			return fmt.Errorf("save pet type: %w", err)
		}
		out = saved
		return nil
	})
	if err != nil {
		return PetType{}, err
	}
	s.cache.Invalidate(cachePetTypes)
	return out, nil
}

// DeletePetType borra el tipo junto con las mascotas de ese tipo.
func (s *Service) DeletePetType(ctx context.Context, t PetType) error {
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		pets, err := tx.Pets().FindByType(ctx, t.ID)
		if err != nil {
			return err
		}
		for _, p := range pets {
			if err := deletePetCascade(ctx, tx, p.ID); err != nil {
				return err
			}
		}
		if err := tx.PetTypes().Delete(ctx, t.ID); err != nil {
			return fmt.Errorf("delete pet type %d: %w", t.ID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(cachePetTypes)
	return nil
}

// ---- Visits ----

func (s *Service) FindVisitByID(ctx context.Context, id int) (Visit, error) {
	var out Visit
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		v, found, err := tx.Visits().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		if err := fillVisit(ctx, tx, &v); err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, s.lookupErr("visit", id, err)
}

func (s *Service) FindAllVisits(ctx context.Context) ([]Visit, error) {
	var out []Visit
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) (err error) {
		if out, err = tx.Visits().FindAll(ctx); err != nil {
			return err
		}
		return fillVisits(ctx, tx, out)
	})
	if err != nil {
		return nil, fmt.Errorf("find all visits: %w", err)
	}
	return out, nil
}

func (s *Service) FindVisitsByPetID(ctx context.Context, petID int) ([]Visit, error) {
	var out []Visit
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) (err error) {
		if out, err = tx.Visits().FindByPet(ctx, petID); err != nil {
			return err
		}
		return fillVisits(ctx, tx, out)
	})
	if err != nil {
		return nil, fmt.Errorf("find visits of pet %d: %w", petID, err)
	}
	return out, nil
}

// SaveVisit exige que la mascota exista. Sin fecha => hoy.
func (s *Service) SaveVisit(ctx context.Context, v Visit) (Visit, error) {
	if v.Date.IsZero() {
		v.Date = NewDate(s.now())
	}
	var out Visit
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		var errs validation.Errors
		_, found, err := tx.Pets().FindByID(ctx, v.PetID)
		if err = checkRef(&errs, "visit", "pet.id", v.PetID, found, err); err != nil {
			return err
		}
		if errs.HasErrors() {
			return errs
		}

		saved, err := tx.Visits().Save(ctx, v)
		if err != nil {
			return fmt.Errorf("save visit: %w", err)
		}
		if err := fillVisit(ctx, tx, &saved); err != nil {
			return err
		}
		out = saved
		return nil
	})
	return out, err
}

func (s *Service) DeleteVisit(ctx context.Context, v Visit) error {
	return s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.Visits().Delete(ctx, v.ID); err != nil {
			return fmt.Errorf("delete visit %d: %w", v.ID, err)
		}
		return nil
	})
}

// ---- Vets ----

func (s *Service) FindVetByID(ctx context.Context, id int) (Vet, error) {
	var out Vet
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		v, found, err := tx.Vets().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		out = v
		return nil
	})
	return out, s.lookupErr("vet", id, err)
}

func (s *Service) FindAllVets(ctx context.Context) ([]Vet, error) {
	var out []Vet
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) (err error) {
		out, err = tx.Vets().FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("find all vets: %w", err)
	}
	return out, nil
}

// FindVets es la variante cacheada de FindAllVets.
func (s *Service) FindVets(ctx context.Context) ([]Vet, error) {
	if v, ok := s.cache.Get(cacheVets); ok {
		return slices.Clone(v.([]Vet)), nil
	}
	vets, err := s.FindAllVets(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Add(cacheVets, slices.Clone(vets))
	return vets, nil
}

// SaveVet exige que cada especialidad exista y las guarda sin duplicados.
func (s *Service) SaveVet(ctx context.Context, v Vet) (Vet, error) {
	var out Vet
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		var errs validation.Errors
		requested := v.Specialties
		v.ClearSpecialties()
		for i, ref := range requested {
			sp, found, err := tx.Specialties().FindByID(ctx, ref.ID)
			if err = checkRef(&errs, "vet", fmt.Sprintf("specialties[%d].id", i), ref.ID, found, err); err != nil {
				return err
			}
			if found {
				v.AddSpecialty(sp)
			}
		}
		if errs.HasErrors() {
			return errs
		}

		saved, err := tx.Vets().Save(ctx, v)
		if err != nil {
			return fmt.Errorf("save vet: %w", err)
		}
		out = saved
		return nil
	})
	if err != nil {
		return Vet{}, err
	}
	s.cache.Invalidate(cacheVets)
	return out, nil
}

func (s *Service) DeleteVet(ctx context.Context, v Vet) error {
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.Vets().Delete(ctx, v.ID); err != nil {
			return fmt.Errorf("delete vet %d: %w", v.ID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(cacheVets)
	return nil
}

// ---- Specialties ----

func (s *Service) FindSpecialtyByID(ctx context.Context, id int) (Specialty, error) {
	var out Specialty
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		sp, found, err := tx.Specialties().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		out = sp
		return nil
	})
	return out, s.lookupErr("specialty", id, err)
}

func (s *Service) FindAllSpecialties(ctx context.Context) ([]Specialty, error) {
	var out []Specialty
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) (err error) {
		out, err = tx.Specialties().FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("find all specialties: %w", err)
	}
	return out, nil
}

// SaveSpecialty invalida también el listado de vets (muestran el nombre).
func (s *Service) SaveSpecialty(ctx context.Context, sp Specialty) (Specialty, error) {
	var out Specialty
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		saved, err := tx.Specialties().Save(ctx, sp)
		if err != nil {
			return fmt.Errorf("save specialty: %w", err)
		}
		out = saved
		return nil
	})
	if err != nil {
		return Specialty{}, err
	}
	s.cache.Invalidate(cacheVets)
	return out, nil
}

// DeleteSpecialty quita primero los vínculos vet-especialidad.
func (s *Service) DeleteSpecialty(ctx context.Context, sp Specialty) error {
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.Vets().UnlinkSpecialty(ctx, sp.ID); err != nil {
			return fmt.Errorf("unlink specialty %d: %w", sp.ID, err)
		}
		if err := tx.Specialties().Delete(ctx, sp.ID); err != nil {
			return fmt.Errorf("delete specialty %d: %w", sp.ID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(cacheVets)
	return nil
}
