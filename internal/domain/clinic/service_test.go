package clinic_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"petclinic-api/internal/adapters/storage/memory"
	"petclinic-api/internal/domain/clinic"
	"petclinic-api/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

// brokenStore falla en toda transacción.
type brokenStore struct{}

func (brokenStore) WithinTx(context.Context, func(context.Context, clinic.Tx) error) error {
	return errStoreDown
}

type fixture struct {
	svc   *clinic.Service
	owner clinic.Owner
	cat   clinic.PetType
	pet   clinic.Pet
	visit clinic.Visit
}

func newFixture(t *testing.T, opts ...clinic.Option) fixture {
	t.Helper()
	ctx := context.Background()
	svc := clinic.NewService(memory.NewStore(), opts...)

	owner, err := svc.SaveOwner(ctx, clinic.Owner{FirstName: "George", LastName: "Franklin", Address: "110 W. Liberty St.", City: "Madison", Telephone: "6085551023"})
	require.NoError(t, err)
	cat, err := svc.SavePetType(ctx, clinic.PetType{Name: "cat"})
	require.NoError(t, err)
	pet, err := svc.SavePet(ctx, clinic.Pet{Name: "Leo", TypeID: cat.ID, OwnerID: owner.ID})
	require.NoError(t, err)
	visit, err := svc.SaveVisit(ctx, clinic.Visit{Description: "rabies shot", PetID: pet.ID})
	require.NoError(t, err)

	return fixture{svc: svc, owner: owner, cat: cat, pet: pet, visit: visit}
}

func TestFindOwnerByID_LoadsPetsTypesAndVisits(t *testing.T) {
	f := newFixture(t)

	o, err := f.svc.FindOwnerByID(context.Background(), f.owner.ID)
	require.NoError(t, err)
	require.Len(t, o.Pets, 1)

	p := o.Pets[0]
	assert.Equal(t, "Leo", p.Name)
	require.NotNil(t, p.Type)
	assert.Equal(t, "cat", p.Type.Name)
	require.Len(t, p.Visits, 1)
	assert.Equal(t, "rabies shot", p.Visits[0].Description)
}

func TestFindOwnersByLastName_Prefix(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.SaveOwner(ctx, clinic.Owner{FirstName: "Betty", LastName: "Davis"})
	require.NoError(t, err)

	got, err := f.svc.FindOwnersByLastName(ctx, "Fra")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, f.owner.ID, got[0].ID)
	assert.Len(t, got[0].Pets, 1)

	none, err := f.svc.FindOwnersByLastName(ctx, "Zz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSavePet_UnknownReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SavePet(ctx, clinic.Pet{Name: "Ghost", TypeID: 99, OwnerID: 42})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, "owner.id", verrs[0].FieldName)
	assert.Equal(t, 42, verrs[0].FieldValue)
	assert.Equal(t, validation.MsgDoesNotExist, verrs[0].ErrorMessage)
	assert.Equal(t, "type.id", verrs[1].FieldName)

	pets, err := f.svc.FindAllPets(ctx)
	require.NoError(t, err)
	assert.Len(t, pets, 1)
}

func TestSavePet_WithoutType(t *testing.T) {
	f := newFixture(t)

	p, err := f.svc.SavePet(context.Background(), clinic.Pet{Name: "Basil", OwnerID: f.owner.ID})
	require.NoError(t, err)
	assert.Nil(t, p.Type)
	assert.Empty(t, p.Visits)
}

func TestSaveVisit_DefaultsDateAndChecksPet(t *testing.T) {
	fixed := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
	f := newFixture(t, clinic.WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	assert.Equal(t, "2024/03/07", f.visit.Date.String())

	explicit, err := clinic.ParseDate("2013/01/01")
	require.NoError(t, err)
	v, err := f.svc.SaveVisit(ctx, clinic.Visit{Date: explicit, Description: "neutered", PetID: f.pet.ID})
	require.NoError(t, err)
	assert.Equal(t, "2013/01/01", v.Date.String())

	_, err = f.svc.SaveVisit(ctx, clinic.Visit{Description: "x", PetID: 777})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "pet.id", verrs[0].FieldName)

	byPet, err := f.svc.FindVisitsByPetID(ctx, f.pet.ID)
	require.NoError(t, err)
	assert.Len(t, byPet, 2)
}

func TestDeleteOwner_Cascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.DeleteOwner(ctx, f.owner))

	_, err := f.svc.FindOwnerByID(ctx, f.owner.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)
	_, err = f.svc.FindPetByID(ctx, f.pet.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)
	_, err = f.svc.FindVisitByID(ctx, f.visit.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)

	types, err := f.svc.FindAllPetTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 1)
}

func TestDeletePetType_RemovesPetsOfThatType(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.DeletePetType(ctx, f.cat))

	pets, err := f.svc.FindAllPets(ctx)
	require.NoError(t, err)
	assert.Empty(t, pets)
	visits, err := f.svc.FindAllVisits(ctx)
	require.NoError(t, err)
	assert.Empty(t, visits)

	o, err := f.svc.FindOwnerByID(ctx, f.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, o.Pets)
}

func TestSaveVet_Specialties(t *testing.T) {
	svc := clinic.NewService(memory.NewStore())
	ctx := context.Background()

	radiology, err := svc.SaveSpecialty(ctx, clinic.Specialty{Name: "radiology"})
	require.NoError(t, err)
	surgery, err := svc.SaveSpecialty(ctx, clinic.Specialty{Name: "surgery"})
	require.NoError(t, err)

	_, err = svc.SaveVet(ctx, clinic.Vet{FirstName: "Linda", LastName: "Douglas",
		Specialties: []clinic.Specialty{{ID: radiology.ID}, {ID: 99}}})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "specialties[1].id", verrs[0].FieldName)

	v, err := svc.SaveVet(ctx, clinic.Vet{FirstName: "Linda", LastName: "Douglas",
		Specialties: []clinic.Specialty{{ID: surgery.ID}, {ID: radiology.ID}, {ID: surgery.ID}}})
	require.NoError(t, err)
	assert.Equal(t, []int{surgery.ID, radiology.ID}, v.SpecialtyIDs())

	got, err := svc.FindVetByID(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, got.Specialties, 2)
	assert.Equal(t, "surgery", got.Specialties[0].Name)

	require.NoError(t, svc.DeleteSpecialty(ctx, surgery))
	got, err = svc.FindVetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{radiology.ID}, got.SpecialtyIDs())
}

func TestFindVets_CacheInvalidatedOnWrites(t *testing.T) {
	cache, err := clinic.NewKindCache(4)
	require.NoError(t, err)
	var hits, misses int
	cache.OnLookup(func(kind string, hit bool) {
		assert.Equal(t, "vets", kind)
		if hit {
			hits++
		} else {
			misses++
		}
	})

	svc := clinic.NewService(memory.NewStore(), clinic.WithCache(cache))
	ctx := context.Background()

	vets, err := svc.FindVets(ctx)
	require.NoError(t, err)
	assert.Empty(t, vets)

	_, err = svc.SaveVet(ctx, clinic.Vet{FirstName: "James", LastName: "Carter"})
	require.NoError(t, err)

	vets, err = svc.FindVets(ctx)
	require.NoError(t, err)
	assert.Len(t, vets, 1)

	vets, err = svc.FindVets(ctx)
	require.NoError(t, err)
	assert.Len(t, vets, 1)

	_, err = svc.SaveSpecialty(ctx, clinic.Specialty{Name: "dentistry"})
	require.NoError(t, err)
	_, err = svc.FindVets(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
	assert.Equal(t, 3, misses)
}

func TestFindPetTypes_CacheInvalidatedOnWrites(t *testing.T) {
	svc := clinic.NewService(memory.NewStore())
	ctx := context.Background()

	types, err := svc.FindPetTypes(ctx)
	require.NoError(t, err)
	assert.Empty(t, types)

	dog, err := svc.SavePetType(ctx, clinic.PetType{Name: "dog"})
	require.NoError(t, err)
	types, err = svc.FindPetTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)

	dog.Name = "perro"
	_, err = svc.SavePetType(ctx, dog)
	require.NoError(t, err)
	types, err = svc.FindPetTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, "perro", types[0].Name)
}

func TestLookupPolicy(t *testing.T) {
	ctx := context.Background()

	masked := clinic.NewService(brokenStore{})
	_, err := masked.FindVetByID(ctx, 1)
	assert.ErrorIs(t, err, clinic.ErrNotFound)

	propagating := clinic.NewService(brokenStore{}, clinic.WithLookupPolicy(clinic.LookupPropagate))
	_, err = propagating.FindVetByID(ctx, 1)
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, clinic.ErrNotFound)

	// un id inexistente sigue siendo not found con cualquier política
	ok := clinic.NewService(memory.NewStore(), clinic.WithLookupPolicy(clinic.LookupPropagate))
	_, err = ok.FindOwnerByID(ctx, 5)
	assert.ErrorIs(t, err, clinic.ErrNotFound)

	// los listados siempre propagan
	_, err = masked.FindAllOwners(ctx)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestParseLookupPolicy(t *testing.T) {
	p, err := clinic.ParseLookupPolicy("")
	require.NoError(t, err)
	assert.Equal(t, clinic.LookupMask, p)

	p, err = clinic.ParseLookupPolicy(" Propagate ")
	require.NoError(t, err)
	assert.Equal(t, clinic.LookupPropagate, p)

	_, err = clinic.ParseLookupPolicy("ignore")
	assert.Error(t, err)
}

func TestSave_RepeatedUpsertIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before, err := f.svc.FindAllOwners(ctx)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := f.svc.SaveOwner(ctx, f.owner)
		require.NoError(t, err)
	}

	after, err := f.svc.FindAllOwners(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeleteThenFind_EveryKind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	vet, err := f.svc.SaveVet(ctx, clinic.Vet{FirstName: "Sharon", LastName: "Jenkins"})
	require.NoError(t, err)
	sp, err := f.svc.SaveSpecialty(ctx, clinic.Specialty{Name: "surgery"})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteVisit(ctx, f.visit))
	_, err = f.svc.FindVisitByID(ctx, f.visit.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)

	require.NoError(t, f.svc.DeletePet(ctx, f.pet))
	_, err = f.svc.FindPetByID(ctx, f.pet.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)

	require.NoError(t, f.svc.DeletePetType(ctx, f.cat))
	_, err = f.svc.FindPetTypeByID(ctx, f.cat.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)

	require.NoError(t, f.svc.DeleteOwner(ctx, f.owner))
	_, err = f.svc.FindOwnerByID(ctx, f.owner.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)

	require.NoError(t, f.svc.DeleteVet(ctx, vet))
	_, err = f.svc.FindVetByID(ctx, vet.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)

	require.NoError(t, f.svc.DeleteSpecialty(ctx, sp))
	_, err = f.svc.FindSpecialtyByID(ctx, sp.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)
}

func TestFindVisitByID_LoadsPetWithTypeAndOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v, err := f.svc.FindVisitByID(ctx, f.visit.ID)
	require.NoError(t, err)
	require.NotNil(t, v.Pet)
	assert.Equal(t, "Leo", v.Pet.Name)
	require.NotNil(t, v.Pet.Type)
	assert.Equal(t, "cat", v.Pet.Type.Name)
	require.NotNil(t, v.Pet.Owner)
	assert.Equal(t, "Franklin", v.Pet.Owner.LastName)
	assert.Empty(t, v.Pet.Owner.Pets)
	assert.Empty(t, v.Pet.Visits)

	p, err := f.svc.FindPetByID(ctx, f.pet.ID)
	require.NoError(t, err)
	require.NotNil(t, p.Owner)
	assert.Equal(t, f.owner.ID, p.Owner.ID)
}
