package sqlstore

import (
	"context"
	"database/sql"
	"testing"

	"petclinic-api/internal/domain/clinic"
	"petclinic-api/internal/domain/users"
	"petclinic-api/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db, SQLite))
	return db
}

func TestRebind(t *testing.T) {
	q := `UPDATE owners SET first_name = ?, last_name = ? WHERE id = ?`
	assert.Equal(t, q, SQLite.rebind(q))
	assert.Equal(t, `UPDATE owners SET first_name = $1, last_name = $2 WHERE id = $3`, Postgres.rebind(q))
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(context.Background(), db, SQLite))
}

func TestStore_ClinicFlow(t *testing.T) {
	db := openTestDB(t)
	svc := clinic.NewService(NewStore(db, SQLite))
	ctx := context.Background()

	owner, err := svc.SaveOwner(ctx, clinic.Owner{
		FirstName: "Sam", LastName: "Schultz", Address: "4, Evans Street", City: "Wollongong", Telephone: "4444444444",
	})
	require.NoError(t, err)
	require.NotZero(t, owner.ID)

	dog, err := svc.SavePetType(ctx, clinic.PetType{Name: "dog"})
	require.NoError(t, err)

	bd, err := clinic.ParseDate("2010/09/07")
	require.NoError(t, err)
	pet, err := svc.SavePet(ctx, clinic.Pet{Name: "Rosy", BirthDate: bd, TypeID: dog.ID, OwnerID: owner.ID})
	require.NoError(t, err)

	visit, err := svc.SaveVisit(ctx, clinic.Visit{Description: "rabies shot", PetID: pet.ID, Date: bd})
	require.NoError(t, err)

	got, err := svc.FindOwnerByID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Pets, 1)
	assert.Equal(t, "Rosy", got.Pets[0].Name)
	assert.Equal(t, "2010/09/07", got.Pets[0].BirthDate.String())
	require.NotNil(t, got.Pets[0].Type)
	assert.Equal(t, "dog", got.Pets[0].Type.Name)
	require.Len(t, got.Pets[0].Visits, 1)
	assert.Equal(t, visit.ID, got.Pets[0].Visits[0].ID)

	byName, err := svc.FindOwnersByLastName(ctx, "Schu")
	require.NoError(t, err)
	require.Len(t, byName, 1)

	// upsert idempotente
	_, err = svc.SaveOwner(ctx, got)
	require.NoError(t, err)
	all, err := svc.FindAllOwners(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// cascada con FKs activas
	require.NoError(t, svc.DeleteOwner(ctx, got))
	_, err = svc.FindPetByID(ctx, pet.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)
	_, err = svc.FindVisitByID(ctx, visit.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)
}

func TestStore_VetSpecialties(t *testing.T) {
	db := openTestDB(t)
	svc := clinic.NewService(NewStore(db, SQLite))
	ctx := context.Background()

	radiology, err := svc.SaveSpecialty(ctx, clinic.Specialty{Name: "radiology"})
	require.NoError(t, err)
	surgery, err := svc.SaveSpecialty(ctx, clinic.Specialty{Name: "surgery"})
	require.NoError(t, err)

	vet, err := svc.SaveVet(ctx, clinic.Vet{
		FirstName: "Helen", LastName: "Leary",
		Specialties: []clinic.Specialty{{ID: surgery.ID}, {ID: radiology.ID}, {ID: surgery.ID}},
	})
	require.NoError(t, err)
	require.Len(t, vet.Specialties, 2)
	assert.Equal(t, "surgery", vet.Specialties[0].Name)
	assert.Equal(t, "radiology", vet.Specialties[1].Name)

	_, err = svc.SaveVet(ctx, clinic.Vet{FirstName: "X", LastName: "Y", Specialties: []clinic.Specialty{{ID: 999}}})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "specialties[0].id", verrs[0].FieldName)

	require.NoError(t, svc.DeleteSpecialty(ctx, surgery))
	got, err := svc.FindVetByID(ctx, vet.ID)
	require.NoError(t, err)
	require.Len(t, got.Specialties, 1)
	assert.Equal(t, "radiology", got.Specialties[0].Name)

	require.NoError(t, svc.DeleteVet(ctx, got))
	_, err = svc.FindVetByID(ctx, vet.ID)
	assert.ErrorIs(t, err, clinic.ErrNotFound)
}

func TestStore_RollbackLeavesNothing(t *testing.T) {
	db := openTestDB(t)
	svc := clinic.NewService(NewStore(db, SQLite))
	ctx := context.Background()

	_, err := svc.SavePet(ctx, clinic.Pet{Name: "Orphan", OwnerID: 42})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "owner.id", verrs[0].FieldName)
	assert.Equal(t, validation.MsgDoesNotExist, verrs[0].ErrorMessage)

	pets, err := svc.FindAllPets(ctx)
	require.NoError(t, err)
	assert.Empty(t, pets)
}

func TestUserRepo_Upsert(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepo(db, SQLite)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, users.User{Username: "admin", Password: "x", Enabled: true, Roles: []string{"ROLE_ADMIN"}}))
	require.NoError(t, repo.Save(ctx, users.User{Username: "admin", Password: "y", Roles: []string{"ROLE_OWNER_ADMIN", "ROLE_VET_ADMIN"}}))

	u, found, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "y", u.Password)
	assert.False(t, u.Enabled)
	assert.Equal(t, []string{"ROLE_OWNER_ADMIN", "ROLE_VET_ADMIN"}, u.Roles)

	_, found, err = repo.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, found)
}
