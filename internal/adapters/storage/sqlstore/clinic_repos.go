package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"petclinic-api/internal/domain/clinic"
)

// ---- owners ----

type ownerRepo struct{ r runner }

const ownerColumns = `id, first_name, last_name, address, city, telephone`

func scanOwner(s interface{ Scan(...any) error }) (clinic.Owner, error) {
	var o clinic.Owner
	err := s.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone)
	return o, err
}

func (repo ownerRepo) FindByID(ctx context.Context, id int) (clinic.Owner, bool, error) {
	o, err := scanOwner(repo.r.queryRow(ctx, `SELECT `+ownerColumns+` FROM owners WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return clinic.Owner{}, false, nil
	}
	if err != nil {
		return clinic.Owner{}, false, err
	}
	return o, true, nil
}

func (repo ownerRepo) FindAll(ctx context.Context) ([]clinic.Owner, error) {
	return repo.list(ctx, `SELECT `+ownerColumns+` FROM owners ORDER BY id`)
}

func (repo ownerRepo) FindByLastName(ctx context.Context, prefix string) ([]clinic.Owner, error) {
	return repo.list(ctx, `SELECT `+ownerColumns+` FROM owners WHERE last_name LIKE ? ORDER BY id`, prefix+"%")
}

func (repo ownerRepo) list(ctx context.Context, q string, args ...any) ([]clinic.Owner, error) {
	rows, err := repo.r.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinic.Owner, 0)
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (repo ownerRepo) Save(ctx context.Context, o clinic.Owner) (clinic.Owner, error) {
	args := []any{o.FirstName, o.LastName, o.Address, o.City, o.Telephone}
	if o.ID == 0 {
		id, err := repo.r.insert(ctx, `
			INSERT INTO owners (first_name, last_name, address, city, telephone)
			VALUES (?, ?, ?, ?, ?)
			RETURNING id
		`, args...)
		if err != nil {
			return clinic.Owner{}, err
		}
		o.ID = id
		return o, nil
	}

	err := repo.r.upsertByID(ctx,
		`UPDATE owners SET first_name = ?, last_name = ?, address = ?, city = ?, telephone = ? WHERE id = ?`,
		`INSERT INTO owners (id, first_name, last_name, address, city, telephone) VALUES (?, ?, ?, ?, ?, ?)`,
		o.ID, args...)
	return o, err
}

func (repo ownerRepo) Delete(ctx context.Context, id int) error {
	_, err := repo.r.exec(ctx, `DELETE FROM owners WHERE id = ?`, id)
	return err
}

// ---- pets ----

type petRepo struct{ r runner }

const petColumns = `id, name, birth_date, type_id, owner_id`

func scanPet(s interface{ Scan(...any) error }) (clinic.Pet, error) {
	var (
		p      clinic.Pet
		bd     sql.NullString
		typeID sql.NullInt64
	)
	if err := s.Scan(&p.ID, &p.Name, &bd, &typeID, &p.OwnerID); err != nil {
		return clinic.Pet{}, err
	}
	d, err := scanDate(bd)
	if err != nil {
		return clinic.Pet{}, err
	}
	p.BirthDate = d
	p.TypeID = int(typeID.Int64)
	return p, nil
}

func (repo petRepo) FindByID(ctx context.Context, id int) (clinic.Pet, bool, error) {
	p, err := scanPet(repo.r.queryRow(ctx, `SELECT `+petColumns+` FROM pets WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return clinic.Pet{}, false, nil
	}
	if err != nil {
		return clinic.Pet{}, false, err
	}
	return p, true, nil
}

func (repo petRepo) FindAll(ctx context.Context) ([]clinic.Pet, error) {
	return repo.list(ctx, `SELECT `+petColumns+` FROM pets ORDER BY id`)
}

func (repo petRepo) FindByOwner(ctx context.Context, ownerID int) ([]clinic.Pet, error) {
	return repo.list(ctx, `SELECT `+petColumns+` FROM pets WHERE owner_id = ? ORDER BY id`, ownerID)
}

func (repo petRepo) FindByType(ctx context.Context, typeID int) ([]clinic.Pet, error) {
	return repo.list(ctx, `SELECT `+petColumns+` FROM pets WHERE type_id = ? ORDER BY id`, typeID)
}

func (repo petRepo) list(ctx context.Context, q string, args ...any) ([]clinic.Pet, error) {
	rows, err := repo.r.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinic.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (repo petRepo) Save(ctx context.Context, p clinic.Pet) (clinic.Pet, error) {
	p.Type, p.Owner, p.Visits = nil, nil, nil
	args := []any{p.Name, nullDate(p.BirthDate), nullID(p.TypeID), p.OwnerID}
	if p.ID == 0 {
		id, err := repo.r.insert(ctx, `
			INSERT INTO pets (name, birth_date, type_id, owner_id)
			VALUES (?, ?, ?, ?)
			RETURNING id
		`, args...)
		if err != nil {
			return clinic.Pet{}, err
		}
		p.ID = id
		return p, nil
	}

	err := repo.r.upsertByID(ctx,
		`UPDATE pets SET name = ?, birth_date = ?, type_id = ?, owner_id = ? WHERE id = ?`,
		`INSERT INTO pets (id, name, birth_date, type_id, owner_id) VALUES (?, ?, ?, ?, ?)`,
		p.ID, args...)
	return p, err
}

func (repo petRepo) Delete(ctx context.Context, id int) error {
	_, err := repo.r.exec(ctx, `DELETE FROM pets WHERE id = ?`, id)
	return err
}

// ---- pet types ----

type petTypeRepo struct{ r runner }

func (repo petTypeRepo) FindByID(ctx context.Context, id int) (clinic.PetType, bool, error) {
	var t clinic.PetType
	err := repo.r.queryRow(ctx, `SELECT id, name FROM types WHERE id = ?`, id).Scan(&t.ID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return clinic.PetType{}, false, nil
	}
	if err != nil {
		return clinic.PetType{}, false, err
	}
	return t, true, nil
}

func (repo petTypeRepo) FindAll(ctx context.Context) ([]clinic.PetType, error) {
	rows, err := repo.r.query(ctx, `SELECT id, name FROM types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinic.PetType, 0)
	for rows.Next() {
		var t clinic.PetType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (repo petTypeRepo) Save(ctx context.Context, t clinic.PetType) (clinic.PetType, error) {
	if t.ID == 0 {
		id, err := repo.r.insert(ctx, `INSERT INTO types (name) VALUES (?) RETURNING id`, t.Name)
		if err != nil {
			return clinic.PetType{}, err
		}
		t.ID = id
		return t, nil
	}
	err := repo.r.upsertByID(ctx,
		`UPDATE types SET name = ? WHERE id = ?`,
		`INSERT INTO types (id, name) VALUES (?, ?)`,
		t.ID, t.Name)
	return t, err
}

func (repo petTypeRepo) Delete(ctx context.Context, id int) error {
	_, err := repo.r.exec(ctx, `DELETE FROM types WHERE id = ?`, id)
	return err
}

// ---- visits ----

type visitRepo struct{ r runner }

const visitColumns = `id, visit_date, description, pet_id`

func scanVisit(s interface{ Scan(...any) error }) (clinic.Visit, error) {
	var (
		v  clinic.Visit
		vd sql.NullString
	)
	if err := s.Scan(&v.ID, &vd, &v.Description, &v.PetID); err != nil {
		return clinic.Visit{}, err
	}
	d, err := scanDate(vd)
	if err != nil {
		return clinic.Visit{}, err
	}
	v.Date = d
	return v, nil
}

func (repo visitRepo) FindByID(ctx context.Context, id int) (clinic.Visit, bool, error) {
	v, err := scanVisit(repo.r.queryRow(ctx, `SELECT `+visitColumns+` FROM visits WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return clinic.Visit{}, false, nil
	}
	if err != nil {
		return clinic.Visit{}, false, err
	}
	return v, true, nil
}

func (repo visitRepo) FindAll(ctx context.Context) ([]clinic.Visit, error) {
	return repo.list(ctx, `SELECT `+visitColumns+` FROM visits ORDER BY id`)
}

func (repo visitRepo) FindByPet(ctx context.Context, petID int) ([]clinic.Visit, error) {
	return repo.list(ctx, `SELECT `+visitColumns+` FROM visits WHERE pet_id = ? ORDER BY id`, petID)
}

func (repo visitRepo) list(ctx context.Context, q string, args ...any) ([]clinic.Visit, error) {
	rows, err := repo.r.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinic.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (repo visitRepo) Save(ctx context.Context, v clinic.Visit) (clinic.Visit, error) {
	v.Pet = nil
	args := []any{nullDate(v.Date), v.Description, v.PetID}
	if v.ID == 0 {
		id, err := repo.r.insert(ctx, `
			INSERT INTO visits (visit_date, description, pet_id)
			VALUES (?, ?, ?)
			RETURNING id
		`, args...)
		if err != nil {
			return clinic.Visit{}, err
		}
		v.ID = id
		return v, nil
	}
	err := repo.r.upsertByID(ctx,
		`UPDATE visits SET visit_date = ?, description = ?, pet_id = ? WHERE id = ?`,
		`INSERT INTO visits (id, visit_date, description, pet_id) VALUES (?, ?, ?, ?)`,
		v.ID, args...)
	return v, err
}

func (repo visitRepo) Delete(ctx context.Context, id int) error {
	_, err := repo.r.exec(ctx, `DELETE FROM visits WHERE id = ?`, id)
	return err
}

// ---- specialties ----

type specialtyRepo struct{ r runner }

func (repo specialtyRepo) FindByID(ctx context.Context, id int) (clinic.Specialty, bool, error) {
	var sp clinic.Specialty
	err := repo.r.queryRow(ctx, `SELECT id, name FROM specialties WHERE id = ?`, id).Scan(&sp.ID, &sp.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return clinic.Specialty{}, false, nil
	}
	if err != nil {
		return clinic.Specialty{}, false, err
	}
	return sp, true, nil
}

func (repo specialtyRepo) FindAll(ctx context.Context) ([]clinic.Specialty, error) {
	rows, err := repo.r.query(ctx, `SELECT id, name FROM specialties ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinic.Specialty, 0)
	for rows.Next() {
		var sp clinic.Specialty
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (repo specialtyRepo) Save(ctx context.Context, sp clinic.Specialty) (clinic.Specialty, error) {
	if sp.ID == 0 {
		id, err := repo.r.insert(ctx, `INSERT INTO specialties (name) VALUES (?) RETURNING id`, sp.Name)
		if err != nil {
			return clinic.Specialty{}, err
		}
		sp.ID = id
		return sp, nil
	}
	err := repo.r.upsertByID(ctx,
		`UPDATE specialties SET name = ? WHERE id = ?`,
		`INSERT INTO specialties (id, name) VALUES (?, ?)`,
		sp.ID, sp.Name)
	return sp, err
}

func (repo specialtyRepo) Delete(ctx context.Context, id int) error {
	_, err := repo.r.exec(ctx, `DELETE FROM specialties WHERE id = ?`, id)
	return err
}
