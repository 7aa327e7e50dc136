package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"petclinic-api/internal/domain/clinic"
)

type vetRepo struct{ r runner }

func (repo vetRepo) FindByID(ctx context.Context, id int) (clinic.Vet, bool, error) {
	var v clinic.Vet
	err := repo.r.queryRow(ctx, `SELECT id, first_name, last_name FROM vets WHERE id = ?`, id).
		Scan(&v.ID, &v.FirstName, &v.LastName)
	if errors.Is(err, sql.ErrNoRows) {
		return clinic.Vet{}, false, nil
	}
	if err != nil {
		return clinic.Vet{}, false, err
	}
	if v.Specialties, err = repo.specialties(ctx, v.ID); err != nil {
		return clinic.Vet{}, false, err
	}
	return v, true, nil
}

func (repo vetRepo) FindAll(ctx context.Context) ([]clinic.Vet, error) {
	rows, err := repo.r.query(ctx, `SELECT id, first_name, last_name FROM vets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	out := make([]clinic.Vet, 0)
	for rows.Next() {
		var v clinic.Vet
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName); err != nil {
			_ = rows.Close()
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	// cerrar antes de la segunda query: el tx usa una sola conexión
	_ = rows.Close()

	for i := range out {
		if out[i].Specialties, err = repo.specialties(ctx, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (repo vetRepo) specialties(ctx context.Context, vetID int) ([]clinic.Specialty, error) {
	rows, err := repo.r.query(ctx, `
		SELECT s.id, s.name
		FROM vet_specialties vs
		JOIN specialties s ON s.id = vs.specialty_id
		WHERE vs.vet_id = ?
		ORDER BY vs.position
	`, vetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []clinic.Specialty
	for rows.Next() {
		var sp clinic.Specialty
		if err := rows.Scan(&sp.ID, &sp.Name); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

// Save reemplaza el set de especialidades completo.
func (repo vetRepo) Save(ctx context.Context, v clinic.Vet) (clinic.Vet, error) {
	if v.ID == 0 {
		id, err := repo.r.insert(ctx, `
			INSERT INTO vets (first_name, last_name)
			VALUES (?, ?)
			RETURNING id
		`, v.FirstName, v.LastName)
		if err != nil {
			return clinic.Vet{}, err
		}
		v.ID = id
	} else {
		err := repo.r.upsertByID(ctx,
			`UPDATE vets SET first_name = ?, last_name = ? WHERE id = ?`,
			`INSERT INTO vets (id, first_name, last_name) VALUES (?, ?, ?)`,
			v.ID, v.FirstName, v.LastName)
		if err != nil {
			return clinic.Vet{}, err
		}
	}

	if _, err := repo.r.exec(ctx, `DELETE FROM vet_specialties WHERE vet_id = ?`, v.ID); err != nil {
		return clinic.Vet{}, err
	}
	for pos, spID := range v.SpecialtyIDs() {
		if _, err := repo.r.exec(ctx,
			`INSERT INTO vet_specialties (vet_id, specialty_id, position) VALUES (?, ?, ?)`,
			v.ID, spID, pos); err != nil {
			return clinic.Vet{}, err
		}
	}

	var err error
	if v.Specialties, err = repo.specialties(ctx, v.ID); err != nil {
		return clinic.Vet{}, err
	}
	return v, nil
}

func (repo vetRepo) Delete(ctx context.Context, id int) error {
	if _, err := repo.r.exec(ctx, `DELETE FROM vet_specialties WHERE vet_id = ?`, id); err != nil {
		return err
	}
	_, err := repo.r.exec(ctx, `DELETE FROM vets WHERE id = ?`, id)
	return err
}

func (repo vetRepo) UnlinkSpecialty(ctx context.Context, specialtyID int) error {
	_, err := repo.r.exec(ctx, `DELETE FROM vet_specialties WHERE specialty_id = ?`, specialtyID)
	return err
}
