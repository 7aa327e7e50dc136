// Package sqlstore implementa el store de la clínica y el de usuarios
// sobre database/sql, para Postgres (pgx) y SQLite (modernc).
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petclinic-api/internal/domain/clinic"
)

type Store struct {
	db *sql.DB
	d  Dialect
}

func NewStore(db *sql.DB, d Dialect) *Store {
	return &Store{db: db, d: d}
}

// WithinTx corre fn en un tx de la base. Commit si fn no falla, rollback si falla.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx clinic.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(ctx, sqlTx{r: runner{tx: tx, d: s.d}}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type sqlTx struct {
	r runner
}

func (t sqlTx) Owners() clinic.OwnerRepository          { return ownerRepo{t.r} }
func (t sqlTx) Pets() clinic.PetRepository              { return petRepo{t.r} }
func (t sqlTx) PetTypes() clinic.PetTypeRepository      { return petTypeRepo{t.r} }
func (t sqlTx) Visits() clinic.VisitRepository          { return visitRepo{t.r} }
func (t sqlTx) Vets() clinic.VetRepository              { return vetRepo{t.r} }
func (t sqlTx) Specialties() clinic.SpecialtyRepository { return specialtyRepo{t.r} }

// nullDate guarda la fecha como texto yyyy/MM/dd; cero => NULL.
func nullDate(d clinic.Date) sql.NullString {
	if d.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func scanDate(ns sql.NullString) (clinic.Date, error) {
	if !ns.Valid || ns.String == "" {
		return clinic.Date{}, nil
	}
	return clinic.ParseDate(ns.String)
}

func nullID(id int) sql.NullInt64 {
	if id == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(id), Valid: true}
}
