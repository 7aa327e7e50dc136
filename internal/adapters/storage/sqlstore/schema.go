package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Schema devuelve el DDL idempotente para el dialecto.
func Schema(d Dialect) []string {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if d == Postgres {
		serial = "SERIAL PRIMARY KEY"
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS owners (
			id         {{serial}},
			first_name TEXT NOT NULL,
			last_name  TEXT NOT NULL,
			address    TEXT NOT NULL,
			city       TEXT NOT NULL,
			telephone  TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_owners_last_name ON owners (last_name)`,
		`CREATE TABLE IF NOT EXISTS types (
			id   {{serial}},
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pets (
			id         {{serial}},
			name       TEXT NOT NULL,
			birth_date TEXT,
			type_id    INTEGER REFERENCES types (id),
			owner_id   INTEGER NOT NULL REFERENCES owners (id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pets_owner_id ON pets (owner_id)`,
		`CREATE TABLE IF NOT EXISTS visits (
			id          {{serial}},
			pet_id      INTEGER NOT NULL REFERENCES pets (id),
			visit_date  TEXT,
			description TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_visits_pet_id ON visits (pet_id)`,
		`CREATE TABLE IF NOT EXISTS specialties (
			id   {{serial}},
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS vets (
			id         {{serial}},
			first_name TEXT NOT NULL,
			last_name  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS vet_specialties (
			vet_id       INTEGER NOT NULL REFERENCES vets (id),
			specialty_id INTEGER NOT NULL REFERENCES specialties (id),
			position     INTEGER NOT NULL,
			PRIMARY KEY (vet_id, specialty_id)
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			enabled  BOOLEAN NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			username TEXT NOT NULL REFERENCES users (username),
			role     TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (username, role)
		)`,
	}

	for i, s := range stmts {
		stmts[i] = strings.ReplaceAll(s, "{{serial}}", serial)
	}
	return stmts
}

// Migrate aplica Schema. Es seguro correrlo en cada arranque.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	for _, stmt := range Schema(d) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
