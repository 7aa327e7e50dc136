package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petclinic-api/internal/domain/users"
)

type UserRepo struct {
	db *sql.DB
	d  Dialect
}

func NewUserRepo(db *sql.DB, d Dialect) *UserRepo {
	return &UserRepo{db: db, d: d}
}

// Save hace upsert por username y reemplaza los roles, todo en un tx.
func (repo *UserRepo) Save(ctx context.Context, u users.User) (err error) {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	r := runner{tx: tx, d: repo.d}

	if _, err = r.exec(ctx, `
		INSERT INTO users (username, password, enabled)
		VALUES (?, ?, ?)
		ON CONFLICT (username) DO UPDATE
		SET password = excluded.password, enabled = excluded.enabled
	`, u.Username, u.Password, u.Enabled); err != nil {
		return err
	}
	if _, err = r.exec(ctx, `DELETE FROM roles WHERE username = ?`, u.Username); err != nil {
		return err
	}
	for pos, role := range u.Roles {
		if _, err = r.exec(ctx, `INSERT INTO roles (username, role, position) VALUES (?, ?, ?)`, u.Username, role, pos); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (repo *UserRepo) FindByUsername(ctx context.Context, username string) (users.User, bool, error) {
	tx, err := repo.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: repo.d == Postgres})
	if err != nil {
		return users.User{}, false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	r := runner{tx: tx, d: repo.d}

	var u users.User
	err = r.queryRow(ctx, `SELECT username, password, enabled FROM users WHERE username = ?`, username).
		Scan(&u.Username, &u.Password, &u.Enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, false, nil
	}
	if err != nil {
		return users.User{}, false, err
	}

	rows, err := r.query(ctx, `SELECT role FROM roles WHERE username = ? ORDER BY position`, username)
	if err != nil {
		return users.User{}, false, err
	}
	defer rows.Close()
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return users.User{}, false, err
		}
		u.Roles = append(u.Roles, role)
	}
	return u, true, rows.Err()
}
