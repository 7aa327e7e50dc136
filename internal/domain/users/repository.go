package users

import "context"

type Repository interface {
	// Save inserta si el username no existe; si existe reemplaza el registro completo.
	Save(ctx context.Context, u User) error
	FindByUsername(ctx context.Context, username string) (User, bool, error)
}
