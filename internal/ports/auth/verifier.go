package auth

import "context"

// AuthVerifier verifica un bearer token y devuelve usuario y roles.
// Un token inválido o vencido es un error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
