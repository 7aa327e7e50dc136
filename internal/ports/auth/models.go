package auth

import "strings"

// Roles reconocidos por las rutas.
const (
	RoleOwnerAdmin = "OWNER_ADMIN"
	RoleVetAdmin   = "VET_ADMIN"
	RoleAdmin      = "ADMIN"
)

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Roles  []string
}

// HasAnyRole compara sin distinguir mayúsculas e ignora el prefijo ROLE_.
func (c Claims) HasAnyRole(allowed ...string) bool {
	for _, have := range c.Roles {
		h := normalizeRole(have)
		for _, want := range allowed {
			if h == normalizeRole(want) {
				return true
			}
		}
	}
	return false
}

func normalizeRole(r string) string {
	r = strings.ToUpper(strings.TrimSpace(r))
	return strings.TrimPrefix(r, "ROLE_")
}
