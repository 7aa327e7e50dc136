package middleware

import (
	"context"
	"net/http"
	"strings"

	"petclinic-api/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

const (
	HeaderDebugUserID = "X-Debug-User-ID"
	HeaderDebugRoles  = "X-Debug-Roles"
)

// claimsResolver extrae los claims de un request; false si no hay.
type claimsResolver func(r *http.Request) (auth.Claims, bool)

// AuthContext deja los claims del caller en el contexto.
// Sin verifier (modo dev) salen de X-Debug-User-ID / X-Debug-Roles.
// Con verifier, de un "Authorization: Bearer". Un token inválido no corta
// el request: sin claims RequireRole responde 401.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	resolve := debugClaims
	if verifier != nil {
		resolve = bearerClaims(verifier)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, ok := resolve(r); ok {
				r = r.WithContext(WithClaims(r.Context(), c))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func debugClaims(r *http.Request) (auth.Claims, bool) {
	uid := strings.TrimSpace(r.Header.Get(HeaderDebugUserID))
	roles := splitRoles(r.Header.Get(HeaderDebugRoles))
	if uid == "" && len(roles) == 0 {
		return auth.Claims{}, false
	}
	if uid == "" {
		uid = "dev"
	}
	return auth.Claims{UserID: uid, Roles: roles}, true
}

func bearerClaims(v auth.AuthVerifier) claimsResolver {
	return func(r *http.Request) (auth.Claims, bool) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			return auth.Claims{}, false
		}
		c, err := v.Verify(r.Context(), token)
		if err != nil {
			return auth.Claims{}, false
		}
		return c, true
	}
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

func splitRoles(h string) []string {
	var out []string
	for _, p := range strings.Split(h, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func bearerToken(h string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
