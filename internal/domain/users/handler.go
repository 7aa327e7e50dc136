package users

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"petclinic-api/internal/middleware"
	"petclinic-api/internal/ports/auth"
	"petclinic-api/internal/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/users", func(ur chi.Router) {
		ur.Use(middleware.RequireRole(auth.RoleAdmin))
		ur.Post("/", createUserHandler(svc))
	})
}

type userPayload struct {
	Username string   `json:"username" validate:"notblank"`
	Password string   `json:"password" validate:"notblank"`
	Enabled  bool     `json:"enabled"`
	Roles    []string `json:"roles" validate:"hasroles"`
}

// La password nunca se devuelve.
type userResponse struct {
	Username string   `json:"username"`
	Enabled  bool     `json:"enabled"`
	Roles    []string `json:"roles"`
}

// createUserHandler godoc
// @Summary Crear o reemplazar usuario
// @Description Upsert por username. Requiere al menos un rol; se guardan con prefijo ROLE_.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body userPayload true "Usuario"
// @Success 201 {object} userResponse
// @Failure 400 {object} validation.FieldError
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /api/users/ [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p *userPayload
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&p); (err != nil && !errors.Is(err, io.EOF)) || (err == nil && dec.More()) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if errs := validation.Fields("user", p); errs.HasErrors() {
			validation.Respond(w, errs, redacted(p))
			return
		}

		u, err := svc.SaveUser(r.Context(), User{
			Username: p.Username,
			Password: p.Password,
			Enabled:  p.Enabled,
			Roles:    p.Roles,
		})
		if err != nil {
			var verrs validation.Errors
			if errors.As(err, &verrs) {
				validation.Respond(w, verrs, redacted(p))
				return
			}
			svc.log.Error("save user failed", map[string]any{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Location", "/api/users/"+url.PathEscape(u.Username))
		writeJSON(w, http.StatusCreated, userResponse{
			Username: u.Username,
			Enabled:  u.Enabled,
			Roles:    u.Roles,
		})
	}
}

// redacted devuelve el payload sin password para ecoarlo en un 400.
func redacted(p *userPayload) *userPayload {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Password = ""
	return &cp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
