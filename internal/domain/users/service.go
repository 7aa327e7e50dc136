package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"petclinic-api/internal/platform/logger"
	"petclinic-api/internal/validation"
)

const rolePrefix = "ROLE_"

var ErrNotFound = errors.New("user not found")

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, log: log}
}

// SaveUser hace upsert por username. Los roles se normalizan con
// prefijo ROLE_, sin duplicados y en el orden recibido.
func (s *Service) SaveUser(ctx context.Context, u User) (User, error) {
	u.Username = strings.TrimSpace(u.Username)
	u.Roles = NormalizeRoles(u.Roles)

	var errs validation.Errors
	if u.Username == "" {
		errs.Add("user", "username", u.Username, validation.MsgNotEmpty)
	}
	if len(u.Roles) == 0 {
		errs.Add("user", "roles", nil, "must have at least a role set")
	}
	if errs.HasErrors() {
		return User{}, errs
	}

	if err := s.repo.Save(ctx, u); err != nil {
		return User{}, fmt.Errorf("save user %q: %w", u.Username, err)
	}
	s.log.Info("user saved", map[string]any{"username": u.Username, "roles": strings.Join(u.Roles, ",")})
	return u, nil
}

func (s *Service) FindByUsername(ctx context.Context, username string) (User, error) {
	u, found, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return User{}, fmt.Errorf("find user %q: %w", username, err)
	}
	if !found {
		return User{}, ErrNotFound
	}
	return u, nil
}

// NormalizeRoles agrega el prefijo ROLE_ donde falte y descarta vacíos y repetidos.
func NormalizeRoles(roles []string) []string {
	seen := make(map[string]struct{}, len(roles))
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		r = strings.ToUpper(strings.TrimSpace(r))
		if r == "" {
			continue
		}
		if !strings.HasPrefix(r, rolePrefix) {
			r = rolePrefix + r
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
