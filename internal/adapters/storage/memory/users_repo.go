package memory

import (
	"context"
	"slices"
	"sync"

	"petclinic-api/internal/domain/users"
)

type userRepo struct {
	mu         sync.RWMutex
	byUsername map[string]users.User
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byUsername: make(map[string]users.User),
	}
}

func (r *userRepo) Save(_ context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.Roles = slices.Clone(u.Roles)
	r.byUsername[u.Username] = u
	return nil
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (users.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[username]
	if !ok {
		return users.User{}, false, nil
	}
	u.Roles = slices.Clone(u.Roles)
	return u, true, nil
}
