package users_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petclinic-api/internal/adapters/storage/memory"
	"petclinic-api/internal/domain/users"
	"petclinic-api/internal/middleware"
	"petclinic-api/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRoles(t *testing.T) {
	got := users.NormalizeRoles([]string{"owner_admin", " ROLE_VET_ADMIN ", "", "OWNER_ADMIN", "admin"})
	assert.Equal(t, []string{"ROLE_OWNER_ADMIN", "ROLE_VET_ADMIN", "ROLE_ADMIN"}, got)
	assert.Empty(t, users.NormalizeRoles(nil))
}

func TestSaveUser(t *testing.T) {
	svc := users.NewService(memory.NewUserRepo(), nil)
	ctx := context.Background()

	u, err := svc.SaveUser(ctx, users.User{Username: "admin", Password: "admin", Enabled: true, Roles: []string{"ADMIN"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_ADMIN"}, u.Roles)

	// upsert: reemplaza roles
	_, err = svc.SaveUser(ctx, users.User{Username: "admin", Password: "x", Roles: []string{"VET_ADMIN"}})
	require.NoError(t, err)
	got, err := svc.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_VET_ADMIN"}, got.Roles)
	assert.False(t, got.Enabled)

	_, err = svc.SaveUser(ctx, users.User{Username: " ", Roles: []string{" "}})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, "username", verrs[0].FieldName)
	assert.Equal(t, "roles", verrs[1].FieldName)

	_, err = svc.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.AuthContext(nil))
	users.RegisterRoutes(r, users.NewService(memory.NewUserRepo(), nil))
	return r
}

func post(h http.Handler, roles, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/users/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if roles != "" {
		req.Header.Set("X-Debug-Roles", roles)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCreateUserHandler(t *testing.T) {
	h := newRouter()

	rr := post(h, "ADMIN", `{"username":"vet","password":"secret","enabled":true,"roles":["VET_ADMIN","vet_admin"]}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "/api/users/vet", rr.Header().Get("Location"))
	assert.NotContains(t, rr.Body.String(), "secret")

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, []any{"ROLE_VET_ADMIN"}, body["roles"])
	_, hasPassword := body["password"]
	assert.False(t, hasPassword)
}

func TestCreateUserHandler_Rejects(t *testing.T) {
	h := newRouter()

	rr := post(h, "ADMIN", `{"username":"vet","password":"secret","roles":[]}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Header().Get("errors"), "must have at least a role set")
	assert.NotContains(t, rr.Body.String(), "secret")

	assert.Equal(t, http.StatusBadRequest, post(h, "ADMIN", `{"username":`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, "ADMIN", `{"username":"bob","password":"x","roles":["VET_ADMIN"]} trailing`).Code)
	assert.Equal(t, http.StatusUnauthorized, post(h, "", `{}`).Code)
	assert.Equal(t, http.StatusForbidden, post(h, "VET_ADMIN", `{}`).Code)
}
