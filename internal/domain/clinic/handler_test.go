package clinic_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petclinic-api/internal/adapters/storage/memory"
	"petclinic-api/internal/domain/clinic"
	"petclinic-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const allRoles = "OWNER_ADMIN,VET_ADMIN"

func newRouter(store clinic.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.AuthContext(nil))
	clinic.RegisterRoutes(r, clinic.NewService(store))
	return r
}

func do(t *testing.T, h http.Handler, method, path, roles, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if roles != "" {
		req.Header.Set("X-Debug-Roles", roles)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestOwners_CreateThenGet(t *testing.T) {
	h := newRouter(memory.NewStore())

	rr := do(t, h, http.MethodPost, "/api/owners/", allRoles,
		`{"firstName":"Sam","lastName":"Schultz","address":"4, Evans Street","city":"Wollongong","telephone":"4444444444"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "/api/owners/1", rr.Header().Get("Location"))

	var created map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.EqualValues(t, 1, created["id"])
	assert.Equal(t, []any{}, created["pets"])

	rr = do(t, h, http.MethodGet, "/api/owners/1", allRoles, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"lastName":"Schultz"`)
}

func TestOwners_ValidationErrors(t *testing.T) {
	h := newRouter(memory.NewStore())

	rr := do(t, h, http.MethodPost, "/api/owners/", allRoles,
		`{"id":3,"firstName":"Sam","lastName":"Schultz","address":"x","city":"y","telephone":"4444444444"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Header().Get("errors"), `"errorMessage":"must not be specified"`)

	rr = do(t, h, http.MethodPost, "/api/owners/", allRoles,
		`{"firstName":"","lastName":"Schultz","address":"x","city":"y","telephone":"12ab"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	var body struct {
		Errors []struct {
			FieldName string `json:"fieldName"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "firstName", body.Errors[0].FieldName)
	assert.Equal(t, "telephone", body.Errors[1].FieldName)

	rr = do(t, h, http.MethodPut, "/api/owners/5", allRoles,
		`{"id":7,"firstName":"Sam","lastName":"Schultz","address":"x","city":"y","telephone":"4444444444"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Header().Get("errors"), "does not match pathId: 5")

	rr = do(t, h, http.MethodPost, "/api/owners/", allRoles, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOwners_NotFoundCases(t *testing.T) {
	h := newRouter(memory.NewStore())

	for _, path := range []string{"/api/owners/", "/api/owners/999", "/api/owners/abc", "/api/owners/-1"} {
		rr := do(t, h, http.MethodGet, path, allRoles, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.Empty(t, rr.Body.String(), path)
	}

	rr := do(t, h, http.MethodPut, "/api/owners/999", allRoles,
		`{"firstName":"Sam","lastName":"Schultz","address":"x","city":"y","telephone":"1"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodDelete, "/api/owners/999", allRoles, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestOwners_LastNameRoute(t *testing.T) {
	h := newRouter(memory.NewStore())
	rr := do(t, h, http.MethodPost, "/api/owners/", allRoles,
		`{"firstName":"Betty","lastName":"Davis","address":"638 Cardinal Ave.","city":"Sun Prairie","telephone":"6085551749"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/owners/*/lastname/Dav", allRoles, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Betty")

	rr = do(t, h, http.MethodGet, "/api/owners/*/lastname/Nobody", allRoles, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/owners/1/lastname/Dav", allRoles, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoles(t *testing.T) {
	h := newRouter(memory.NewStore())

	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/api/owners/", "", "").Code)
	assert.Equal(t, http.StatusForbidden, do(t, h, http.MethodGet, "/api/owners/", "VET_ADMIN", "").Code)
	assert.Equal(t, http.StatusForbidden, do(t, h, http.MethodGet, "/api/vets/", "OWNER_ADMIN", "").Code)

	// pettypes: lectura para ambos roles, escritura solo VET_ADMIN
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/pettypes/", "OWNER_ADMIN", "").Code)
	assert.Equal(t, http.StatusForbidden, do(t, h, http.MethodPost, "/api/pettypes/", "OWNER_ADMIN", `{"name":"dog"}`).Code)
	assert.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/pettypes/", "VET_ADMIN", `{"name":"dog"}`).Code)
}

func TestPets_FlowAndCascade(t *testing.T) {
	h := newRouter(memory.NewStore())

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/owners/", allRoles,
		`{"firstName":"Jean","lastName":"Coleman","address":"105 N. Lake St.","city":"Monona","telephone":"6085552654"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/pettypes/", allRoles, `{"name":"cat"}`).Code)

	rr := do(t, h, http.MethodPost, "/api/pets/", allRoles,
		`{"name":"Max","birthDate":"2012/09/04","type":{"id":1,"name":"cat"},"owner":{"id":1}}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"birthDate":"2012/09/04"`)
	assert.Contains(t, rr.Body.String(), `"owner":{"id":1,"firstName":"Jean","lastName":"Coleman"`)

	rr = do(t, h, http.MethodPost, "/api/pets/", allRoles, `{"name":"Ghost","owner":{"id":9}}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Header().Get("errors"), `"fieldName":"owner.id"`)

	rr = do(t, h, http.MethodPost, "/api/pets/", allRoles, `{"name":"NoOwner"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Header().Get("errors"), `"fieldName":"owner"`)

	rr = do(t, h, http.MethodPost, "/api/visits/", allRoles, `{"date":"2013/01/01","description":"rabies shot","pet":{"id":1}}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/api/pets/1/visits", allRoles, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "rabies shot")

	rr = do(t, h, http.MethodPut, "/api/pets/1", allRoles, `{"name":"Maximus","birthDate":"2012/09/04","owner":{"id":1}}`)
	require.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(t, h, http.MethodGet, "/api/pets/1", allRoles, "")
	assert.Contains(t, rr.Body.String(), `"name":"Maximus"`)
	assert.Contains(t, rr.Body.String(), `"type":null`)

	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/api/owners/1", allRoles, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/pets/1", allRoles, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/visits/", allRoles, "").Code)
}

func TestPetsAndVisits_GetBodyCanBePutBack(t *testing.T) {
	h := newRouter(memory.NewStore())

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/owners/", allRoles,
		`{"firstName":"George","lastName":"Franklin","address":"110 W. Liberty St.","city":"Madison","telephone":"6085551023"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/pettypes/", allRoles, `{"name":"cat"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/pets/", allRoles,
		`{"name":"Leo","birthDate":"2010/09/07","type":{"id":1},"owner":{"id":1}}`).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/visits/", allRoles,
		`{"date":"2013/01/01","description":"rabies shot","pet":{"id":1}}`).Code)

	pet := do(t, h, http.MethodGet, "/api/pets/1", allRoles, "")
	require.Equal(t, http.StatusOK, pet.Code)
	var petBody map[string]any
	require.NoError(t, json.Unmarshal(pet.Body.Bytes(), &petBody))
	owner, ok := petBody["owner"].(map[string]any)
	require.True(t, ok, pet.Body.String())
	assert.Equal(t, "Franklin", owner["lastName"])
	assert.NotContains(t, owner, "pets")

	rr := do(t, h, http.MethodPut, "/api/pets/1", allRoles, pet.Body.String())
	require.Equal(t, http.StatusNoContent, rr.Code, rr.Header().Get("errors"))

	visit := do(t, h, http.MethodGet, "/api/visits/1", allRoles, "")
	require.Equal(t, http.StatusOK, visit.Code)
	var visitBody struct {
		Pet map[string]any `json:"pet"`
	}
	require.NoError(t, json.Unmarshal(visit.Body.Bytes(), &visitBody))
	assert.Equal(t, "Leo", visitBody.Pet["name"])
	assert.Contains(t, visitBody.Pet, "type")
	assert.Contains(t, visitBody.Pet, "owner")
	assert.NotContains(t, visitBody.Pet, "visits")

	rr = do(t, h, http.MethodPut, "/api/visits/1", allRoles, visit.Body.String())
	require.Equal(t, http.StatusNoContent, rr.Code, rr.Header().Get("errors"))

	after := do(t, h, http.MethodGet, "/api/pets/1", allRoles, "")
	assert.JSONEq(t, pet.Body.String(), after.Body.String())
	after = do(t, h, http.MethodGet, "/api/visits/1", allRoles, "")
	assert.JSONEq(t, visit.Body.String(), after.Body.String())
}

func TestDecodeBody_RejectsTrailingData(t *testing.T) {
	h := newRouter(memory.NewStore())

	rr := do(t, h, http.MethodPost, "/api/pettypes/", allRoles, `{"name":"x"} junk`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid json")

	rr = do(t, h, http.MethodPost, "/api/pettypes/", allRoles, `{"name":"x"}{"name":"y"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodPost, "/api/pettypes/", allRoles, "{\"name\":\"x\"}\n")
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestPetTypes_CachedListIsOKWhenEmpty(t *testing.T) {
	h := newRouter(memory.NewStore())

	rr := do(t, h, http.MethodGet, "/api/pets/pettypes", allRoles, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/pettypes/", allRoles, `{"name":"bird"}`).Code)
	rr = do(t, h, http.MethodGet, "/api/pets/pettypes", allRoles, "")
	assert.JSONEq(t, `[{"id":1,"name":"bird"}]`, rr.Body.String())
}

func TestVets_SpecialtiesAndCache(t *testing.T) {
	h := newRouter(memory.NewStore())

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/specialties/", allRoles, `{"name":"radiology"}`).Code)

	rr := do(t, h, http.MethodPost, "/api/vets/", allRoles, `{"firstName":"Helen","lastName":"Leary","specialties":[{"id":1},{"id":1}]}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"specialties":[{"id":1,"name":"radiology"}]`)

	rr = do(t, h, http.MethodPost, "/api/vets/", allRoles, `{"firstName":"Rafael","lastName":"Ortega","specialties":[{"id":5}]}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Header().Get("errors"), `"fieldName":"specialties[0].id"`)

	rr = do(t, h, http.MethodGet, "/api/vets/?cached=true", allRoles, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "radiology")

	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodPut, "/api/specialties/1", allRoles, `{"id":1,"name":"x-ray"}`).Code)
	rr = do(t, h, http.MethodGet, "/api/vets/?cached=true", allRoles, "")
	assert.Contains(t, rr.Body.String(), "x-ray")

	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/api/specialties/1", allRoles, "").Code)
	rr = do(t, h, http.MethodGet, "/api/vets/1", allRoles, "")
	assert.Contains(t, rr.Body.String(), `"specialties":[]`)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/vets/999", allRoles, "").Code)
}

func TestStoreFailure_Returns500OnLists(t *testing.T) {
	h := newRouter(brokenStore{})

	rr := do(t, h, http.MethodGet, "/api/vets/", allRoles, "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	// por id se enmascara como not found
	rr = do(t, h, http.MethodGet, "/api/vets/1", allRoles, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
