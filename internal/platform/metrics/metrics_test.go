package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ExposesCounters(t *testing.T) {
	m := New("petclinic")
	m.ObserveRequest("GET", "/api/vets/", 200, 15*time.Millisecond)
	m.ObserveCache("vets", false)
	m.ObserveCache("vets", true)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := string(body)

	assert.Contains(t, out, `petclinic_http_requests_total{method="GET",route="/api/vets/",status="200"} 1`)
	assert.Contains(t, out, `petclinic_cache_lookups_total{kind="vets",result="hit"} 1`)
	assert.Contains(t, out, `petclinic_cache_lookups_total{kind="vets",result="miss"} 1`)
}
