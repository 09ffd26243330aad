package services_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louiss0/cargo-build-delegator/services"
)

func newRegistryWithHandler(t *testing.T, handler http.HandlerFunc) services.CratesRegistryService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return services.NewCratesRegistryServiceWithClient(server.Client(), server.URL+"/api/v1/crates")
}

func TestSearchCratesDecodesRegistryResponse(t *testing.T) {
	gofakeit.Seed(0)
	serdeDescription := gofakeit.Sentence(4)

	registry := newRegistryWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "serde", r.URL.Query().Get("q"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"crates": [
				{"name": "serde", "max_version": "1.0.210", "description": %q, "homepage": "https://serde.rs", "repository": "https://github.com/serde-rs/serde"},
				{"name": "serde_json", "max_version": "1.0.128", "description": "JSON support", "homepage": "", "repository": "https://github.com/serde-rs/json"}
			]
		}`, serdeDescription)
	})

	crates, err := registry.SearchCrates("serde", 10)

	require.NoError(t, err)
	require.Len(t, crates, 2)

	assert.Equal(t, services.CrateInfo{
		Name:        "serde",
		MaxVersion:  "1.0.210",
		Description: serdeDescription,
		Homepage:    "https://serde.rs",
	}, crates[0])

	// Repository is the fallback when no homepage is set
	assert.Equal(t, "https://github.com/serde-rs/json", crates[1].Homepage)
}

func TestSearchCratesRejectsEmptyPattern(t *testing.T) {
	registry := services.NewCratesRegistryServiceWithClient(http.DefaultClient, "http://localhost:0")

	_, err := registry.SearchCrates("", 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestSearchCratesSurfacesHTTPFailures(t *testing.T) {
	registry := newRegistryWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
	})

	_, err := registry.SearchCrates("serde", 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestSearchCratesSurfacesMalformedPayloads(t *testing.T) {
	registry := newRegistryWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json at all")
	})

	_, err := registry.SearchCrates("serde", 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse crates.io response")
}

func TestSearchCratesDefaultsNonPositiveSize(t *testing.T) {
	registry := newRegistryWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `{"crates": []}`)
	})

	crates, err := registry.SearchCrates("serde", 0)

	require.NoError(t, err)
	assert.Empty(t, crates)
}
