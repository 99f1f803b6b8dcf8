package addresses

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	svc := NewService(newMemoryRepo())
	handler := NewHandler(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), svc)
	r := chi.NewRouter()
	r.Route("/api/addresses", handler.MountRoutes)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAddressCRUD(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/addresses", `{"street":"1 Infinite Loop","city":"Cupertino","country":"US","postalCode":"95014"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/api/addresses/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Cupertino")

	rr = doJSON(t, r, http.MethodDelete, "/api/addresses/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Address deleted successfully")
}

func TestDuplicateAddressIs400(t *testing.T) {
	r := newTestRouter(t)

	payload := `{"street":"1 Infinite Loop","city":"Cupertino","country":"US","postalCode":"95014"}`
	rr := doJSON(t, r, http.MethodPost, "/api/addresses", payload)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, r, http.MethodPost, "/api/addresses", payload)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "Address already exists with same street, city, and postal code")
}

func TestCoordinatePatchAndWindow(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/addresses", `{"street":"1 Infinite Loop","city":"Cupertino","country":"US","postalCode":"95014"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, r, http.MethodPut, "/api/addresses/1/coordinates", `{"latitude":37.33,"longitude":-122.03}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"latitude":37.33`)

	rr = doJSON(t, r, http.MethodGet, "/api/addresses/coordinates?minLat=30&maxLat=40&minLng=-130&maxLng=-110", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Cupertino")

	rr = doJSON(t, r, http.MethodGet, "/api/addresses/coordinates?minLat=30&maxLat=40&minLng=-130", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPrimaryRoutes(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/addresses", `{"street":"1 Infinite Loop","city":"Cupertino","country":"US","postalCode":"95014"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, r, http.MethodPut, "/api/addresses/1/set-primary", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"isPrimary":true`)

	rr = doJSON(t, r, http.MethodGet, "/api/addresses/primary", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Cupertino")

	rr = doJSON(t, r, http.MethodPut, "/api/addresses/1/set-non-primary", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/api/addresses/primary", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "[]\n", rr.Body.String())
}

func TestPostalCodePatternRoute(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/addresses", `{"street":"1 Infinite Loop","city":"Cupertino","country":"US","postalCode":"95014"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = doJSON(t, r, http.MethodPost, "/api/addresses", `{"street":"2 Market Street","city":"San Francisco","country":"US","postalCode":"94105"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/api/addresses/postal-code-pattern?pattern=950%25", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Cupertino")
	require.NotContains(t, rr.Body.String(), "San Francisco")
}
