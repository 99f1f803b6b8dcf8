package categories

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
	svc := NewService(newMemoryRepo(), nil)
	handler := NewHandler(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), svc)
	r := chi.NewRouter()
	r.Route("/api/categories", handler.MountRoutes)
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

func TestCategoryCRUD(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/categories", `{"name":"Electronics","categoryCode":"ELEC"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/api/categories/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Electronics")

	rr = doJSON(t, r, http.MethodGet, "/api/categories/code/ELEC", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, r, http.MethodPut, "/api/categories/1", `{"name":"Gadgets"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Gadgets")

	rr = doJSON(t, r, http.MethodDelete, "/api/categories/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Category deleted successfully")
}

func TestCategoryCodeFormatRejected(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/categories", `{"name":"Electronics","categoryCode":"elec!"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHierarchyAndChildCount(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/categories", `{"name":"Electronics"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = doJSON(t, r, http.MethodPost, "/api/categories", `{"name":"Phones","parentCategoryId":1}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/api/categories/1/hierarchy", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Electronics")
	require.Contains(t, rr.Body.String(), "Phones")

	rr = doJSON(t, r, http.MethodGet, "/api/categories/1/subcategories/count", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "1\n", rr.Body.String())

	rr = doJSON(t, r, http.MethodDelete, "/api/categories/1", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "Cannot delete category with subcategories")
}

func TestVisibilityAndFeatureRoutes(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/categories", `{"name":"Electronics"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, r, http.MethodPut, "/api/categories/1/hide", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"isVisible":false`)

	rr = doJSON(t, r, http.MethodGet, "/api/categories/hidden", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Electronics")

	rr = doJSON(t, r, http.MethodPut, "/api/categories/1/feature", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/api/categories/featured/true/visible/false", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Electronics")
}

func TestQueryParamPatches(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/categories", `{"name":"Electronics"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, r, http.MethodPut, "/api/categories/1/product-count?productCount=12", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"productCount":12`)

	rr = doJSON(t, r, http.MethodPut, "/api/categories/1/display-order?displayOrder=3", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"displayOrder":3`)

	rr = doJSON(t, r, http.MethodPut, "/api/categories/1/tags?tags=tech,home", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "tech,home")

	rr = doJSON(t, r, http.MethodPut, "/api/categories/1/product-count?productCount=oops", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCriteriaRoute(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/categories", `{"name":"Electronics","isFeatured":true}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = doJSON(t, r, http.MethodPost, "/api/categories", `{"name":"Clothing"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/api/categories/criteria?active=true&isFeatured=true", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Electronics")
	require.NotContains(t, rr.Body.String(), "Clothing")

	rr = doJSON(t, r, http.MethodGet, "/api/categories/criteria?isFeatured=banana", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
