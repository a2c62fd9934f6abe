package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"pandapos/internal/pos"
)

type failingRepo struct{}

func (failingRepo) ListByCategory(ctx context.Context, c pos.Category) ([]Food, error) {
	return nil, errors.New("db down")
}

func (failingRepo) GetByID(ctx context.Context, id int) (*Food, error) {
	return nil, errors.New("db down")
}

func newMenuRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewService(repo))

	r := gin.New()
	r.GET("/menu/sides", h.Sides)
	r.GET("/menu/entrees", h.Entrees)
	r.GET("/menu/appetizers", h.Appetizers)
	return r
}

func TestMenuResponseIsKeyedByCategory(t *testing.T) {
	r := newMenuRouter(testRepo())

	req := httptest.NewRequest(http.MethodGet, "/menu/sides", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"sides"`) {
		t.Fatalf("response not keyed by category: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Fried Rice") {
		t.Fatalf("missing seeded side: %s", w.Body.String())
	}
}

func TestEmptyCategoryIsAnEmptyList(t *testing.T) {
	r := newMenuRouter(testRepo())

	req := httptest.NewRequest(http.MethodGet, "/menu/appetizers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"appetizers":[]`) {
		t.Fatalf("expected empty list, got: %s", w.Body.String())
	}
}

func TestCatalogFailureIsAnErrorBody(t *testing.T) {
	r := newMenuRouter(failingRepo{})

	req := httptest.NewRequest(http.MethodGet, "/menu/entrees", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"error"`) {
		t.Fatalf("no error field in body: %s", w.Body.String())
	}
}
