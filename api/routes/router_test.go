package routes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	cartsvc "github.com/mannyautos/storefront-backend/internal/cart"
	"github.com/mannyautos/storefront-backend/internal/catalog"
	"github.com/mannyautos/storefront-backend/internal/orders"
	"github.com/mannyautos/storefront-backend/pkg/config"
	"github.com/mannyautos/storefront-backend/pkg/logger"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

func newTestRouter(t *testing.T, cartStore stubPinger) http.Handler {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	repo, err := catalog.NewRepository(cat)
	if err != nil {
		t.Fatalf("indexing catalog: %v", err)
	}
	tax, err := catalog.LoadTaxonomy()
	if err != nil {
		t.Fatalf("loading taxonomy: %v", err)
	}

	svc, err := cartsvc.NewService(cartsvc.NewMemoryStore(), repo, 999)
	if err != nil {
		t.Fatalf("building cart service: %v", err)
	}

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.Search.PageSize = 12
	cfg.Search.MaxPageSize = 50

	return NewRouter(cfg, logg, cartStore, repo, tax, svc, orders.NewHandoff("123"), prometheus.NewRegistry())
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter(t, stubPinger{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("live status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("ready status = %d", rec.Code)
	}
}

func TestRouterReadyFailsWhenStoreDown(t *testing.T) {
	router := newTestRouter(t, stubPinger{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("ready status = %d", rec.Code)
	}
}

func TestRouterMetricsExposed(t *testing.T) {
	router := newTestRouter(t, stubPinger{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
}

func TestRouterSearchAndFacets(t *testing.T) {
	router := newTestRouter(t, stubPinger{})

	for _, target := range []string{
		"/api/v1/catalog/meta",
		"/api/v1/search?q=brake",
		"/api/v1/facets",
		"/api/v1/facets/categories",
		"/api/v1/facets/brands",
		"/api/v1/facets/models?brand=Toyota",
		"/api/v1/facets/tags",
		"/api/v1/taxonomy/brands",
		"/api/v1/taxonomy/models?brand=Toyota",
		"/api/v1/taxonomy/years?brand=Toyota&model=Corolla",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, body = %s", target, rec.Code, rec.Body.String())
		}
	}
}

func TestRouterIssuesSessionID(t *testing.T) {
	router := newTestRouter(t, stubPinger{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	issued := rec.Header().Get("X-Session-Id")
	if issued == "" {
		t.Fatal("expected a session id to be issued")
	}

	// presenting the id back keeps the session
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"part_id":1,"qty":1}`))
	req.Header.Set("X-Session-Id", issued)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-Session-Id"); got != issued {
		t.Fatalf("session id changed: %s -> %s", issued, got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Session-Id", issued)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload struct {
		Data struct {
			Cart struct {
				ItemCount int `json:"item_count"`
			} `json:"cart"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding cart: %v", err)
	}
	if payload.Data.Cart.ItemCount != 1 {
		t.Fatalf("item count = %d", payload.Data.Cart.ItemCount)
	}
}

func TestRouterRequestIDHeader(t *testing.T) {
	router := newTestRouter(t, stubPinger{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected a request id header")
	}

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got != "fixed-id" {
		t.Fatalf("request id = %s", got)
	}
}
