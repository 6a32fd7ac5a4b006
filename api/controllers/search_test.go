package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mannyautos/storefront-backend/internal/catalog"
	"github.com/mannyautos/storefront-backend/pkg/config"
)

func searchHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return Search(testRepo(t), config.SearchConfig{PageSize: 12, MaxPageSize: 50}, testLogger())
}

type searchPayload struct {
	Query      string               `json:"query"`
	Parts      []catalog.PartRecord `json:"parts"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	Total      int                  `json:"total"`
	TotalPages int                  `json:"total_pages"`
}

func TestSearchEmptyQueryReturnsCatalogOrder(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search", nil)
	rec := httptest.NewRecorder()
	searchHandler(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload searchPayload
	decodeEnvelope(t, rec, &payload)
	if payload.Total != 3 || len(payload.Parts) != 3 {
		t.Fatalf("total = %d, parts = %d", payload.Total, len(payload.Parts))
	}
	if payload.Parts[0].ID != 1 || payload.Parts[2].ID != 3 {
		t.Fatalf("unexpected order: %d, %d", payload.Parts[0].ID, payload.Parts[2].ID)
	}
}

func TestSearchQueryRanksAndNormalizes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=%20BRAKE%20", nil)
	rec := httptest.NewRecorder()
	searchHandler(t).ServeHTTP(rec, req)

	var payload searchPayload
	decodeEnvelope(t, rec, &payload)
	if payload.Query != "brake" {
		t.Fatalf("query = %q", payload.Query)
	}
	if len(payload.Parts) != 1 || payload.Parts[0].ID != 1 {
		t.Fatalf("parts = %v", payload.Parts)
	}
}

func TestSearchFacetFilters(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?brand=Toyota&brand=Honda&category=Engine+Components", nil)
	rec := httptest.NewRecorder()
	searchHandler(t).ServeHTTP(rec, req)

	var payload searchPayload
	decodeEnvelope(t, rec, &payload)
	if len(payload.Parts) != 1 || payload.Parts[0].ID != 2 {
		t.Fatalf("parts = %v", payload.Parts)
	}
}

func TestSearchDrilldown(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?in_category=Exterior+Accessories", nil)
	rec := httptest.NewRecorder()
	searchHandler(t).ServeHTTP(rec, req)

	var payload searchPayload
	decodeEnvelope(t, rec, &payload)
	if len(payload.Parts) != 1 || payload.Parts[0].ID != 3 {
		t.Fatalf("parts = %v", payload.Parts)
	}
}

func TestSearchPaginationClamps(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?page=99&page_size=2", nil)
	rec := httptest.NewRecorder()
	searchHandler(t).ServeHTTP(rec, req)

	var payload searchPayload
	decodeEnvelope(t, rec, &payload)
	if payload.Page != 2 || payload.TotalPages != 2 {
		t.Fatalf("page = %d of %d", payload.Page, payload.TotalPages)
	}
	if len(payload.Parts) != 1 {
		t.Fatalf("parts = %d", len(payload.Parts))
	}
}

func TestSearchRejectsNonNumericPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?page=abc", nil)
	rec := httptest.NewRecorder()
	searchHandler(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "VALIDATION_ERROR" {
		t.Fatalf("code = %s", code)
	}
}
