package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mannyautos/storefront-backend/internal/catalog"
)

func partRequest(target, id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestPartByID(t *testing.T) {
	handler := PartByID(testRepo(t), testLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, partRequest("/api/v1/parts/1", "1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var part catalog.PartRecord
	decodeEnvelope(t, rec, &part)
	if part.Name != "Brake Disc" {
		t.Fatalf("name = %q", part.Name)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, partRequest("/api/v1/parts/99", "99"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, partRequest("/api/v1/parts/abc", "abc"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

type selectionPayload struct {
	Selection catalog.Selection        `json:"selection"`
	Choices   catalog.SelectionChoices `json:"choices"`
	Resolved  *catalog.Variant         `json:"resolved"`
}

func TestPartSelectionExplicitPin(t *testing.T) {
	handler := PartSelection(testRepo(t), testLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, partRequest("/api/v1/parts/1/selection?brand=Toyota&model=Corolla&year=2012", "1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload selectionPayload
	decodeEnvelope(t, rec, &payload)
	if payload.Resolved == nil || payload.Resolved.Price != 19500 {
		t.Fatalf("resolved = %+v", payload.Resolved)
	}
	if len(payload.Choices.Years) != 2 {
		t.Fatalf("years = %v", payload.Choices.Years)
	}
}

func TestPartSelectionInfersFromFilters(t *testing.T) {
	handler := PartSelection(testRepo(t), testLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, partRequest("/api/v1/parts/2/selection?filter_brand=Honda", "2"))

	var payload selectionPayload
	decodeEnvelope(t, rec, &payload)
	if payload.Selection.Brand != "Honda" {
		t.Fatalf("selection = %+v", payload.Selection)
	}
}

func TestPartSelectionNoVariants(t *testing.T) {
	handler := PartSelection(testRepo(t), testLogger())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, partRequest("/api/v1/parts/3/selection", "3"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload selectionPayload
	decodeEnvelope(t, rec, &payload)
	if payload.Resolved != nil {
		t.Fatalf("resolved = %+v, want absent", payload.Resolved)
	}
}
