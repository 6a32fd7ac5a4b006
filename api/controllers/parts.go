package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mannyautos/storefront-backend/api/responses"
	"github.com/mannyautos/storefront-backend/api/validators"
	"github.com/mannyautos/storefront-backend/internal/catalog"
	pkgerrors "github.com/mannyautos/storefront-backend/pkg/errors"
	"github.com/mannyautos/storefront-backend/pkg/logger"
)

// PartByID returns one catalog record.
func PartByID(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathInt(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithPartID(ctx, id)
		}

		part, err := repo.ByID(id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, part)
	}
}

type selectionResponse struct {
	Selection catalog.Selection        `json:"selection"`
	Choices   catalog.SelectionChoices `json:"choices"`
	Resolved  *catalog.Variant         `json:"resolved,omitempty"`
}

// PartSelection drives the variant picker. Explicit brand/model/year query
// parameters pin dimensions; when none are given, the active filter values
// (filter_brand, filter_model) pre-select what they unambiguously imply.
// Resolved is the variant an add-to-cart would use right now, absent for
// parts with nothing purchasable.
func PartSelection(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathInt(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithPartID(ctx, id)
		}

		part, err := repo.ByID(id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		year, err := validators.QueryInt(r, "year", 0)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		sel := catalog.Selection{
			Brand: r.URL.Query().Get("brand"),
			Model: r.URL.Query().Get("model"),
			Year:  year,
		}
		if sel.Brand == "" && sel.Model == "" && sel.Year == 0 {
			sel = catalog.InferSelection(part,
				validators.QueryStrings(r, "filter_brand"),
				validators.QueryStrings(r, "filter_model"))
		}

		resp := selectionResponse{
			Selection: sel,
			Choices:   catalog.ChoicesFor(part, sel),
		}
		if variant, err := catalog.ResolveVariant(part, sel); err == nil {
			resp.Resolved = &variant
		} else if !pkgerrors.IsCode(err, pkgerrors.CodeNoVariant) {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}
