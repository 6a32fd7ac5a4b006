package controllers

import (
	"net/http"

	"github.com/mannyautos/storefront-backend/api/responses"
	"github.com/mannyautos/storefront-backend/api/validators"
	"github.com/mannyautos/storefront-backend/internal/catalog"
	"github.com/mannyautos/storefront-backend/internal/search"
	"github.com/mannyautos/storefront-backend/pkg/config"
	"github.com/mannyautos/storefront-backend/pkg/logger"
	"github.com/mannyautos/storefront-backend/pkg/pagination"
)

type searchResponse struct {
	Query   string               `json:"query"`
	Filters searchFilters        `json:"filters"`
	Parts   []catalog.PartRecord `json:"parts"`
	pagination.Window
}

type searchFilters struct {
	Brands     []string `json:"brands"`
	Models     []string `json:"models"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
	InCategory string   `json:"in_category,omitempty"`
}

// Search runs the free-text query and facet filters over the catalog and
// returns one page of ranked results.
func Search(repo *catalog.Repository, searchCfg config.SearchConfig, logg *logger.Logger) http.HandlerFunc {
	defaultSize := searchCfg.PageSize
	if defaultSize <= 0 {
		defaultSize = pagination.DefaultPageSize
	}
	maxSize := searchCfg.MaxPageSize
	if maxSize <= 0 {
		maxSize = pagination.MaxPageSize
	}

	return func(w http.ResponseWriter, r *http.Request) {
		page, err := validators.QueryInt(r, "page", 1)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		pageSize, err := validators.QueryInt(r, "page_size", defaultSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if pageSize <= 0 {
			pageSize = defaultSize
		}
		if pageSize > maxSize {
			pageSize = maxSize
		}

		facets := search.FacetState{
			Brands:     validators.QueryStrings(r, "brand"),
			Models:     validators.QueryStrings(r, "model"),
			Categories: validators.QueryStrings(r, "category"),
			Tags:       validators.QueryStrings(r, "tag"),
			Drilldown:  r.URL.Query().Get("in_category"),
		}
		query := r.URL.Query().Get("q")

		ranked := search.Run(repo.All(), facets, query)
		window := pagination.Compute(len(ranked), page, pageSize)

		parts := ranked[window.Start:window.End]
		if parts == nil {
			parts = []catalog.PartRecord{}
		}

		responses.WriteSuccess(w, searchResponse{
			Query: search.Normalize(query),
			Filters: searchFilters{
				Brands:     orEmpty(facets.Brands),
				Models:     orEmpty(facets.Models),
				Categories: orEmpty(facets.Categories),
				Tags:       orEmpty(facets.Tags),
				InCategory: facets.Drilldown,
			},
			Parts:  parts,
			Window: window,
		})
	}
}
