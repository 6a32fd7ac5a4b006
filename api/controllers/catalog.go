package controllers

import (
	"net/http"

	"github.com/mannyautos/storefront-backend/api/responses"
	"github.com/mannyautos/storefront-backend/internal/catalog"
	"github.com/mannyautos/storefront-backend/pkg/enums"
)

type catalogMetaResponse struct {
	Version    string `json:"version"`
	PartCount  int    `json:"part_count"`
	Categories int    `json:"categories"`
	Brands     int    `json:"brands"`
}

// CatalogMeta reports the seed version and headline counts.
func CatalogMeta(repo *catalog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, catalogMetaResponse{
			Version:    repo.Version(),
			PartCount:  repo.Len(),
			Categories: len(repo.Categories()),
			Brands:     len(repo.Brands()),
		})
	}
}

// FacetIndex lists every facet dimension with its value set, one round trip
// for the storefront's filter sidebar.
func FacetIndex(repo *catalog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make(map[string][]string, len(enums.Facets()))
		for _, f := range enums.Facets() {
			switch f {
			case enums.FacetBrand:
				out[f.String()] = orEmpty(repo.Brands())
			case enums.FacetModel:
				out[f.String()] = orEmpty(repo.ModelsForBrand(""))
			case enums.FacetCategory:
				out[f.String()] = orEmpty(repo.Categories())
			case enums.FacetTag:
				out[f.String()] = orEmpty(repo.Tags())
			}
		}
		responses.WriteSuccess(w, out)
	}
}

func FacetCategories(repo *catalog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string][]string{"categories": orEmpty(repo.Categories())})
	}
}

func FacetBrands(repo *catalog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string][]string{"brands": orEmpty(repo.Brands())})
	}
}

// FacetModels narrows to ?brand= when given.
func FacetModels(repo *catalog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brand := r.URL.Query().Get("brand")
		responses.WriteSuccess(w, map[string][]string{"models": orEmpty(repo.ModelsForBrand(brand))})
	}
}

func FacetTags(repo *catalog.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string][]string{"tags": orEmpty(repo.Tags())})
	}
}

func TaxonomyBrands(tax *catalog.Taxonomy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string][]string{"brands": orEmpty(tax.BrandNames())})
	}
}

func TaxonomyModels(tax *catalog.Taxonomy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brand := r.URL.Query().Get("brand")
		responses.WriteSuccess(w, map[string][]string{"models": orEmpty(tax.ModelNames(brand))})
	}
}

func TaxonomyYears(tax *catalog.Taxonomy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		years := tax.YearsFor(q.Get("brand"), q.Get("model"))
		if years == nil {
			years = []int{}
		}
		responses.WriteSuccess(w, map[string][]int{"years": years})
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
