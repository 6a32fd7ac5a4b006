package catalog

import (
	"encoding/json"
	"fmt"
)

// Taxonomy is the static brand → model → year cascade behind the vehicle
// selector. It is independent of the part list: the selector offers current
// model years even where the catalog's fitments cover older ones.
type Taxonomy struct {
	Brands []TaxonomyBrand `json:"brands"`
}

type TaxonomyBrand struct {
	Brand  string          `json:"brand"`
	Models []TaxonomyModel `json:"models"`
}

type TaxonomyModel struct {
	Name  string `json:"name"`
	Years []int  `json:"years"`
}

// LoadTaxonomy parses the embedded vehicle taxonomy.
func LoadTaxonomy() (*Taxonomy, error) {
	raw, err := seedFS.ReadFile("data/taxonomy.json")
	if err != nil {
		return nil, fmt.Errorf("read seed taxonomy: %w", err)
	}
	var t Taxonomy
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}
	return &t, nil
}

// BrandNames lists the selector's brands in declaration order.
func (t *Taxonomy) BrandNames() []string {
	out := make([]string, 0, len(t.Brands))
	for _, b := range t.Brands {
		out = append(out, b.Brand)
	}
	return out
}

// ModelNames lists models for one brand, or every model when brand is empty.
func (t *Taxonomy) ModelNames(brand string) []string {
	var out []string
	for _, b := range t.Brands {
		if brand != "" && b.Brand != brand {
			continue
		}
		for _, m := range b.Models {
			out = append(out, m.Name)
		}
	}
	return out
}

// YearsFor lists the model years for a brand+model pair, narrowing by
// whichever of the two is provided.
func (t *Taxonomy) YearsFor(brand, model string) []int {
	var out []int
	seen := make(map[int]struct{})
	for _, b := range t.Brands {
		if brand != "" && b.Brand != brand {
			continue
		}
		for _, m := range b.Models {
			if model != "" && m.Name != model {
				continue
			}
			for _, y := range m.Years {
				if _, ok := seen[y]; ok {
					continue
				}
				seen[y] = struct{}{}
				out = append(out, y)
			}
		}
	}
	return out
}
