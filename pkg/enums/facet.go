package enums

import "fmt"

// Facet names a catalog dimension the storefront can narrow by.
type Facet string

const (
	FacetBrand    Facet = "brand"
	FacetModel    Facet = "model"
	FacetCategory Facet = "category"
	FacetTag      Facet = "tag"
)

var validFacets = []Facet{
	FacetBrand,
	FacetModel,
	FacetCategory,
	FacetTag,
}

// Facets lists every known facet in presentation order.
func Facets() []Facet {
	out := make([]Facet, len(validFacets))
	copy(out, validFacets)
	return out
}

// String implements fmt.Stringer.
func (f Facet) String() string {
	return string(f)
}

// IsValid reports whether the value is a known Facet.
func (f Facet) IsValid() bool {
	for _, candidate := range validFacets {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFacet converts raw input into a Facet.
func ParseFacet(value string) (Facet, error) {
	for _, candidate := range validFacets {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid facet %q", value)
}
