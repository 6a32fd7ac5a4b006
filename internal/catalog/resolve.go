package catalog

import (
	pkgerrors "github.com/mannyautos/storefront-backend/pkg/errors"
)

// Selection pins zero or more of the brand/model/year dimensions ahead of
// variant resolution. Zero values mean "not chosen".
type Selection struct {
	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
	Year  int    `json:"year,omitempty"`
}

// Pinned reports whether all three dimensions are chosen.
func (s Selection) Pinned() bool {
	return s.Brand != "" && s.Model != "" && s.Year != 0
}

// ResolveVariant picks the concrete variant a cart/order action should use.
// Priority: an exact brand+model+year match when all three are pinned, then
// the first variant matching every pinned dimension, then the part's first
// declared variant. A part with no variants is not purchasable.
func ResolveVariant(part PartRecord, sel Selection) (Variant, error) {
	if len(part.Variants) == 0 {
		return Variant{}, pkgerrors.New(pkgerrors.CodeNoVariant, "part has no purchasable variant").
			WithDetails(map[string]any{"part_id": part.ID})
	}

	if sel.Pinned() {
		for _, v := range part.Variants {
			if v.Brand == sel.Brand && v.Model == sel.Model && v.Year == sel.Year {
				return v, nil
			}
		}
	}

	for _, v := range part.Variants {
		if sel.Brand != "" && v.Brand != sel.Brand {
			continue
		}
		if sel.Model != "" && v.Model != sel.Model {
			continue
		}
		return v, nil
	}

	return part.Variants[0], nil
}

// InferSelection derives a pre-selection from the active facet filters: a
// single selected brand or model that actually appears in the part's
// compatibilities pins that dimension, and the year is pinned only when it is
// unique among variants matching the pinned pair.
func InferSelection(part PartRecord, brandFilters, modelFilters []string) Selection {
	var sel Selection

	if len(brandFilters) == 1 {
		b := brandFilters[0]
		for _, c := range part.Compatibilities {
			if c.Brand == b {
				sel.Brand = b
				break
			}
		}
	}

	if len(modelFilters) == 1 {
		m := modelFilters[0]
		for _, c := range part.Compatibilities {
			if c.Model == m {
				sel.Model = m
				break
			}
		}
	}

	if sel.Brand != "" && sel.Model != "" {
		years := make(map[int]struct{})
		last := 0
		for _, v := range part.Variants {
			if v.Brand == sel.Brand && v.Model == sel.Model {
				years[v.Year] = struct{}{}
				last = v.Year
			}
		}
		if len(years) == 1 {
			sel.Year = last
		}
	}

	return sel
}

// SelectionChoices lists the candidate values for the variant picker cascade:
// brands come from compatibilities, models narrow by the chosen brand, years
// come from variants matching the chosen pair.
type SelectionChoices struct {
	Brands []string `json:"brands"`
	Models []string `json:"models"`
	Years  []int    `json:"years"`
}

// ChoicesFor computes the picker options for a part given the dimensions
// already chosen.
func ChoicesFor(part PartRecord, sel Selection) SelectionChoices {
	choices := SelectionChoices{Brands: []string{}, Models: []string{}, Years: []int{}}

	seenB := make(map[string]struct{})
	seenM := make(map[string]struct{})
	for _, c := range part.Compatibilities {
		if _, ok := seenB[c.Brand]; !ok {
			seenB[c.Brand] = struct{}{}
			choices.Brands = append(choices.Brands, c.Brand)
		}
		if sel.Brand != "" && c.Brand != sel.Brand {
			continue
		}
		if _, ok := seenM[c.Model]; !ok {
			seenM[c.Model] = struct{}{}
			choices.Models = append(choices.Models, c.Model)
		}
	}

	seenY := make(map[int]struct{})
	for _, v := range part.Variants {
		if sel.Brand != "" && v.Brand != sel.Brand {
			continue
		}
		if sel.Model != "" && v.Model != sel.Model {
			continue
		}
		if _, ok := seenY[v.Year]; !ok {
			seenY[v.Year] = struct{}{}
			choices.Years = append(choices.Years, v.Year)
		}
	}

	return choices
}
