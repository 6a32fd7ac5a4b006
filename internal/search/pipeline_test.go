package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mannyautos/storefront-backend/internal/catalog"
	"github.com/mannyautos/storefront-backend/pkg/enums"
)

func fixtureParts() []catalog.PartRecord {
	return []catalog.PartRecord{
		{
			ID: 1, Name: "Brake Disc", Category: "Chassis Accessories",
			Keywords: []string{"brake disc", "rotor"},
			Tags:     []string{"brakes"},
			Compatibilities: []catalog.Compatibility{
				{Brand: "Toyota", Model: "Corolla", Years: "2008–2013"},
			},
			Variants: []catalog.Variant{
				{Brand: "Toyota", Model: "Corolla", Year: 2010, Price: 18500, Availability: enums.AvailabilityInStock},
			},
		},
		{
			ID: 2, Name: "Brake Pads", Category: "Chassis Accessories",
			Keywords: []string{"brake pads"},
			Tags:     []string{"brakes"},
			Compatibilities: []catalog.Compatibility{
				{Brand: "Honda", Model: "Civic", Years: "2006–2011"},
			},
		},
		{
			ID: 3, Name: "Oil Filter (C-Class)", Category: "Engine Components",
			Keywords: []string{"oil filter"},
			Tags:     []string{"service"},
			Compatibilities: []catalog.Compatibility{
				{Brand: "Mercedes-Benz", Model: "C-Class", Years: "2014–2020"},
			},
		},
		{
			ID: 4, Name: "Parking Cable", Category: "Chassis Accessories",
			Keywords: []string{"handbrake"},
			Tags:     []string{"brakes", "rear"},
			Compatibilities: []catalog.Compatibility{
				{Brand: "Toyota", Model: "Camry", Years: "2012–2017"},
			},
		},
	}
}

func ids(parts []catalog.PartRecord) []int {
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		out = append(out, p.ID)
	}
	return out
}

func TestRunEmptyQueryKeepsCatalogOrder(t *testing.T) {
	got := Run(fixtureParts(), FacetState{}, "")
	assert.Equal(t, []int{1, 2, 3, 4}, ids(got))
}

func TestRunSubstringGate(t *testing.T) {
	got := Run(fixtureParts(), FacetState{}, "brake")
	// every survivor contains the query somewhere in its searchable text
	assert.ElementsMatch(t, []int{1, 2, 4}, ids(got))
}

func TestRunRankingIsStableAndDeterministic(t *testing.T) {
	first := Run(fixtureParts(), FacetState{}, "brake")
	for i := 0; i < 5; i++ {
		assert.Equal(t, ids(first), ids(Run(fixtureParts(), FacetState{}, "brake")))
	}

	// "Brake Disc" and "Brake Pads" outrank the keyword-only match on
	// "Parking Cable"; their tie keeps catalog order
	require.Len(t, first, 3)
	assert.Equal(t, 4, first[2].ID)
	assert.Equal(t, 1, first[0].ID)
	assert.Equal(t, 2, first[1].ID)
}

func TestRunFacetUnionWithinIntersectionAcross(t *testing.T) {
	parts := fixtureParts()

	// union within the brand facet
	got := Run(parts, FacetState{Brands: []string{"Toyota", "Honda"}}, "")
	assert.ElementsMatch(t, []int{1, 2, 4}, ids(got))

	// intersection across brand and tag facets
	got = Run(parts, FacetState{Brands: []string{"Toyota", "Honda"}, Tags: []string{"rear"}}, "")
	assert.Equal(t, []int{4}, ids(got))
}

func TestRunFacetMatchesExactValuesOnly(t *testing.T) {
	// facet values never substring-match: "Toyo" selects nothing
	got := Run(fixtureParts(), FacetState{Brands: []string{"Toyo"}}, "")
	assert.Empty(t, got)
}

func TestRunCategoryDrilldown(t *testing.T) {
	got := Run(fixtureParts(), FacetState{Drilldown: "Engine Components"}, "")
	assert.Equal(t, []int{3}, ids(got))

	// drilldown composes with the query
	got = Run(fixtureParts(), FacetState{Drilldown: "Engine Components"}, "brake")
	assert.Empty(t, got)
}

func TestRunQueryIsLiteralText(t *testing.T) {
	// regex metacharacters match literally, not as patterns
	got := Run(fixtureParts(), FacetState{}, "(c-class)")
	assert.Equal(t, []int{3}, ids(got))

	got = Run(fixtureParts(), FacetState{}, ".*")
	assert.Empty(t, got)
}

func TestRunFilteredSubsetOfUnfiltered(t *testing.T) {
	all := Run(fixtureParts(), FacetState{}, "brake")
	filtered := Run(fixtureParts(), FacetState{Tags: []string{"brakes"}}, "brake")

	universe := make(map[int]struct{})
	for _, p := range all {
		universe[p.ID] = struct{}{}
	}
	for _, p := range filtered {
		_, ok := universe[p.ID]
		assert.True(t, ok, "filtered result %d missing from unfiltered set", p.ID)
	}
}
