package search

import (
	"sort"
	"strings"

	"github.com/mannyautos/storefront-backend/internal/catalog"
)

// FacetState holds the active filter values. Each field is a value set:
// a record must match at least one value in every non-empty set to survive
// (union within a facet, intersection across facets). Drilldown is the
// category drill-down view and filters by exact equality before the sets.
type FacetState struct {
	Brands     []string
	Models     []string
	Categories []string
	Tags       []string
	Drilldown  string
}

// Empty reports whether no filter is active.
func (f FacetState) Empty() bool {
	return len(f.Brands) == 0 && len(f.Models) == 0 &&
		len(f.Categories) == 0 && len(f.Tags) == 0 && f.Drilldown == ""
}

// Run narrows the catalog by the facet state and free-text query, then
// orders the survivors by descending relevance. The sort is stable, so ties
// and empty-query runs preserve catalog order; identical inputs always yield
// identical output. The query is matched as literal text, never as a pattern.
func Run(parts []catalog.PartRecord, facets FacetState, query string) []catalog.PartRecord {
	q := Normalize(query)

	out := make([]catalog.PartRecord, 0, len(parts))
	for _, p := range parts {
		if facets.Drilldown != "" && p.Category != facets.Drilldown {
			continue
		}
		if !matchesFacets(p, facets) {
			continue
		}
		if q != "" && !strings.Contains(searchText(p), q) {
			continue
		}
		out = append(out, p)
	}

	if q == "" {
		return out
	}

	type scored struct {
		part  catalog.PartRecord
		score int
	}
	ranked := make([]scored, len(out))
	for i, p := range out {
		ranked[i] = scored{part: p, score: Score(p, q)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	for i, r := range ranked {
		out[i] = r.part
	}
	return out
}

func matchesFacets(p catalog.PartRecord, f FacetState) bool {
	if len(f.Brands) > 0 && !anyEqual(f.Brands, p.Brands()) {
		return false
	}
	if len(f.Models) > 0 && !anyEqual(f.Models, p.Models()) {
		return false
	}
	if len(f.Categories) > 0 && !anyEqual(f.Categories, []string{p.Category}) {
		return false
	}
	if len(f.Tags) > 0 && !anyEqual(f.Tags, p.Tags) {
		return false
	}
	return true
}

func anyEqual(wanted, have []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}

// searchText concatenates every searchable field into one lowercase haystack
// for the substring gate.
func searchText(p catalog.PartRecord) string {
	fields := []string{p.Name, p.StreetName, p.Use, p.Description, p.Category}
	fields = append(fields, p.Keywords...)
	fields = append(fields, p.Tags...)
	fields = append(fields, p.Brands()...)
	fields = append(fields, p.Models()...)
	fields = append(fields, p.Years()...)
	return strings.ToLower(strings.Join(fields, " "))
}
