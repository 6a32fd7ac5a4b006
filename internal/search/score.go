package search

import (
	"strconv"
	"strings"

	"github.com/mannyautos/storefront-backend/internal/catalog"
)

// Additive relevance weights. Multiple rules may fire for one record and
// multi-valued fields accumulate per matching token; that asymmetry is the
// storefront's established ranking behavior and is kept as-is.
const (
	weightNameExact     = 200
	weightNameSubstring = 120
	weightIDExact       = 150
	weightKeywordExact  = 90
	weightKeywordSub    = 40
	weightStreetOrUse   = 30
	weightBrandToken    = 25
	weightModelToken    = 20
	weightYearToken     = 15
	weightCategory      = 10
)

// Normalize canonicalizes a free-text query for matching and scoring.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Score rates how well a part matches the normalized query. An empty query
// scores zero, as does a record no rule fires for.
func Score(p catalog.PartRecord, query string) int {
	if query == "" {
		return 0
	}

	score := 0

	name := strings.ToLower(p.Name)
	switch {
	case name == query:
		score += weightNameExact
	case strings.Contains(name, query):
		score += weightNameSubstring
	}

	for _, kw := range p.Keywords {
		k := strings.ToLower(kw)
		switch {
		case k == query:
			score += weightKeywordExact
		case strings.Contains(k, query):
			score += weightKeywordSub
		}
	}

	street := strings.ToLower(p.StreetName)
	use := strings.ToLower(p.Use)
	if (street != "" && strings.Contains(street, query)) ||
		(use != "" && strings.Contains(use, query)) {
		score += weightStreetOrUse
	}

	for _, b := range p.Brands() {
		if strings.Contains(strings.ToLower(b), query) {
			score += weightBrandToken
		}
	}
	for _, m := range p.Models() {
		if strings.Contains(strings.ToLower(m), query) {
			score += weightModelToken
		}
	}
	for _, y := range p.Years() {
		if strings.Contains(strings.ToLower(y), query) {
			score += weightYearToken
		}
	}

	if strings.Contains(strings.ToLower(p.Category), query) {
		score += weightCategory
	}

	if strconv.Itoa(p.ID) == query {
		score += weightIDExact
	}

	return score
}
