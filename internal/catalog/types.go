package catalog

import (
	"strconv"

	"github.com/mannyautos/storefront-backend/pkg/enums"
)

// PartRecord is one immutable catalog entry. Records are created once at
// load time and never mutated; cart lines reference them by ID only.
type PartRecord struct {
	ID              int                `json:"id"`
	Name            string             `json:"name"`
	StreetName      string             `json:"street_name,omitempty"`
	Use             string             `json:"use,omitempty"`
	Description     string             `json:"description"`
	Category        string             `json:"category"`
	Image           string             `json:"image"`
	OEMCodes        []string           `json:"oem"`
	Price           int64              `json:"price"`
	Availability    enums.Availability `json:"availability"`
	Compatibilities []Compatibility    `json:"compatibilities"`
	Keywords        []string           `json:"keywords"`
	Tags            []string           `json:"tags,omitempty"`
	Variants        []Variant          `json:"variants,omitempty"`
}

// Compatibility describes one vehicle fitment. It is display metadata only
// and never participates in pricing.
type Compatibility struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Years string `json:"years"`
}

// Variant is the concrete purchasable configuration of a part.
type Variant struct {
	Brand        string             `json:"brand"`
	Model        string             `json:"model"`
	Year         int                `json:"year"`
	Price        int64              `json:"price"`
	Availability enums.Availability `json:"availability"`
}

// Brands returns the deduplicated brand tokens across compatibilities and
// variants, in declaration order.
func (p PartRecord) Brands() []string {
	return dedupe(collect(
		func(c Compatibility) string { return c.Brand },
		func(v Variant) string { return v.Brand },
		p,
	))
}

// Models returns the deduplicated model tokens across compatibilities and
// variants, in declaration order.
func (p PartRecord) Models() []string {
	return dedupe(collect(
		func(c Compatibility) string { return c.Model },
		func(v Variant) string { return v.Model },
		p,
	))
}

// Years returns the deduplicated year tokens. Compatibility year ranges stay
// verbatim (e.g. "2008–2013"); variant years are stringified.
func (p PartRecord) Years() []string {
	return dedupe(collect(
		func(c Compatibility) string { return c.Years },
		func(v Variant) string { return strconv.Itoa(v.Year) },
		p,
	))
}

func collect(fromCompat func(Compatibility) string, fromVariant func(Variant) string, p PartRecord) []string {
	out := make([]string, 0, len(p.Compatibilities)+len(p.Variants))
	for _, c := range p.Compatibilities {
		out = append(out, fromCompat(c))
	}
	for _, v := range p.Variants {
		out = append(out, fromVariant(v))
	}
	return out
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
