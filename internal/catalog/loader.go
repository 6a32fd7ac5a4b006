package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"

	"github.com/mannyautos/storefront-backend/pkg/enums"
)

//go:embed data/catalog.json data/taxonomy.json
var seedFS embed.FS

// Catalog is the versioned, read-only part list the storefront serves.
type Catalog struct {
	Version string       `json:"version"`
	Parts   []PartRecord `json:"parts"`
}

// Load parses and validates the embedded seed catalog.
func Load() (*Catalog, error) {
	raw, err := seedFS.ReadFile("data/catalog.json")
	if err != nil {
		return nil, fmt.Errorf("read seed catalog: %w", err)
	}
	return Parse(raw)
}

// Parse decodes catalog JSON and runs integrity checks. Availability casing
// is canonicalized first; all remaining violations are reported together
// rather than one at a time.
func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c.canonicalize()
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return &c, nil
}

// canonicalize fixes up the casing drift seed data carries ("In stock" vs
// "In Stock"). Unknown values are left alone for validate to flag.
func (c *Catalog) canonicalize() {
	for i := range c.Parts {
		if a, err := enums.ParseAvailability(string(c.Parts[i].Availability)); err == nil {
			c.Parts[i].Availability = a
		}
		for j := range c.Parts[i].Variants {
			if a, err := enums.ParseAvailability(string(c.Parts[i].Variants[j].Availability)); err == nil {
				c.Parts[i].Variants[j].Availability = a
			}
		}
	}
}

func (c *Catalog) validate() error {
	var errs error
	if c.Version == "" {
		errs = multierr.Append(errs, fmt.Errorf("catalog version is required"))
	}
	seen := make(map[int]struct{}, len(c.Parts))
	for i, p := range c.Parts {
		if p.ID <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("part[%d]: id must be positive", i))
		}
		if _, dup := seen[p.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("part[%d]: duplicate id %d", i, p.ID))
		}
		seen[p.ID] = struct{}{}
		if p.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("part[%d]: name is required", i))
		}
		if p.Category == "" {
			errs = multierr.Append(errs, fmt.Errorf("part[%d]: category is required", i))
		}
		if !p.Availability.IsValid() {
			errs = multierr.Append(errs, fmt.Errorf("part[%d]: availability %q unknown", i, p.Availability))
		}
		if p.Price < 0 {
			errs = multierr.Append(errs, fmt.Errorf("part[%d]: price must be non-negative", i))
		}
		for j, v := range p.Variants {
			if !v.Availability.IsValid() {
				errs = multierr.Append(errs, fmt.Errorf("part[%d].variant[%d]: availability %q unknown", i, j, v.Availability))
			}
			if v.Price < 0 {
				errs = multierr.Append(errs, fmt.Errorf("part[%d].variant[%d]: price must be non-negative", i, j))
			}
		}
	}
	return errs
}
