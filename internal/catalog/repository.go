package catalog

import (
	pkgerrors "github.com/mannyautos/storefront-backend/pkg/errors"
)

// Repository is the read-only lookup surface over a loaded catalog. It is
// safe for concurrent use: nothing mutates after construction.
type Repository struct {
	catalog *Catalog
	byID    map[int]int
}

// NewRepository indexes the catalog for id lookups.
func NewRepository(c *Catalog) (*Repository, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	byID := make(map[int]int, len(c.Parts))
	for i, p := range c.Parts {
		byID[p.ID] = i
	}
	return &Repository{catalog: c, byID: byID}, nil
}

// Version returns the catalog's seed data version.
func (r *Repository) Version() string {
	return r.catalog.Version
}

// All returns every part in catalog order. Callers must not mutate the slice.
func (r *Repository) All() []PartRecord {
	return r.catalog.Parts
}

// Len returns the record count.
func (r *Repository) Len() int {
	return len(r.catalog.Parts)
}

// ByID looks a part up by its stable identifier.
func (r *Repository) ByID(id int) (PartRecord, error) {
	i, ok := r.byID[id]
	if !ok {
		return PartRecord{}, pkgerrors.New(pkgerrors.CodeNotFound, "part not found").
			WithDetails(map[string]any{"part_id": id})
	}
	return r.catalog.Parts[i], nil
}

// Categories lists the distinct categories in first-seen order.
func (r *Repository) Categories() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, p := range r.catalog.Parts {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Brands lists the distinct compatibility/variant brands in first-seen order.
func (r *Repository) Brands() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, p := range r.catalog.Parts {
		for _, b := range p.Brands() {
			if _, ok := seen[b]; ok {
				continue
			}
			seen[b] = struct{}{}
			out = append(out, b)
		}
	}
	return out
}

// ModelsForBrand lists distinct models, optionally narrowed to one brand.
func (r *Repository) ModelsForBrand(brand string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, p := range r.catalog.Parts {
		for _, c := range p.Compatibilities {
			if brand != "" && c.Brand != brand {
				continue
			}
			if _, ok := seen[c.Model]; ok {
				continue
			}
			seen[c.Model] = struct{}{}
			out = append(out, c.Model)
		}
	}
	return out
}

// Tags lists the distinct tag values in first-seen order.
func (r *Repository) Tags() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, p := range r.catalog.Parts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
