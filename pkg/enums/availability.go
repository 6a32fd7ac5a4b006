package enums

import (
	"fmt"
	"strings"
)

// Availability reflects the stock position advertised for a part or variant.
type Availability string

const (
	AvailabilityInStock    Availability = "In Stock"
	AvailabilityLowStock   Availability = "Low Stock"
	AvailabilityOutOfStock Availability = "Out of Stock"
)

var validAvailabilities = []Availability{
	AvailabilityInStock,
	AvailabilityLowStock,
	AvailabilityOutOfStock,
}

// String implements fmt.Stringer.
func (a Availability) String() string {
	return string(a)
}

// IsValid reports whether the value is a known Availability.
func (a Availability) IsValid() bool {
	for _, candidate := range validAvailabilities {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAvailability converts raw input into an Availability. The seed data
// mixes casings ("In stock", "Low stock"), so matching is case-insensitive.
func ParseAvailability(value string) (Availability, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validAvailabilities {
		if strings.ToLower(string(candidate)) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid availability %q", value)
}
