// Package pricing maps user categories to access tiers.
package pricing

import (
	"encoding/json"
	"fmt"
)

// Category is the closed enumeration of user categories collected during
// onboarding. It drives tier resolution and nothing else in the core.
type Category int

const (
	CategoryStudent Category = iota
	CategoryEducator
	CategoryNonprofit
	CategoryProfessional
	CategoryExecutive
	CategoryEnterprise

	categoryCount
)

// Categories returns all categories in declaration order.
func Categories() []Category {
	out := make([]Category, categoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

func (c Category) String() string {
	switch c {
	case CategoryStudent:
		return "student"
	case CategoryEducator:
		return "educator"
	case CategoryNonprofit:
		return "nonprofit"
	case CategoryProfessional:
		return "professional"
	case CategoryExecutive:
		return "executive"
	case CategoryEnterprise:
		return "enterprise"
	default:
		return "unknown"
	}
}

// ParseCategory converts a wire-format string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// MarshalJSON encodes the category as its wire-format string.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes the category from its wire-format string.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Tier is the resolved access level for a category. A zero price grants
// full access without payment (sponsored access); paid tiers require
// confirmation from the external payment collaborator before full access.
type Tier struct {
	Category   Category `json:"category"`
	PriceCents int      `json:"price_cents"`
	Free       bool     `json:"is_free"`
}

// priceCentsByCategory is the static price table. Zero means sponsored.
var priceCentsByCategory = map[Category]int{
	CategoryStudent:      0,
	CategoryEducator:     0,
	CategoryNonprofit:    0,
	CategoryProfessional: 4900,
	CategoryExecutive:    7900,
	CategoryEnterprise:   14900,
}

// ResolveTier maps a category to its tier.
func ResolveTier(category Category) Tier {
	price := priceCentsByCategory[category]
	return Tier{
		Category:   category,
		PriceCents: price,
		Free:       price == 0,
	}
}
