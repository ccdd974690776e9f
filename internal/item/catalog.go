package item

import (
	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Catalog maps item names to their aging variant
type Catalog struct {
	variants map[string]domain.Variant
}

// Option customises a catalog built with NewCatalog
type Option func(*Catalog)

// WithConjured maps "Conjured Mana Cake" to the conjured variant.
func WithConjured() Option {
	return func(c *Catalog) {
		c.variants[domain.NameConjured] = domain.VariantConjured
	}
}

var defaultCatalog = NewCatalog()

// DefaultCatalog returns the catalog used by For
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// NewCatalog builds a catalog seeded with the standard shop entries
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		variants: map[string]domain.Variant{
			domain.NameNormal:    domain.VariantNormal,
			domain.NameBrie:      domain.VariantBrie,
			domain.NameBackstage: domain.VariantBackstage,
			domain.NameSulfuras:  domain.VariantLegendary,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Variant returns the variant for an exact name match, or the default variant.
func (c *Catalog) Variant(name string) domain.Variant {
	if v, ok := c.variants[name]; ok {
		return v
	}
	return domain.VariantDefault
}

// For builds an item for name. No range checks are made on the initial values.
func (c *Catalog) For(name string, quality, daysRemaining int) *Item {
	return New(c.Variant(name), name, quality, daysRemaining)
}
