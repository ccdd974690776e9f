package item

import (
	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Item is a single stocked item. Quality and days remaining change only
// through Tick, and the variant never changes after construction.
//
// An Item is owned by one caller; concurrent Ticks on the same item must be
// serialized by that caller.
type Item struct {
	name          string
	variant       domain.Variant
	quality       int
	daysRemaining int
}

// State is a read-only snapshot of an item
type State struct {
	Name          string         `json:"name"`
	Variant       domain.Variant `json:"variant"`
	Quality       int            `json:"quality"`
	DaysRemaining int            `json:"days_remaining"`
}

// New builds an item with an explicit variant. Initial values are taken as given.
func New(variant domain.Variant, name string, quality, daysRemaining int) *Item {
	return &Item{
		name:          name,
		variant:       variant,
		quality:       quality,
		daysRemaining: daysRemaining,
	}
}

// For builds an item whose variant is picked from the default catalog by exact name.
// Unknown names fall back to the default variant.
func For(name string, quality, daysRemaining int) *Item {
	return defaultCatalog.For(name, quality, daysRemaining)
}

func (i *Item) Name() string { return i.name }

func (i *Item) Variant() domain.Variant { return i.variant }

func (i *Item) Quality() int { return i.quality }

func (i *Item) DaysRemaining() int { return i.daysRemaining }

// Snapshot returns the current state of the item
func (i *Item) Snapshot() State {
	return State{
		Name:          i.name,
		Variant:       i.variant,
		Quality:       i.quality,
		DaysRemaining: i.daysRemaining,
	}
}

// Tick advances the item by one day according to its variant.
func (i *Item) Tick() {
	switch i.variant {
	case domain.VariantNormal:
		i.tickNormal()
	case domain.VariantBrie:
		i.tickBrie()
	case domain.VariantBackstage:
		i.tickBackstage()
	case domain.VariantConjured:
		i.tickConjured()
	case domain.VariantLegendary, domain.VariantDefault:
		// untouched
	}
}
