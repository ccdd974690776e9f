package item

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

func TestFor_SelectsVariantByExactName(t *testing.T) {
	tests := []struct {
		name string
		want domain.Variant
	}{
		{"Normal Item", domain.VariantNormal},
		{"Aged Brie", domain.VariantBrie},
		{"Backstage passes to a TAFKAL80ETC concert", domain.VariantBackstage},
		{"Sulfuras, Hand of Ragnaros", domain.VariantLegendary},
		{"Conjured Mana Cake", domain.VariantDefault},
		{"aged brie", domain.VariantDefault},
		{"Aged Brie ", domain.VariantDefault},
		{"", domain.VariantDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := For(tt.name, 10, 5)

			assert.Equal(t, tt.want, it.Variant())
			assert.Equal(t, tt.name, it.Name())
			assert.Equal(t, 10, it.Quality())
			assert.Equal(t, 5, it.DaysRemaining())
		})
	}
}

func TestFor_Scenarios(t *testing.T) {
	tests := []struct {
		name                  string
		quality, days         int
		wantQuality, wantDays int
	}{
		{"Normal Item", 10, 5, 9, 4},
		{"Normal Item", 10, 0, 8, -1},
		{"Aged Brie", 10, 0, 12, -1},
		{"Aged Brie", 49, 0, 50, -1},
		{"Backstage passes to a TAFKAL80ETC concert", 10, 6, 12, 5},
		{"Backstage passes to a TAFKAL80ETC concert", 10, 0, 0, -1},
		{"Elixir of the Mongoose", 80, 5, 80, 5},
		{"Sulfuras, Hand of Ragnaros", 80, 5, 80, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := For(tt.name, tt.quality, tt.days)
			it.Tick()

			assert.Equal(t, tt.wantQuality, it.Quality())
			assert.Equal(t, tt.wantDays, it.DaysRemaining())
		})
	}
}

func TestFor_AcceptsOutOfRangeInitialValues(t *testing.T) {
	it := For("Aged Brie", 75, -4)

	assert.Equal(t, 75, it.Quality())
	assert.Equal(t, -4, it.DaysRemaining())
}

func TestNewCatalog_WithConjured(t *testing.T) {
	c := NewCatalog(WithConjured())

	assert.Equal(t, domain.VariantConjured, c.Variant("Conjured Mana Cake"))
	assert.Equal(t, domain.VariantNormal, c.Variant("Normal Item"))

	it := c.For("Conjured Mana Cake", 10, 0)
	it.Tick()
	assert.Equal(t, 6, it.Quality())
	assert.Equal(t, -1, it.DaysRemaining())
}

func TestNewCatalog_OptionsDoNotLeakIntoDefault(t *testing.T) {
	_ = NewCatalog(WithConjured())

	assert.Equal(t, domain.VariantDefault, DefaultCatalog().Variant("Conjured Mana Cake"))
}
