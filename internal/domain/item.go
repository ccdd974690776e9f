package domain

// Variant is the aging rule an item follows. It is fixed when the item is built.
type Variant string

const (
	VariantDefault   Variant = "DEFAULT"
	VariantNormal    Variant = "NORMAL"
	VariantBrie      Variant = "BRIE"      // ages, gains quality
	VariantBackstage Variant = "BACKSTAGE" // gains faster near the date, collapses after
	VariantLegendary Variant = "LEGENDARY" // never changes
	VariantConjured  Variant = "CONJURED"  // degrades twice as fast as normal
)

// Quality bounds
const (
	MinQuality       = 0
	MaxQuality       = 50
	LegendaryQuality = 80
)

// Backstage thresholds, compared against days remaining after the daily decrement
const (
	BackstageDoubleBonusDays = 10
	BackstageTripleBonusDays = 5
)

// IsMutable reports whether a tick changes items of this variant at all.
func (v Variant) IsMutable() bool {
	switch v {
	case VariantNormal, VariantBrie, VariantBackstage, VariantConjured:
		return true
	default:
		return false
	}
}

// QualityCeiling returns the highest quality an item of this variant may start with.
func (v Variant) QualityCeiling() int {
	if v == VariantLegendary {
		return LegendaryQuality
	}
	return MaxQuality
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	switch v {
	case VariantDefault, VariantNormal, VariantBrie, VariantBackstage, VariantLegendary, VariantConjured:
		return true
	}
	return false
}
