package item

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

type tickCase struct {
	name                 string
	quality, days        int
	wantQuality, wantDay int
}

func runTickCases(t *testing.T, variant domain.Variant, cases []tickCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := New(variant, "", tc.quality, tc.days)
			it.Tick()

			assert.Equal(t, tc.wantQuality, it.Quality(), "quality")
			assert.Equal(t, tc.wantDay, it.DaysRemaining(), "days remaining")
			assert.Equal(t, variant, it.Variant(), "variant must not change")
		})
	}
}

func TestItem_Accessors(t *testing.T) {
	it := New(domain.VariantDefault, "Elixir of the Mongoose", 5, 1)

	assert.Equal(t, "Elixir of the Mongoose", it.Name())
	assert.Equal(t, 5, it.Quality())
	assert.Equal(t, 1, it.DaysRemaining())
	assert.Equal(t, State{Name: "Elixir of the Mongoose", Variant: domain.VariantDefault, Quality: 5, DaysRemaining: 1}, it.Snapshot())
}

func TestTick_Default(t *testing.T) {
	runTickCases(t, domain.VariantDefault, []tickCase{
		{"leaves both fields alone", 5, 1, 5, 1},
		{"accepts quality above the cap", 80, 5, 80, 5},
		{"accepts negative quality", -3, -2, -3, -2},
	})
}

func TestTick_Legendary(t *testing.T) {
	runTickCases(t, domain.VariantLegendary, []tickCase{
		{"before sell date", 80, 5, 80, 5},
		{"on sell date", 80, 0, 80, 0},
		{"after sell date", 80, -1, 80, -1},
	})
}

func TestTick_Normal(t *testing.T) {
	runTickCases(t, domain.VariantNormal, []tickCase{
		{"before sell date", 10, 5, 9, 4},
		{"one day before sell date", 10, 1, 8, 0},
		{"on sell date", 10, 0, 8, -1},
		{"after sell date", 10, -10, 8, -11},
		{"with zero quality", 0, 5, 0, 4},
		{"with zero quality on sell date", 0, 0, 0, -1},
		// literal rule: only the first decrement is guarded
		{"quality one on sell date goes negative", 1, 0, -1, -1},
	})
}

func TestTick_Brie(t *testing.T) {
	runTickCases(t, domain.VariantBrie, []tickCase{
		{"before sell date", 10, 5, 11, 4},
		{"with max quality", 50, 5, 50, 4},
		{"on sell date", 10, 0, 12, -1},
		{"on sell date with near max quality", 49, 0, 50, -1},
		{"on sell date with max quality", 50, 0, 50, -1},
		{"after sell date", 10, -10, 12, -11},
		{"after sell date with max quality", 50, -10, 50, -11},
		{"above the cap is left alone", 55, 3, 55, 2},
	})
}

func TestTick_Backstage(t *testing.T) {
	runTickCases(t, domain.VariantBackstage, []tickCase{
		{"long before sell date", 10, 11, 11, 10},
		{"long before sell date at max quality", 50, 11, 50, 10},
		{"medium close to sell date upper bound", 10, 10, 12, 9},
		{"medium close to sell date upper bound at max quality", 50, 10, 50, 9},
		{"medium close to sell date lower bound", 10, 6, 12, 5},
		{"medium close to sell date lower bound at max quality", 50, 6, 50, 5},
		{"very close to sell date upper bound", 10, 5, 13, 4},
		{"very close to sell date upper bound at max quality", 50, 5, 50, 4},
		{"very close to sell date lower bound", 10, 1, 13, 0},
		{"very close to sell date lower bound at max quality", 50, 1, 50, 0},
		{"on sell date", 10, 0, 0, -1},
		{"after sell date", 10, -10, 0, -11},
		{"at max quality after sell date stays put", 50, 0, 50, -1},
		// literal rule: bonus steps do not re-check the cap
		{"near max quality overshoots", 49, 5, 52, 4},
		{"near max quality medium overshoots", 49, 9, 51, 8},
	})
}

func TestTick_Conjured(t *testing.T) {
	runTickCases(t, domain.VariantConjured, []tickCase{
		{"before sell date", 10, 5, 8, 4},
		{"before sell date at zero quality", 0, 5, 0, 4},
		{"before sell date with one quality", 1, 5, 0, 4},
		{"on sell date", 10, 0, 6, -1},
		{"on sell date at zero quality", 0, 0, 0, -1},
		{"on sell date with three quality", 3, 0, 0, -1},
		{"after sell date", 10, -10, 6, -11},
		{"after sell date at zero quality", 0, -10, 0, -11},
	})
}

func TestTick_DaysRemainingDecrementsEveryDay(t *testing.T) {
	for _, v := range []domain.Variant{domain.VariantNormal, domain.VariantBrie, domain.VariantBackstage, domain.VariantConjured} {
		t.Run(string(v), func(t *testing.T) {
			it := New(v, "", 20, 12)
			for day := 1; day <= 30; day++ {
				it.Tick()
				assert.Equal(t, 12-day, it.DaysRemaining())
			}
		})
	}
}

func TestTick_QualityStaysInRangeFromSaneStart(t *testing.T) {
	// Starting points that avoid the two literal edge cases stay within bounds forever.
	for _, v := range []domain.Variant{domain.VariantBrie, domain.VariantConjured} {
		for q := 0; q <= 50; q++ {
			for d := -3; d <= 15; d++ {
				it := New(v, "", q, d)
				for day := 0; day < 60; day++ {
					it.Tick()
					assert.GreaterOrEqual(t, it.Quality(), domain.MinQuality)
					assert.LessOrEqual(t, it.Quality(), domain.MaxQuality)
				}
			}
		}
	}
}

func TestTick_NormalIsNonIncreasing(t *testing.T) {
	it := New(domain.VariantNormal, "", 40, 10)
	prev := it.Quality()
	for day := 0; day < 30; day++ {
		it.Tick()
		assert.LessOrEqual(t, it.Quality(), prev)
		prev = it.Quality()
	}
}

func TestTick_BrieIsNonDecreasing(t *testing.T) {
	it := New(domain.VariantBrie, "", 0, 10)
	prev := it.Quality()
	for day := 0; day < 40; day++ {
		it.Tick()
		assert.GreaterOrEqual(t, it.Quality(), prev)
		prev = it.Quality()
	}
	assert.Equal(t, domain.MaxQuality, it.Quality())
}

func TestTick_UnknownVariantIsNoOp(t *testing.T) {
	it := New(domain.Variant("MYSTERY"), "", 7, 3)
	it.Tick()

	assert.Equal(t, 7, it.Quality())
	assert.Equal(t, 3, it.DaysRemaining())
}
