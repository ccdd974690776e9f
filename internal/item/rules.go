package item

import (
	"github.com/osse101/GildedRose_Go/internal/domain"
)

// tickNormal loses 1 quality a day, 2 once the sell date is reached.
// Only the first decrement is guarded, so quality 1 on the sell date ends at -1.
func (i *Item) tickNormal() {
	i.daysRemaining--
	if i.quality == domain.MinQuality {
		return
	}

	i.quality--
	if i.daysRemaining <= 0 {
		i.quality--
	}
}

// tickBrie gains 1 quality a day, 2 once the sell date is reached, capped at 50.
func (i *Item) tickBrie() {
	i.daysRemaining--
	if i.quality >= domain.MaxQuality {
		return
	}

	i.quality++
	if i.daysRemaining <= 0 && i.quality < domain.MaxQuality {
		i.quality++
	}
}

// tickBackstage gains 1, 2 or 3 quality a day as the concert nears and drops
// to zero once it has passed. The bonus steps do not re-check the cap.
func (i *Item) tickBackstage() {
	i.daysRemaining--
	if i.quality >= domain.MaxQuality {
		return
	}
	if i.daysRemaining < 0 {
		i.quality = domain.MinQuality
		return
	}

	i.quality++
	if i.daysRemaining < domain.BackstageDoubleBonusDays {
		i.quality++
	}
	if i.daysRemaining < domain.BackstageTripleBonusDays {
		i.quality++
	}
}

// tickConjured degrades twice as fast as a normal item and stops at zero.
func (i *Item) tickConjured() {
	i.daysRemaining--
	if i.quality <= domain.MinQuality {
		return
	}

	loss := 2
	if i.daysRemaining <= 0 {
		loss *= 2
	}
	i.quality -= loss
	if i.quality < domain.MinQuality {
		i.quality = domain.MinQuality
	}
}
