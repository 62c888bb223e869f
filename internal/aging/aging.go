// Package aging applies one day of aging to a single item according to its
// category.
package aging

import "github.com/mesh-intelligence/gildedrose/pkg/types"

// Degrade rates per day before the sell-by date. Past the date each rate doubles.
const (
	ordinaryRate = 1
	conjuredRate = 2 * ordinaryRate
)

// Backstage pass thresholds on the decremented sell-in.
const (
	passCloseDays    = 10
	passImminentDays = 5
)

// Advance ages it by one day. Legendary items are left untouched.
func Advance(it *types.Item) {
	switch it.Category() {
	case types.CategoryLegendary:
	case types.CategoryAgedBrie:
		advanceAgedBrie(it)
	case types.CategoryBackstagePass:
		advanceBackstagePass(it)
	case types.CategoryConjured:
		degrade(it, conjuredRate)
	case types.CategoryOrdinary:
		degrade(it, ordinaryRate)
	}
}

func degrade(it *types.Item, rate int) {
	it.SellIn--
	if it.SellIn < 0 {
		rate *= 2
	}
	it.Quality = clamp(it.Quality - rate)
}

func advanceAgedBrie(it *types.Item) {
	it.SellIn--
	gain := 1
	if it.SellIn < 0 {
		gain++
	}
	it.Quality = clamp(it.Quality + gain)
}

func advanceBackstagePass(it *types.Item) {
	it.SellIn--
	gain := 1
	if it.SellIn < passCloseDays {
		gain++
	}
	if it.SellIn < passImminentDays {
		gain++
	}
	it.Quality = clamp(it.Quality + gain)
	// The concert is over.
	if it.SellIn < 0 {
		it.Quality = 0
	}
}

// clamp bounds q to [MinQuality, MaxQuality].
func clamp(q int) int {
	return max(types.MinQuality, min(types.MaxQuality, q))
}
