package types

import "strings"

// Names that select the named categories. Matching is exact.
const (
	NameAgedBrie      = "Aged Brie"
	NameSulfuras      = "Sulfuras, Hand of Ragnaros"
	NameBackstagePass = "Backstage passes to a TAFKAL80ETC concert"
)

// ConjuredMarker marks an item that degrades twice as fast as an ordinary one.
const ConjuredMarker = "Conjured"

// Category selects the aging rule applied to an item. The set is closed.
type Category int

// Item categories.
const (
	CategoryOrdinary Category = iota
	CategoryAgedBrie
	CategoryLegendary
	CategoryBackstagePass
	CategoryConjured
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategoryOrdinary,
	CategoryAgedBrie,
	CategoryLegendary,
	CategoryBackstagePass,
	CategoryConjured,
}

var categoryNames = map[Category]string{
	CategoryOrdinary:      "ordinary",
	CategoryAgedBrie:      "aged-brie",
	CategoryLegendary:     "legendary",
	CategoryBackstagePass: "backstage-pass",
	CategoryConjured:      "conjured",
}

// String returns the lower-case name of the category.
func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unknown"
}

// CategoryOf resolves an item name to its category. Names that match none of
// the named categories and carry no ConjuredMarker are ordinary.
func CategoryOf(name string) Category {
	switch name {
	case NameAgedBrie:
		return CategoryAgedBrie
	case NameSulfuras:
		return CategoryLegendary
	case NameBackstagePass:
		return CategoryBackstagePass
	}
	if strings.Contains(name, ConjuredMarker) {
		return CategoryConjured
	}
	return CategoryOrdinary
}
