// Package rose provides the Gilded Rose inventory updater. It advances a
// caller-owned list of items by one simulated day per call, keeping the
// per-category aging rules internal.
//
// Example:
//
//	items := []*types.Item{
//	    types.NewItem("Aged Brie", 2, 0),
//	    types.NewItem("Conjured Mana Cake", 3, 6),
//	}
//	inv := rose.New(items)
//	inv.AdvanceOneDay()
//
// An Inventory is not safe for concurrent use.
package rose

import (
	"github.com/mesh-intelligence/gildedrose/internal/aging"
	"github.com/mesh-intelligence/gildedrose/pkg/types"
)

// Inventory advances a list of items one day at a time.
type Inventory struct {
	items []*types.Item
}

// New returns an Inventory over items. The slice is not copied; updates are
// visible to the caller through the same item pointers.
func New(items []*types.Item) *Inventory {
	return &Inventory{items: items}
}

// Items returns the items in their original order.
func (inv *Inventory) Items() []*types.Item {
	return inv.items
}

// AdvanceOneDay ages every item by one day, in order.
func (inv *Inventory) AdvanceOneDay() {
	for _, it := range inv.items {
		aging.Advance(it)
	}
}

// Observer receives the inventory state at the end of each simulated day.
// Day 0 is the state before any update.
type Observer func(day int, items []*types.Item)

// Simulate reports day 0, then advances the inventory days times and reports
// after each day. A nil observe only advances. days below zero run no days.
func (inv *Inventory) Simulate(days int, observe Observer) {
	if observe != nil {
		observe(0, inv.items)
	}
	for day := 1; day <= days; day++ {
		inv.AdvanceOneDay()
		if observe != nil {
			observe(day, inv.items)
		}
	}
}
