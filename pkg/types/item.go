package types

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Quality bounds. LegendaryQuality is the conventional quality of a
// legendary item, which is exempt from the bounds.
const (
	MinQuality       = 0
	MaxQuality       = 50
	LegendaryQuality = 80
)

// Item is a single stock entry. The name, and the category derived from it,
// are fixed at construction; SellIn and Quality change as days pass.
type Item struct {
	name     string
	category Category

	SellIn  int // Days left to sell the item; negative once past the date.
	Quality int // Value of the item.
}

// NewItem creates an item and resolves its category from the name.
func NewItem(name string, sellIn, quality int) *Item {
	return &Item{
		name:     name,
		category: CategoryOf(name),
		SellIn:   sellIn,
		Quality:  quality,
	}
}

// Name returns the item name.
func (it *Item) Name() string { return it.name }

// Category returns the category resolved when the item was created.
func (it *Item) Category() Category { return it.category }

// itemRecord is the encoded form of an Item.
type itemRecord struct {
	Name    string `json:"name" yaml:"name"`
	SellIn  int    `json:"sell_in" yaml:"sell_in"`
	Quality int    `json:"quality" yaml:"quality"`
}

func (it *Item) record() itemRecord {
	return itemRecord{Name: it.name, SellIn: it.SellIn, Quality: it.Quality}
}

func (it *Item) fromRecord(r itemRecord) {
	*it = *NewItem(r.Name, r.SellIn, r.Quality)
}

// MarshalJSON encodes the item as {name, sell_in, quality}.
func (it *Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(it.record())
}

// UnmarshalJSON decodes an item and resolves its category.
func (it *Item) UnmarshalJSON(data []byte) error {
	var r itemRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	it.fromRecord(r)
	return nil
}

// MarshalYAML encodes the item with the same keys as JSON.
func (it *Item) MarshalYAML() (any, error) {
	return it.record(), nil
}

// UnmarshalYAML decodes an item and resolves its category.
func (it *Item) UnmarshalYAML(node *yaml.Node) error {
	var r itemRecord
	if err := node.Decode(&r); err != nil {
		return err
	}
	it.fromRecord(r)
	return nil
}
