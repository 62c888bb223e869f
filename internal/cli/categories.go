package cli

import (
	"fmt"

	"github.com/mesh-intelligence/gildedrose/pkg/types"
	"github.com/spf13/cobra"
)

// categoryRules describes the aging rule of each category for the listing.
var categoryRules = map[types.Category]string{
	types.CategoryOrdinary:      "quality -1 per day, -2 past the sell-by date",
	types.CategoryAgedBrie:      "quality +1 per day, +2 past the sell-by date",
	types.CategoryLegendary:     "never changes",
	types.CategoryBackstagePass: "quality +1, +2 inside 10 days, +3 inside 5 days, 0 after the concert",
	types.CategoryConjured:      "quality -2 per day, -4 past the sell-by date",
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories [name...]",
		Short: "Show the aging category of item names",
		Long: `Without arguments, categories lists every item category and its aging rule.
With arguments, it prints the category each name resolves to.

Example:
  gildedrose categories
  gildedrose categories "Aged Brie" "Conjured Mana Cake"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, c := range types.Categories {
					fmt.Fprintf(out, "%-15s %s\n", c, categoryRules[c])
				}
				return nil
			}
			for _, name := range args {
				fmt.Fprintf(out, "%s: %s\n", name, types.CategoryOf(name))
			}
			return nil
		},
	}
}
