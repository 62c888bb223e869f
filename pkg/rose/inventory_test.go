package rose

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/mesh-intelligence/gildedrose/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repeatCount is the number of days each scenario runs; one more day is
// checked beyond it.
const repeatCount = 100

// expected tracks the values an item should hold, updated by hand-written
// rules independent of the aging package.
type expected struct {
	sellIn, quality int
}

func capQuality(q int) int {
	if q < 0 {
		return 0
	}
	if q > 50 {
		return 50
	}
	return q
}

// runScenario advances a single-item inventory repeatCount+1 times and
// compares it against step after every day. checks maps a day to the
// values the item must hold at the end of it.
func runScenario(t *testing.T, it *types.Item, step func(e *expected), checks map[int]expected) {
	t.Helper()
	name := it.Name()
	want := expected{sellIn: it.SellIn, quality: it.Quality}
	inv := New([]*types.Item{it})

	for n := 1; n <= repeatCount+1; n++ {
		inv.AdvanceOneDay()
		step(&want)

		got := inv.Items()[0]
		require.Equal(t, name, got.Name(), "name changed on day %d", n)
		require.Equal(t, want.sellIn, got.SellIn, "sellIn on day %d: %s", n, spew.Sdump(got))
		require.Equal(t, want.quality, got.Quality, "quality on day %d: %s", n, spew.Sdump(got))

		if c, ok := checks[n]; ok {
			assert.Equal(t, c.sellIn, got.SellIn, "sellIn checkpoint on day %d", n)
			assert.Equal(t, c.quality, got.Quality, "quality checkpoint on day %d", n)
		}
	}
}

func TestRegularEmptyItem(t *testing.T) {
	runScenario(t, types.NewItem("Elixir", 0, 0),
		func(e *expected) {
			e.sellIn--
			e.quality = capQuality(e.quality - 2)
		},
		map[int]expected{
			1:               {-1, 0},
			repeatCount:     {-100, 0},
			repeatCount + 1: {-101, 0},
		})
}

func TestRegularItem(t *testing.T) {
	runScenario(t, types.NewItem("Elixir", 10, 20),
		func(e *expected) {
			e.sellIn--
			e.quality--
			if e.sellIn < 0 {
				e.quality--
			}
			e.quality = capQuality(e.quality)
		},
		map[int]expected{
			1:           {9, 19},
			10:          {0, 10},
			11:          {-1, 8},
			15:          {-5, 0},
			repeatCount: {-90, 0},
		})
}

func TestAgedBrieItem(t *testing.T) {
	runScenario(t, types.NewItem(types.NameAgedBrie, 10, 0),
		func(e *expected) {
			e.sellIn--
			e.quality++
			if e.sellIn < 0 {
				e.quality++
			}
			e.quality = capQuality(e.quality)
		},
		map[int]expected{
			1:           {9, 1},
			8:           {2, 8},
			10:          {0, 10},
			11:          {-1, 12},
			30:          {-20, 50},
			60:          {-50, 50},
			repeatCount: {-90, 50},
		})
}

func TestBackstagePassesItem(t *testing.T) {
	runScenario(t, types.NewItem(types.NameBackstagePass, 15, 20),
		func(e *expected) {
			e.sellIn--
			e.quality++
			if e.sellIn < 10 {
				e.quality++
			}
			if e.sellIn < 5 {
				e.quality++
			}
			if e.sellIn < 0 {
				e.quality = 0
			}
			e.quality = capQuality(e.quality)
		},
		map[int]expected{
			1:           {14, 21},
			5:           {10, 25},
			12:          {3, 41},
			15:          {0, 50},
			16:          {-1, 0},
			repeatCount: {-85, 0},
		})
}

func TestSulfurasItem(t *testing.T) {
	runScenario(t, types.NewItem(types.NameSulfuras, -1, 80),
		func(e *expected) {},
		map[int]expected{
			1:               {-1, 80},
			repeatCount:     {-1, 80},
			repeatCount + 1: {-1, 80},
		})
}

func TestConjuredItem(t *testing.T) {
	runScenario(t, types.NewItem("Conjured Mana Cake", 3, 6),
		func(e *expected) {
			e.sellIn--
			e.quality -= 2
			if e.sellIn < 0 {
				e.quality -= 2
			}
			e.quality = capQuality(e.quality)
		},
		map[int]expected{
			1:           {2, 4},
			3:           {0, 0},
			4:           {-1, 0},
			repeatCount: {-97, 0},
		})
}

func TestConjuredItemPastDateDegradesByFour(t *testing.T) {
	it := types.NewItem("Conjured Mana Cake", 1, 40)
	inv := New([]*types.Item{it})

	inv.AdvanceOneDay()
	assert.Equal(t, 38, it.Quality)
	inv.AdvanceOneDay()
	assert.Equal(t, 34, it.Quality)
	inv.AdvanceOneDay()
	assert.Equal(t, 30, it.Quality)
}

func TestAdvanceOneDayPreservesOrderAndIdentity(t *testing.T) {
	items := []*types.Item{
		types.NewItem("+5 Dexterity Vest", 10, 20),
		types.NewItem(types.NameAgedBrie, 2, 0),
		types.NewItem(types.NameSulfuras, 0, 80),
		types.NewItem(types.NameBackstagePass, 5, 49),
		types.NewItem("Conjured Mana Cake", 3, 6),
	}
	before := make([]*types.Item, len(items))
	copy(before, items)

	inv := New(items)
	inv.AdvanceOneDay()

	require.Len(t, inv.Items(), len(before))
	for i := range before {
		assert.Same(t, before[i], inv.Items()[i], "item %d replaced", i)
	}
	assert.Equal(t, []int{9, 1, 0, 4, 2}, sellIns(items))
	assert.Equal(t, []int{19, 1, 80, 50, 4}, qualities(items))
}

func TestEmptyInventory(t *testing.T) {
	inv := New(nil)
	inv.AdvanceOneDay()
	assert.Empty(t, inv.Items())
}

func TestSimulate(t *testing.T) {
	inv := New([]*types.Item{types.NewItem(types.NameAgedBrie, 1, 0)})

	var days []int
	var brie []int
	inv.Simulate(3, func(day int, items []*types.Item) {
		days = append(days, day)
		brie = append(brie, items[0].Quality)
	})

	assert.Equal(t, []int{0, 1, 2, 3}, days)
	assert.Equal(t, []int{0, 1, 3, 5}, brie)
}

func TestSimulateWithoutObserver(t *testing.T) {
	it := types.NewItem("Elixir", 5, 10)
	New([]*types.Item{it}).Simulate(5, nil)

	assert.Equal(t, 0, it.SellIn)
	assert.Equal(t, 5, it.Quality)
}

func TestSimulateNegativeDays(t *testing.T) {
	it := types.NewItem("Elixir", 5, 10)
	calls := 0
	New([]*types.Item{it}).Simulate(-3, func(day int, items []*types.Item) {
		calls++
		assert.Equal(t, 0, day)
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 5, it.SellIn)
}

func sellIns(items []*types.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.SellIn
	}
	return out
}

func qualities(items []*types.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Quality
	}
	return out
}
