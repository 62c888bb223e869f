// Package fixture loads the initial item list handed to the inventory
// updater. JSONL files hold one item per line; YAML files hold a sequence.
package fixture

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/gildedrose/pkg/types"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a fixture file whose extension is not
// .jsonl, .yaml or .yml.
var ErrUnknownFormat = errors.New("unknown fixture format")

// Default returns the standard nine-item inventory.
func Default() []*types.Item {
	return []*types.Item{
		types.NewItem("+5 Dexterity Vest", 10, 20),
		types.NewItem(types.NameAgedBrie, 2, 0),
		types.NewItem("Elixir of the Mongoose", 5, 7),
		types.NewItem(types.NameSulfuras, 0, types.LegendaryQuality),
		types.NewItem(types.NameSulfuras, -1, types.LegendaryQuality),
		types.NewItem(types.NameBackstagePass, 15, 20),
		types.NewItem(types.NameBackstagePass, 10, 49),
		types.NewItem(types.NameBackstagePass, 5, 49),
		types.NewItem("Conjured Mana Cake", 3, 6),
	}
}

// Load reads the items in path, choosing the decoder by file extension.
func Load(path string) ([]*types.Item, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		return readJSONL(path)
	case ".yaml", ".yml":
		return readYAML(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// readJSONL decodes one item per line. Blank, null and malformed lines are
// skipped.
func readJSONL(path string) ([]*types.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var items []*types.Item
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		// A null line leaves it nil without reaching Item.UnmarshalJSON.
		var it *types.Item
		if err := json.Unmarshal(line, &it); err != nil || it == nil {
			continue
		}
		items = append(items, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return items, nil
}

// readYAML decodes a sequence of items. Null entries are skipped.
func readYAML(path string) ([]*types.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var decoded []*types.Item
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	items := make([]*types.Item, 0, len(decoded))
	for _, it := range decoded {
		if it != nil {
			items = append(items, it)
		}
	}
	return items, nil
}
