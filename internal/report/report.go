// Package report renders the day-by-day state of a simulation.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/mesh-intelligence/gildedrose/pkg/types"
)

// ErrUnknownFormat is returned by Write for a format other than
// types.FormatText or types.FormatJSON.
var ErrUnknownFormat = errors.New("unknown report format")

// Row is the state of one item at the end of a day.
type Row struct {
	Name     string `json:"name"`
	SellIn   int    `json:"sell_in"`
	Quality  int    `json:"quality"`
	Category string `json:"category"`
}

// Day is a copy of the inventory at the end of a day.
type Day struct {
	Day   int   `json:"day"`
	Items []Row `json:"items"`
}

// Snapshot copies the current values of items. Later updates to the items
// do not affect the returned Day.
func Snapshot(day int, items []*types.Item) Day {
	rows := make([]Row, len(items))
	for i, it := range items {
		rows[i] = Row{
			Name:     it.Name(),
			SellIn:   it.SellIn,
			Quality:  it.Quality,
			Category: it.Category().String(),
		}
	}
	return Day{Day: day, Items: rows}
}

// Run is a complete simulation report.
type Run struct {
	RunID string `json:"run_id"`
	Days  []Day  `json:"days"`
}

// NewRun returns an empty report with a fresh UUID v7 run ID.
func NewRun() (*Run, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating run id: %w", err)
	}
	return &Run{RunID: id.String(), Days: []Day{}}, nil
}

// Record appends a snapshot of items for day. Its signature matches
// rose.Observer.
func (r *Run) Record(day int, items []*types.Item) {
	r.Days = append(r.Days, Snapshot(day, items))
}

// Write renders r to w in the given format.
func (r *Run) Write(w io.Writer, format string) error {
	switch format {
	case types.FormatText:
		return r.writeText(w)
	case types.FormatJSON:
		return r.writeJSON(w)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

func (r *Run) writeText(w io.Writer) error {
	for _, d := range r.Days {
		if _, err := fmt.Fprintf(w, "-------- day %d --------\nname, sellIn, quality\n", d.Day); err != nil {
			return err
		}
		for _, row := range d.Items {
			if _, err := fmt.Fprintf(w, "%s, %d, %d\n", row.Name, row.SellIn, row.Quality); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func (r *Run) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
