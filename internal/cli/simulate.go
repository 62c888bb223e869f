package cli

import (
	"fmt"

	"github.com/mesh-intelligence/gildedrose/internal/fixture"
	"github.com/mesh-intelligence/gildedrose/internal/report"
	"github.com/mesh-intelligence/gildedrose/pkg/rose"
	"github.com/mesh-intelligence/gildedrose/pkg/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSimulateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Advance the inventory and print every day",
		Long: `Simulate loads an inventory, advances it one day at a time and prints the
state of every item for day 0 and each following day.

Without --fixture the built-in inventory is used. Fixture files are JSONL
(one item per line) or YAML (a sequence of items), each item having the keys
name, sell_in and quality.

Example:
  gildedrose simulate
  gildedrose simulate --days 30
  gildedrose simulate --fixture items.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSimulate(cmd)
		},
	}

	cmd.Flags().Int(cfgKeyDays, types.DefaultDays, "number of days to simulate")
	cmd.Flags().String(cfgKeyFixture, "", "inventory file (.jsonl, .yaml or .yml)")
	cmd.Flags().String(cfgKeyFormat, types.FormatText, "output format (text or json)")

	return cmd
}

func (a *app) runSimulate(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd, a.flags.configDir, cfgKeyDays, cfgKeyFixture, cfgKeyFormat)
	if err != nil {
		return err
	}

	items := fixture.Default()
	if cfg.Fixture != "" {
		items, err = fixture.Load(cfg.Fixture)
		if err != nil {
			return fmt.Errorf("load fixture: %w", err)
		}
	}
	a.logger.Info("loaded inventory",
		zap.String("fixture", cfg.Fixture),
		zap.Int("items", len(items)),
		zap.Int("days", cfg.Days),
	)

	run, err := report.NewRun()
	if err != nil {
		return err
	}

	rose.New(items).Simulate(cfg.Days, func(day int, items []*types.Item) {
		run.Record(day, items)
		a.logger.Debug("advanced inventory", zap.String("run_id", run.RunID), zap.Int("day", day))
	})

	return run.Write(cmd.OutOrStdout(), cfg.Format)
}
