// Package cli implements the gildedrose command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	verbose   bool
}

// app carries per-invocation state shared by the subcommands.
type app struct {
	flags  rootFlags
	logger *zap.Logger
}

// NewRootCmd creates the top-level "gildedrose" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "gildedrose",
		Short: "Simulate the aging of the Gilded Rose inventory",
		Long: "gildedrose advances an inventory of perishable items one day at a time\n" +
			"and reports the sell-in and quality of every item after each day.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.flags.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $ROSE_CONFIG_DIR or the platform config dir)")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newSimulateCmd(a))
	root.AddCommand(newCategoriesCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
