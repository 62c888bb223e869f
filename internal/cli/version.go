package cli

import (
	"fmt"

	"github.com/mesh-intelligence/gildedrose/pkg/rose"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gildedrose version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "gildedrose v%s\nmodule: %s\n", rose.Version, rose.ModulePath)
			return nil
		},
	}
}
