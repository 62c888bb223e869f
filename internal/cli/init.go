package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/gildedrose/internal/paths"
	"github.com/mesh-intelligence/gildedrose/pkg/types"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and write config.yaml with default values if it is missing.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(a.flags.configDir)
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}

			path := filepath.Join(configDir, configFileExt)
			written, err := writeConfigIfMissing(path)
			if err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			if written {
				fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Config already exists at", path)
			}
			return nil
		},
	}
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether the file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := types.DefaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	return true, os.WriteFile(path, data, 0o644)
}
