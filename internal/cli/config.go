package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/gildedrose/internal/paths"
	"github.com/mesh-intelligence/gildedrose/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "ROSE"

	cfgKeyDays    = "days"
	cfgKeyFixture = "fixture"
	cfgKeyFormat  = "format"
)

// loadConfig reads config.yaml from the resolved config directory and binds
// the named flags of cmd. Precedence is flag > ROSE_* env > config.yaml >
// default. A missing config.yaml is not an error.
func loadConfig(cmd *cobra.Command, configDirFlag string, flagKeys ...string) (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(configDirFlag)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	defaults := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyDays, defaults.Days)
	v.SetDefault(cfgKeyFixture, defaults.Fixture)
	v.SetDefault(cfgKeyFormat, defaults.Format)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	for _, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return types.Config{}, fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Days:    v.GetInt(cfgKeyDays),
		Fixture: v.GetString(cfgKeyFixture),
		Format:  v.GetString(cfgKeyFormat),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
