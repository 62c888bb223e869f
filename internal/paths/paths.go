// Package paths locates the directory holding config.yaml.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppDirName is the per-user directory created under the platform config root.
const AppDirName = "gildedrose"

// EnvConfigDir names the environment variable that points at a config directory.
const EnvConfigDir = "ROSE_CONFIG_DIR"

// Lookups are variables so tests can simulate a missing home directory.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir is where config.yaml lives when nothing overrides it.
// On Linux that is $XDG_CONFIG_HOME/gildedrose, or ~/.config/gildedrose
// without XDG; elsewhere it sits under os.UserConfigDir.
func DefaultConfigDir() (string, error) {
	if runtime.GOOS != "linux" {
		root, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(root, AppDirName), nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppDirName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppDirName), nil
}

// ResolveConfigDir picks the --config-dir value, then $ROSE_CONFIG_DIR, then
// DefaultConfigDir. An explicit choice is returned as an absolute path.
func ResolveConfigDir(flag string) (string, error) {
	for _, dir := range []string{flag, os.Getenv(EnvConfigDir)} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	return DefaultConfigDir()
}
