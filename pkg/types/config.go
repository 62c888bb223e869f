package types

import "errors"

// Report formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultDays is the number of days simulated when none is configured.
const DefaultDays = 2

// Config holds the parameters of a simulation run.
type Config struct {
	Days    int    `json:"days" yaml:"days"`
	Fixture string `json:"fixture,omitempty" yaml:"fixture,omitempty"`
	Format  string `json:"format" yaml:"format"`
}

// Config validation errors.
var (
	ErrDaysNegative  = errors.New("days must not be negative")
	ErrFormatUnknown = errors.New("unknown report format")
)

var knownFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// DefaultConfig returns a config that simulates DefaultDays over the
// built-in inventory and renders text.
func DefaultConfig() Config {
	return Config{Days: DefaultDays, Format: FormatText}
}

// Validate checks that the Config is well-formed. An empty Fixture selects
// the built-in inventory and is valid.
func (c Config) Validate() error {
	if c.Days < 0 {
		return ErrDaysNegative
	}
	if !knownFormats[c.Format] {
		return ErrFormatUnknown
	}
	return nil
}
