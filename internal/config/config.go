// Package config loads the TOML configuration shared by the radixsort tools.
//
// A config file looks like:
//
//	[log]
//	level = "info"
//	format = "console"
//
//	[thresholds]
//	uint16Pass = 150
//	uint16Low = 75
//	word32 = 50
//	narrow = 50
//	wide = 128
//
//	[sort]
//	verify = false
//	jobs = 4
//
// Every key is optional; missing keys keep their defaults. Unknown keys are
// rejected so typos do not silently fall back to defaults.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tamirms/radixsort"
	sorterrors "github.com/tamirms/radixsort/errors"
	"github.com/tamirms/radixsort/internal/logutil"
)

type ThresholdConfig struct {
	Uint16Pass int `toml:"uint16Pass"`
	Uint16Low  int `toml:"uint16Low"`
	Word32     int `toml:"word32"`
	Narrow     int `toml:"narrow"`
	Wide       int `toml:"wide"`
}

// Thresholds converts to the sorter's type.
func (tc ThresholdConfig) Thresholds() radixsort.Thresholds {
	return radixsort.Thresholds{
		Uint16Pass: tc.Uint16Pass,
		Uint16Low:  tc.Uint16Low,
		Word32:     tc.Word32,
		Narrow:     tc.Narrow,
		Wide:       tc.Wide,
	}
}

type SortConfig struct {
	Verify bool `toml:"verify"`
	// Jobs bounds how many files the tools process at once.
	Jobs int `toml:"jobs"`
}

// Config is the decoded configuration file.
type Config struct {
	Log        logutil.LogConfig `toml:"log"`
	Thresholds ThresholdConfig   `toml:"thresholds"`
	Sort       SortConfig        `toml:"sort"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	th := radixsort.DefaultThresholds()
	return &Config{
		Log: logutil.LogConfig{
			Level:  "info",
			Format: "console",
		},
		Thresholds: ThresholdConfig{
			Uint16Pass: th.Uint16Pass,
			Uint16Low:  th.Uint16Low,
			Word32:     th.Word32,
			Narrow:     th.Narrow,
			Wide:       th.Wide,
		},
		Sort: SortConfig{Jobs: runtime.GOMAXPROCS(0)},
	}
}

// Load reads the TOML file at path over the defaults and validates the
// result. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s in %s", sorterrors.ErrUnknownConfigKey, strings.Join(keys, ", "), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects negative thresholds, a non-positive job count and
// unknown logging settings.
func (c *Config) Validate() error {
	th := c.Thresholds
	for _, f := range []struct {
		name  string
		value int
	}{
		{"uint16Pass", th.Uint16Pass},
		{"uint16Low", th.Uint16Low},
		{"word32", th.Word32},
		{"narrow", th.Narrow},
		{"wide", th.Wide},
	} {
		if f.value < 0 {
			return fmt.Errorf("%w: %s = %d", sorterrors.ErrInvalidThreshold, f.name, f.value)
		}
	}
	if c.Sort.Jobs < 1 {
		return fmt.Errorf("sort.jobs must be at least 1, got %d", c.Sort.Jobs)
	}
	return c.Log.Validate()
}
