package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tinytelemetry/wattdeck/internal/dataset"
	"github.com/tinytelemetry/wattdeck/internal/graph"
	"github.com/tinytelemetry/wattdeck/internal/logging"
	"github.com/tinytelemetry/wattdeck/internal/model"
)

// cliConfig holds the resolved wattdeck configuration.
type cliConfig struct {
	Locale        string        `mapstructure:"locale"`
	LinkBase      string        `mapstructure:"link-base"`
	ChartType     string        `mapstructure:"chart-type"`
	BarDuration   time.Duration `mapstructure:"bar-duration"`
	ComparePeriod string        `mapstructure:"compare-period"`
	MessagesFile  string        `mapstructure:"messages-file"`
	LogFile       string        `mapstructure:"log-file"`
	Verbose       bool          `mapstructure:"verbose"`
	Dataset       dataset.Spec  `mapstructure:"dataset"`
}

// loadConfig layers defaults, the config file, WATTDECK_* environment
// variables and explicitly set flags, lowest to highest. A missing config
// file is not an error.
func loadConfig(configPath string, flags *pflag.FlagSet) (cliConfig, error) {
	var cfg cliConfig

	v := viper.New()
	v.SetEnvPrefix("WATTDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("locale", model.DefaultLocale)
	v.SetDefault("link-base", model.DefaultLinkBase)
	v.SetDefault("chart-type", model.DefaultChartKind.String())
	v.SetDefault("bar-duration", model.DefaultBarDuration)
	v.SetDefault("compare-period", model.DefaultComparePeriod.String())
	v.SetDefault("messages-file", "")
	v.SetDefault("log-file", logging.DefaultPath())
	v.SetDefault("verbose", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		v.SetConfigFile(filepath.Join(home, ".config", "wattdeck", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return cfg, fmt.Errorf("binding flags: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// initialState builds the starting chart from the config, then lets a
// shared link override it.
func (c cliConfig) initialState(link string) (graph.State, error) {
	s := graph.DefaultState()

	kind, err := model.ParseChartKind(c.ChartType)
	if err != nil {
		return s, fmt.Errorf("chart-type: %w", err)
	}
	s.Kind = kind

	period, err := model.ParseComparePeriod(c.ComparePeriod)
	if err != nil {
		return s, fmt.Errorf("compare-period: %w", err)
	}
	s.Compare = period

	if c.BarDuration < 24*time.Hour || c.BarDuration%(24*time.Hour) != 0 {
		return s, fmt.Errorf("bar-duration %s: must be a whole number of days", c.BarDuration)
	}
	s.BarDuration = c.BarDuration

	if link == "" {
		return s, nil
	}
	return graph.ParseLinkInto(s, link)
}

// datasetSpec returns the configured dataset, or the demo one when the
// config declares no meters.
func (c cliConfig) datasetSpec() (dataset.Spec, error) {
	if len(c.Dataset.Meters) > 0 {
		return c.Dataset, nil
	}
	return dataset.DemoSpec()
}
