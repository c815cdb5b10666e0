package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Mode selects the output renderer for a run.
const (
	ModeHTML = "html"
	ModeJSON = "json"
)

// BU names one business unit: the key used in file names, the label
// shown on the dashboard tab, and the workbook sheet it is read from.
type BU struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Sheet string `yaml:"sheet"`
}

// Config is the explicit run configuration. Everything the generator
// needs is here; there are no package-level knobs.
type Config struct {
	SourcePath   string
	OutputDir    string
	Mode         string
	MaxChunkRows int
	MaxRowsPerBU int
	DefaultYear  int
	MoneyAliases []string
	BUs          []BU
}

// DefaultBUs mirrors the original TABELAO workbook layout.
func DefaultBUs() []BU {
	return []BU{
		{Key: "imoveis", Label: "Imoveis", Sheet: "Imoveis"},
		{Key: "carbuy", Label: "Carbuy", Sheet: "Carbuy"},
		{Key: "veiculos", Label: "Veiculos", Sheet: "Veiculos"},
	}
}

// buSection is the part of the config file viper cannot carry for us:
// viper lowercases map keys and loses ordering, and both the BU labels
// and the tab order matter, so this section is unmarshalled directly.
type buSection struct {
	BUs          []BU     `yaml:"bus"`
	MoneyAliases []string `yaml:"money_aliases"`
}

// Build resolves configuration from, in increasing precedence: built-in
// defaults, an optional YAML config file, TABELAO_* environment
// variables, and command-line flags.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("out", "docs")
	v.SetDefault("mode", ModeHTML)
	v.SetDefault("chunk_size", 1000)
	v.SetDefault("max_rows", 0)
	v.SetDefault("default_year", time.Now().Year())

	v.SetEnvPrefix("TABELAO")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		// A missing implicit config.yaml is fine; an explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if flags != nil {
		for viperKey, flagName := range map[string]string{
			"source":       "source",
			"out":          "out",
			"mode":         "mode",
			"chunk_size":   "chunk-size",
			"max_rows":     "max-rows",
			"default_year": "default-year",
		} {
			// Only explicitly set flags participate: an untouched flag
			// default must not shadow the config file or environment.
			if f := flags.Lookup(flagName); f != nil && f.Changed {
				if err := v.BindPFlag(viperKey, f); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := &Config{
		SourcePath:   v.GetString("source"),
		OutputDir:    v.GetString("out"),
		Mode:         v.GetString("mode"),
		MaxChunkRows: v.GetInt("chunk_size"),
		MaxRowsPerBU: v.GetInt("max_rows"),
		DefaultYear:  v.GetInt("default_year"),
	}

	if used := v.ConfigFileUsed(); used != "" {
		data, err := os.ReadFile(used)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		var section buSection
		if err := yaml.Unmarshal(data, &section); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		cfg.BUs = section.BUs
		cfg.MoneyAliases = section.MoneyAliases
	}
	if len(cfg.BUs) == 0 {
		cfg.BUs = DefaultBUs()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants the pipeline relies on.
func (c *Config) Validate() error {
	if c.Mode != ModeHTML && c.Mode != ModeJSON {
		return fmt.Errorf("invalid mode %q: must be %q or %q", c.Mode, ModeHTML, ModeJSON)
	}
	if c.MaxChunkRows <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.MaxChunkRows)
	}
	for _, bu := range c.BUs {
		if bu.Key == "" || bu.Sheet == "" {
			return fmt.Errorf("business unit needs key and sheet, got %+v", bu)
		}
	}
	return nil
}
