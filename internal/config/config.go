// Package config handles report configuration loading and defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Supported report output formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Default output file names, created in the working directory.
const (
	defaultCSVName  = "polygon_areas.csv"
	defaultXLSXName = "polygon_areas.xlsx"
)

// Config represents the report configuration file structure.
type Config struct {
	// Format selects the report variant, "csv" or "xlsx".
	Format string `yaml:"format,omitempty"`
	// Output overrides the default report file path.
	Output string `yaml:"output,omitempty"`
	// Precision is the number of acreage decimal places.
	Precision int `yaml:"precision,omitempty"`
	// Sheet overrides the worksheet name in the xlsx variant.
	Sheet string `yaml:"sheet,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Format:    FormatCSV,
		Precision: 2,
		Sheet:     "Polygon Areas",
	}
}

// Load reads and parses the YAML configuration file from the specified path.
// Missing fields keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge applies explicitly set CLI overrides on top of the file
// values. Empty strings and nil mean the flag was not given.
func (c *Config) Merge(format, output string, precision *int) {
	if format != "" {
		c.Format = format
	}
	if output != "" {
		c.Output = output
	}
	if precision != nil {
		c.Precision = *precision
	}
}

// Validate checks the configuration for values no writer can handle.
func (c *Config) Validate() error {
	if c.Format != FormatCSV && c.Format != FormatXLSX {
		return fmt.Errorf("unsupported report format %q (expected %q or %q)", c.Format, FormatCSV, FormatXLSX)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision must be >= 0, got %d", c.Precision)
	}
	if c.Sheet == "" {
		return fmt.Errorf("sheet name must not be empty")
	}
	return nil
}

// OutputPath returns the configured output path, or the fixed default
// name for the selected format.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	if c.Format == FormatXLSX {
		return defaultXLSXName
	}
	return defaultCSVName
}
