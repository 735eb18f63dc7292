// Package config defines the data structures related to configuration and
// includes functions for loading and validating the bid configuration.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"

	"github.com/iwvelando/paint-bid/internal/bid"
	"github.com/iwvelando/paint-bid/internal/calculator"
	"github.com/iwvelando/paint-bid/internal/pricing"
	"github.com/iwvelando/paint-bid/internal/settings"
	"github.com/iwvelando/paint-bid/pkg/constants"
)

// Configuration holds all configuration for a paint-bid run.
type Configuration struct {
	Logging LoggingConfig            `yaml:"logging,omitempty"`
	Output  OutputConfig             `yaml:"output,omitempty"`
	Company settings.CompanySettings `yaml:"company,omitempty"`
	Storage StorageConfig            `yaml:"storage,omitempty"`
	Bid     BidConfig                `yaml:"bid"`

	// Pricing is the factory pricing with any overrides from the file
	// applied on top.
	Pricing *pricing.Settings `yaml:"-" mapstructure:"-"`
	// Inputs are the bid inputs decoded for Bid.CalculatorType.
	Inputs calculator.Inputs `yaml:"-" mapstructure:"-"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// StorageConfig locates the saved bid database.
type StorageConfig struct {
	DBPath string `yaml:"dbPath,omitempty"`
}

// BidConfig describes the bid to calculate.
type BidConfig struct {
	CalculatorType pricing.CalculatorType `yaml:"calculatorType"`
	Customer       bid.CustomerInfo       `yaml:"customer"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %s", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("storage.dbPath", constants.DefaultDBPath)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	configuration := Configuration{Company: settings.DefaultCompany()}
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	p, err := pricingOverrides(v)
	if err != nil {
		return nil, err
	}
	configuration.Pricing = p

	inputs, err := calculator.NewInputs(configuration.Bid.CalculatorType)
	if err != nil {
		return nil, fmt.Errorf("bid.calculatorType: %w", err)
	}
	if v.IsSet("bid.inputs") {
		if err := v.UnmarshalKey("bid.inputs", inputs); err != nil {
			return nil, fmt.Errorf("unable to decode bid inputs, %s", err)
		}
	}
	configuration.Inputs = inputs

	return &configuration, nil
}

// pricingOverrides starts from the factory pricing and replaces each section
// the file sets. Lists replace the default list rather than merging into it.
func pricingOverrides(v *viper.Viper) (*pricing.Settings, error) {
	p := pricing.DefaultSettings()
	sections := []struct {
		key    string
		target any
		reset  func()
	}{
		{"interiorSqft", &p.InteriorSqft, nil},
		{"exteriorSqft", &p.ExteriorSqft, nil},
		{"interiorPaint", &p.InteriorPaint, nil},
		{"exteriorPaint", &p.ExteriorPaint, nil},
		{"interiorCoverage", &p.InteriorCoverage, nil},
		{"exteriorCoverage", &p.ExteriorCoverage, nil},
		{"interiorMultipliers", &p.InteriorMultipliers, nil},
		{"exteriorMultipliers", &p.ExteriorMultipliers, nil},
		{"markupOptions", &p.MarkupOptions, func() { p.MarkupOptions = nil }},
		{"crewRates", &p.CrewRates, func() { p.CrewRates = nil }},
		{"jobDurationFormulaText", &p.JobDurationFormulaText, nil},
		{"jobDurationExampleText", &p.JobDurationExampleText, nil},
		{"lineItems", &p.LineItems, func() { p.LineItems = nil }},
		{"sections", &p.Sections, func() { p.Sections = nil }},
	}

	for _, section := range sections {
		key := "pricing." + section.key
		if !v.IsSet(key) {
			continue
		}
		if section.reset != nil {
			section.reset()
		}
		if err := v.UnmarshalKey(key, section.target); err != nil {
			return nil, fmt.Errorf("unable to decode %s, %s", key, err)
		}
	}
	return p, nil
}
