// Package constants provides shared constants for the paint-bid application.
package constants

// DateLayout is the date format used in export filenames and printed bids.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "bid.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "bid.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultDBPath is the default SQLite database holding saved bids
	DefaultDBPath = "bids.db"

	// DefaultSettingsPath is the default file for persisted pricing settings
	DefaultSettingsPath = "settings.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Export defaults
const (
	// EstimateValidDays is printed in the estimate footer
	EstimateValidDays = 30
)
