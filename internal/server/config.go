package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/iwvelando/paint-bid/internal/config"
	"github.com/iwvelando/paint-bid/pkg/constants"
)

// Config holds the bid server settings read from server-config.yaml.
type Config struct {
	Address string `yaml:"address"`
	// MaxUploadSize caps request bodies, e.g. "256K" or "2MB".
	MaxUploadSize ByteSize `yaml:"maxUploadSize"`
	// DBPath is the SQLite database of saved bids.
	DBPath string `yaml:"dbPath"`
	// SettingsPath is the YAML file holding company and pricing settings.
	// Empty keeps settings in memory.
	SettingsPath string               `yaml:"settingsPath"`
	Logging      config.LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Address:       constants.DefaultServerAddress,
		MaxUploadSize: ByteSize(constants.DefaultMaxUploadSizeBytes),
		DBPath:        constants.DefaultDBPath,
		SettingsPath:  constants.DefaultSettingsPath,
	}
}

// LoadConfig reads the server configuration at path over DefaultConfig.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	// Keys present but blank fall back too, except settingsPath.
	defaults := DefaultConfig()
	if cfg.Address == "" {
		cfg.Address = defaults.Address
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaults.DBPath
	}
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = defaults.MaxUploadSize
	}
	return cfg, nil
}

// ByteSize is a byte count written either as a plain number or with a
// binary unit suffix (B, K/KB, M/MB, G/GB), case-insensitive.
type ByteSize int64

var sizeUnits = map[string]int64{
	"":   1,
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
	"G":  1 << 30,
	"GB": 1 << 30,
}

// UnmarshalYAML parses a scalar such as 512 or "10M".
func (s *ByteSize) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: size must be a scalar", node.Line)
	}
	size, err := ParseSize(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = size
	return nil
}

// Bytes returns the size as an int64 byte count.
func (s ByteSize) Bytes() int64 {
	return int64(s)
}

// ParseSize converts strings like "256K" or "3MB" to a ByteSize. An empty
// string is the default upload limit.
func ParseSize(value string) (ByteSize, error) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return ByteSize(constants.DefaultMaxUploadSizeBytes), nil
	}

	split := strings.LastIndexFunc(s, unicode.IsDigit) + 1
	if split == 0 {
		return 0, fmt.Errorf("invalid size %q", value)
	}
	multiplier, ok := sizeUnits[strings.TrimSpace(s[split:])]
	if !ok {
		return 0, fmt.Errorf("unsupported size unit in %q", value)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s[:split]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", value, err)
	}
	if n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("size %q overflows", value)
	}
	return ByteSize(n * multiplier), nil
}
