// Package config loads leasemerge settings from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ukaji3/leasemerge-go/pkg/leasemerge"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/parser"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds all leasemerge configuration.
type Config struct {
	Merge   MergeConfig   `yaml:"merge"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// MergeConfig configures extraction and the target sheet.
type MergeConfig struct {
	SheetName string `yaml:"sheet_name"`
	// LabelNewColumns writes the header label of columns created for
	// fields missing from the header. Nil means true.
	LabelNewColumns *bool               `yaml:"label_new_columns,omitempty"`
	Rules           []parser.Rule       `yaml:"rules,omitempty"`
	Columns         []models.ColumnSpec `yaml:"columns,omitempty"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	MaxUploadMB     int    `yaml:"max_upload_mb"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Merge: MergeConfig{
			SheetName: leasemerge.DefaultSheetName,
			Rules:     parser.DefaultRules(),
			Columns:   parser.DefaultColumns(),
		},
		Server: ServerConfig{
			Addr:            ":8080",
			MaxUploadMB:     32,
			ReadTimeout:     "30s",
			WriteTimeout:    "60s",
			ShutdownTimeout: "10s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file over the defaults, then applies
// environment overrides. A missing file yields the defaults. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("LEASEMERGE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LEASEMERGE_SHEET"); v != "" {
		c.Merge.SheetName = v
	}
	if v := os.Getenv("LEASEMERGE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LEASEMERGE_MAX_UPLOAD_MB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LEASEMERGE_MAX_UPLOAD_MB: %w", err)
		}
		c.Server.MaxUploadMB = n
	}
	return nil
}

// Validate checks the configuration for values the merge cannot run with.
func (c *Config) Validate() error {
	if c.Merge.SheetName == "" {
		return fmt.Errorf("merge.sheet_name is required")
	}

	headers := make(map[string]bool)
	fields := make(map[string]bool)
	for _, col := range c.Merge.Columns {
		if !models.IsKnownField(col.Field) {
			return fmt.Errorf("merge.columns: unknown field %q", col.Field)
		}
		if col.Header == "" {
			return fmt.Errorf("merge.columns: empty header for %s", col.Field)
		}
		if headers[col.Header] {
			return fmt.Errorf("merge.columns: duplicate header %q", col.Header)
		}
		if fields[col.Field] {
			return fmt.Errorf("merge.columns: duplicate field %q", col.Field)
		}
		headers[col.Header] = true
		fields[col.Field] = true
	}

	if err := requireAllFields("merge.columns", fields); err != nil {
		return err
	}

	ruled := make(map[string]bool)
	for _, rule := range c.Merge.Rules {
		if !models.IsKnownField(rule.Field) {
			return fmt.Errorf("merge.rules: unknown field %q", rule.Field)
		}
		if _, err := rule.Pattern(); err != nil {
			return fmt.Errorf("merge.rules: %w", err)
		}
		ruled[rule.Field] = true
	}
	if err := requireAllFields("merge.rules", ruled); err != nil {
		return err
	}

	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive")
	}
	for name, d := range map[string]string{
		"read_timeout":     c.Server.ReadTimeout,
		"write_timeout":    c.Server.WriteTimeout,
		"shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if _, err := time.ParseDuration(d); err != nil {
			return fmt.Errorf("server.%s: %w", name, err)
		}
	}

	if _, err := zap.ParseAtomicLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// requireAllFields rejects a list that leaves a record field uncovered.
// An empty list falls back to the defaults and is accepted.
func requireAllFields(section string, covered map[string]bool) error {
	if len(covered) == 0 {
		return nil
	}
	for _, field := range models.FieldOrder {
		if !covered[field] {
			return fmt.Errorf("%s: no entry for field %s", section, field)
		}
	}
	return nil
}

// MergeOptions converts the merge section into pipeline options.
func (c *Config) MergeOptions(logger *zap.Logger) leasemerge.Options {
	return leasemerge.Options{
		SheetName:       c.Merge.SheetName,
		LabelNewColumns: c.Merge.LabelNewColumns,
		Rules:           c.Merge.Rules,
		Columns:         c.Merge.Columns,
		Logger:          logger,
	}
}

// Timeouts returns the parsed server durations. Validate must have passed.
func (s ServerConfig) Timeouts() (read, write, shutdown time.Duration) {
	read, _ = time.ParseDuration(s.ReadTimeout)
	write, _ = time.ParseDuration(s.WriteTimeout)
	shutdown, _ = time.ParseDuration(s.ShutdownTimeout)
	return read, write, shutdown
}

// MaxUploadBytes returns the upload cap in bytes.
func (s ServerConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}
