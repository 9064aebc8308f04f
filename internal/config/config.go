package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Version is the lionshare release version.
const Version = "0.3.0"

// Config holds all lionshare configuration.
type Config struct {
	InputPath  string        `yaml:"input"`
	FixtureDir string        `yaml:"fixture_dir"`
	WebhookURL string        `yaml:"webhook_url"`
	LogLevel   string        `yaml:"log_level"`
	Ledger     LedgerConfig  `yaml:"ledger"`
	Journal    JournalConfig `yaml:"journal"`
	Output     OutputConfig  `yaml:"output"`
}

// LedgerConfig holds persisted ledger settings.
type LedgerConfig struct {
	Backend string `yaml:"backend"` // "csv", "sqlite"
	Path    string `yaml:"path"`
	Unknown string `yaml:"unknown"` // "add", "ignore"
}

// JournalConfig holds the NDJSON result journal settings. An empty Path
// disables the journal.
type JournalConfig struct {
	Path    string `yaml:"path"`
	MaxSize int64  `yaml:"max_size"`
}

// OutputConfig holds stdout output settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "json", "text"
	Pretty bool   `yaml:"pretty"`
}

// Load builds the configuration from defaults, then the YAML file named by
// LIONSHARE_CONFIG if set, then LIONSHARE_* environment variables.
func Load() (Config, error) {
	cfg := Config{
		InputPath: "./input.txt",
		LogLevel:  "info",
		Ledger: LedgerConfig{
			Backend: "csv",
			Path:    "./ledger.csv",
			Unknown: "add",
		},
		Journal: JournalConfig{MaxSize: 10 << 20},
		Output:  OutputConfig{Format: "json"},
	}

	if path := os.Getenv("LIONSHARE_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.InputPath = getenv("LIONSHARE_INPUT", cfg.InputPath)
	cfg.FixtureDir = getenv("LIONSHARE_FIXTURE_DIR", cfg.FixtureDir)
	cfg.WebhookURL = getenv("LIONSHARE_WEBHOOK_URL", cfg.WebhookURL)
	cfg.LogLevel = getenv("LIONSHARE_LOG_LEVEL", cfg.LogLevel)
	cfg.Ledger.Backend = getenv("LIONSHARE_LEDGER_BACKEND", cfg.Ledger.Backend)
	cfg.Ledger.Path = getenv("LIONSHARE_LEDGER_PATH", cfg.Ledger.Path)
	cfg.Ledger.Unknown = getenv("LIONSHARE_UNKNOWN", cfg.Ledger.Unknown)
	cfg.Journal.Path = getenv("LIONSHARE_JOURNAL_PATH", cfg.Journal.Path)
	cfg.Journal.MaxSize = getenvInt64("LIONSHARE_JOURNAL_MAX_SIZE", cfg.Journal.MaxSize)
	cfg.Output.Format = getenv("LIONSHARE_OUTPUT_FORMAT", cfg.Output.Format)
	cfg.Output.Pretty = getenvBool("LIONSHARE_OUTPUT_PRETTY", cfg.Output.Pretty)
	return cfg, nil
}

// Validate checks the configuration and returns every problem found, joined.
func (c Config) Validate() error {
	var errs []error

	if c.InputPath == "" {
		errs = append(errs, errors.New("LIONSHARE_INPUT must not be empty"))
	}
	switch c.Ledger.Backend {
	case "csv", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("ledger backend must be csv or sqlite, got %q", c.Ledger.Backend))
	}
	if c.Ledger.Path == "" {
		errs = append(errs, errors.New("LIONSHARE_LEDGER_PATH must not be empty"))
	}
	switch c.Ledger.Unknown {
	case "add", "ignore":
	default:
		errs = append(errs, fmt.Errorf("unknown-vehicle policy must be add or ignore, got %q", c.Ledger.Unknown))
	}
	if c.Journal.MaxSize <= 0 {
		errs = append(errs, fmt.Errorf("journal max size must be positive, got %d", c.Journal.MaxSize))
	}
	if c.WebhookURL != "" {
		if u, err := url.Parse(c.WebhookURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("LIONSHARE_WEBHOOK_URL must be an http(s) URL, got %q", c.WebhookURL))
		}
	}
	switch c.Output.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("output format must be json or text, got %q", c.Output.Format))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log level must be debug, info, warn or error, got %q", c.LogLevel))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
