package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/xsortlab/internal/sortlab"
)

// Config holds the xsortlab settings read from config.toml.
type Config struct {
	ArraySize   int               `validate:"min=2,max=64"`
	Algorithm   sortlab.Algorithm `validate:"oneof=bubble selection insertion merge quick"`
	FastDelay   time.Duration     `validate:"gt=0"`
	NormalDelay time.Duration     `validate:"gt=0"`
	LogFile     string
	LogLevel    string `validate:"oneof=trace debug info warn error fatal panic disabled"`
	MetricsAddr string `validate:"omitempty,hostname_port"`
	// Seed fixes the array generator; zero draws a random seed.
	Seed uint64
}

const (
	defaultConfigPath  = "~/.config/xsortlab/config.toml"
	defaultLogFile     = "~/.local/share/xsortlab/xsortlab.log"
	defaultArraySize   = 16
	defaultAlgorithm   = sortlab.Selection
	defaultFastDelay   = 100 * time.Millisecond
	defaultNormalDelay = time.Second
	defaultLogLevel    = "info"
)

var validate = validator.New()

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ArraySize:   defaultArraySize,
		Algorithm:   defaultAlgorithm,
		FastDelay:   defaultFastDelay,
		NormalDelay: defaultNormalDelay,
		LogFile:     mustExpand(defaultLogFile),
		LogLevel:    defaultLogLevel,
	}
}

// Load locates and parses config.toml, falling back to defaults when the file
// is missing and for any field left empty.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ArraySize   int    `toml:"array_size"`
		Algorithm   string `toml:"algorithm"`
		FastDelay   string `toml:"fast_delay"`
		NormalDelay string `toml:"normal_delay"`
		LogFile     string `toml:"log_file"`
		LogLevel    string `toml:"log_level"`
		MetricsAddr string `toml:"metrics_addr"`
		Seed        uint64 `toml:"seed"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.ArraySize != 0 {
		cfg.ArraySize = raw.ArraySize
	}
	if name := strings.TrimSpace(raw.Algorithm); name != "" {
		cfg.Algorithm = sortlab.Algorithm(strings.ToLower(name))
	}
	if cfg.FastDelay, err = parseDelay("fast_delay", raw.FastDelay, defaultFastDelay); err != nil {
		return Config{}, err
	}
	if cfg.NormalDelay, err = parseDelay("normal_delay", raw.NormalDelay, defaultNormalDelay); err != nil {
		return Config{}, err
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	cfg.Seed = raw.Seed

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges. Callers that override fields after Load
// should validate again.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// DefaultPath returns the config file path used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func parseDelay(field, value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", field, err)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
