package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/xsortlab/internal/config"
	"github.com/five82/xsortlab/internal/logging"
	"github.com/five82/xsortlab/internal/metrics"
	"github.com/five82/xsortlab/internal/prefs"
	"github.com/five82/xsortlab/internal/results"
	"github.com/five82/xsortlab/internal/sortlab"
	"github.com/five82/xsortlab/internal/ui"
)

// Options configure the xsortlab application. Zero-valued overrides keep
// the value from the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/xsortlab/prefs.toml

	ArraySize   int
	Algorithm   string
	Seed        uint64
	LogLevel    string
	MetricsAddr string
}

// LoadConfig reads the config file and applies the overrides in opts.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.ArraySize != 0 {
		cfg.ArraySize = opts.ArraySize
	}
	if opts.Algorithm != "" {
		alg, err := sortlab.ParseAlgorithm(opts.Algorithm)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Algorithm = alg
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(opts.LogLevel))
	}
	if opts.MetricsAddr != "" {
		cfg.MetricsAddr = opts.MetricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Run boots the xsortlab TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn().Err(err).Msg("load prefs, using defaults")
	}

	algorithm := cfg.Algorithm
	if opts.Algorithm == "" && userPrefs.Algorithm != "" {
		if alg, err := sortlab.ParseAlgorithm(userPrefs.Algorithm); err == nil {
			algorithm = alg
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		startMetrics(ctx, m, cfg.MetricsAddr, logger)
	}

	logger.Info().
		Str("algorithm", string(algorithm)).
		Int("array_size", cfg.ArraySize).
		Uint64("seed", cfg.Seed).
		Msg("xsortlab starting")

	err = ui.Run(ctx, ui.Options{
		Generator:   NewGenerator(cfg.Seed),
		ArraySize:   cfg.ArraySize,
		Algorithm:   algorithm,
		FastDelay:   cfg.FastDelay,
		NormalDelay: cfg.NormalDelay,
		Fast:        userPrefs.FastMode,
		Results:     &results.Log{},
		Recorder:    m,
		Logger:      logger,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
	})
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// startMetrics serves /metrics in the background until ctx is cancelled.
// A listener failure is logged, not fatal.
func startMetrics(ctx context.Context, m *metrics.Metrics, addr string, logger zerolog.Logger) {
	go func() {
		if err := m.Serve(ctx, addr, logger); err != nil {
			logger.Error().Err(err).Str("addr", addr).Msg("metrics endpoint stopped")
		}
	}()
}

// NewGenerator returns a seeded generator, or a random one for seed 0.
func NewGenerator(seed uint64) sortlab.Generator {
	if seed == 0 {
		return sortlab.NewRandomGenerator()
	}
	return sortlab.NewSeededGenerator(seed)
}
