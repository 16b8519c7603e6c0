// Package app provides the orchestration layer for xsortlab.
//
// # Overview
//
// This package wires configuration, logging, preferences, metrics and the UI
// together. It is the composition root: every long-lived dependency is built
// here and handed to the packages that use it.
//
// # Entry points
//
//   - Run: loads config, opens the JSON log file, starts the optional
//     metrics endpoint and blocks in the TUI until the user quits or the
//     context is cancelled.
//   - Bench: sorts many generated arrays headless on a virtual-clock
//     scheduler and sums their counters into one TimedSortResult.
//   - Trace: pulls every step of one run and prints it.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> LoadConfig()     config.toml + flag overrides, validated
//	       ├─────> logging.New()    JSON lines to the log file
//	       ├─────> prefs.Load()     theme, last algorithm, speed
//	       ├─────> metrics.New()    private registry, /metrics if configured
//	       └─────> ui.Run()         TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable, unparsable or out of range
//   - Log file cannot be created
//
// Recoverable errors (logged, startup continues):
//   - Preferences file unreadable or invalid; defaults are used
//   - Metrics listener failure; the TUI runs without the endpoint
package app
