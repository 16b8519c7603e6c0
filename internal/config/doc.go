// Package config loads xsortlab's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/xsortlab/config.toml
//  3. If the file doesn't exist, use defaults
//  4. Fields that are missing or blank keep their defaults
//
// # TOML Format
//
//	array_size   = 16          # 2..64
//	algorithm    = "selection" # bubble, selection, insertion, merge, quick
//	fast_delay   = "100ms"
//	normal_delay = "1s"
//	log_file     = "~/.local/share/xsortlab/xsortlab.log"
//	log_level    = "info"
//	metrics_addr = ""          # host:port; empty disables /metrics
//	seed         = 0           # 0 picks a random seed
//
// Durations use Go syntax. Tilde expansion is applied to the config path and
// log_file.
//
// # Validation
//
// Load decodes into a raw struct first, applies defaults, then checks the
// result with go-playground/validator. Errors are wrapped with "parse config"
// or "validate config" so callers can tell a typo from an out-of-range value.
package config
