// Package results records finished sort runs for the sort log.
//
// A TimedSortResult is produced once per completed run by the driver, or
// once per batch by the headless benchmark. Log is the append-only home for
// them: the driver appends from the UI goroutine while exports and the
// sort log view read snapshots, so access goes through a RWMutex and every
// read returns a copy.
//
// Results can be rendered as a lipgloss table for the TUI and the bench
// command, or exported as JSON or YAML.
package results
