// Package ui provides the terminal user interface for xsortlab.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns a driver.Driver and renders
// its State on every frame: a status bar, two narration lines, the bars
// themselves and a footer of key hints.
//
// # Playback
//
// The driver never runs on its own goroutine. Its continuations are handed
// to a teaScheduler, which turns each Schedule call into a tea.Tick command
// and routes the resulting fireMsg back to the driver from Update. Cancelled
// continuations are dropped when their tick arrives, so pausing or replacing
// a run can never let an old timer advance the new one.
//
// # Views
//
//   - Sort view: vertical bars coloured by state (comparing or moving,
//     finished, inside the highlighted range), the temp register in its own
//     column and, for merge sort, the scratch buffer beneath.
//   - Sort log: a lipgloss table of every finished run, in a scrollable
//     viewport.
//   - Info overlay: markdown rendered with glamour, describing the controls
//     and the complexity of each algorithm.
//   - Help overlay: every key binding, grouped.
//
// # Preferences
//
// Theme, algorithm and speed changes are saved to the prefs file as they
// happen. Save failures are logged and otherwise ignored.
package ui
