// Package driver plays a sortlab step-machine for the presentation layer.
//
// # Overview
//
// A Driver owns exactly one machine and a display copy of its board. The UI
// calls SelectAlgorithm, NewRun, Run, Pause, Step and SetFast; after every
// change the driver publishes a State through Options.OnChange.
//
// # Scheduling
//
// Continuous playback never blocks. Run pulls one event, then asks the
// Scheduler to call back after the current cadence (fast or normal, or the
// event's own Delay). At most one continuation is pending at any time.
// Pause, SelectAlgorithm and NewRun cancel it before touching the machine,
// and every continuation carries a generation token so one that fires late
// is ignored.
//
// Schedulers must invoke callbacks on the goroutine that owns the Driver.
// ManualScheduler does so trivially; the UI's scheduler turns delays into
// Bubble Tea commands whose messages are handled in Update.
//
// # Results
//
// When the machine completes, the driver stops, measures elapsed time from
// the first Run or Step and appends one results.TimedSortResult to its Sink.
//
// Calls that make no sense in the current state (Step while running, Run
// after the sort finished, Pause while stopped) do nothing.
package driver
