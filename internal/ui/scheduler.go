package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fireMsg is delivered when a scheduled continuation falls due.
type fireMsg struct {
	id uint64
}

// teaScheduler turns driver continuations into tea.Tick commands. Schedule
// only queues the command; Update must hand Flush's result back to Bubble Tea
// and route fireMsg to Fire, so every continuation runs on the Update
// goroutine.
type teaScheduler struct {
	seq    uint64
	fns    map[uint64]func()
	queued []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{fns: make(map[uint64]func())}
}

// Schedule implements driver.Scheduler.
func (s *teaScheduler) Schedule(delay time.Duration, fn func()) func() {
	s.seq++
	id := s.seq
	s.fns[id] = fn
	s.queued = append(s.queued, tea.Tick(delay, func(time.Time) tea.Msg {
		return fireMsg{id: id}
	}))
	return func() { delete(s.fns, id) }
}

// Flush returns the ticks queued since the last call, or nil.
func (s *teaScheduler) Flush() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Fire runs the continuation for id unless it was cancelled. It reports
// whether anything ran.
func (s *teaScheduler) Fire(id uint64) bool {
	fn, ok := s.fns[id]
	if !ok {
		return false
	}
	delete(s.fns, id)
	fn()
	return true
}

// Pending returns the number of live continuations.
func (s *teaScheduler) Pending() int {
	return len(s.fns)
}
