package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	Info       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding
	ViewLog    key.Binding

	// Playback
	Run      key.Binding
	Pause    key.Binding
	Toggle   key.Binding
	Step     key.Binding
	NewRun   key.Binding
	Fast     key.Binding
	NextAlgo key.Binding

	// Direct algorithm selection, in menu order
	Bubble    key.Binding
	Selection key.Binding
	Insertion key.Binding
	Merge     key.Binding
	Quick     key.Binding

	// Scrolling in the log and info views
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		ViewLog: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "sort log"),
		),

		Run: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "run/pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("s", "right"),
			key.WithHelp("s/→", "step"),
		),
		NewRun: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new array"),
		),
		Fast: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fast/normal"),
		),
		NextAlgo: key.NewBinding(
			key.WithKeys("a", "tab"),
			key.WithHelp("a/tab", "next algorithm"),
		),

		Bubble:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "bubble")),
		Selection: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "selection")),
		Insertion: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "insertion")),
		Merge:     key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "merge")),
		Quick:     key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "quick")),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "page down"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Step, k.NewRun, k.Fast, k.NextAlgo, k.ViewLog, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Pause, k.Toggle, k.Step, k.NewRun, k.Fast},
		{k.NextAlgo, k.Bubble, k.Selection, k.Insertion, k.Merge, k.Quick},
		{k.ViewLog, k.Info, k.Up, k.Down, k.PageUp, k.PageDown},
		{k.CycleTheme, k.Escape, k.Help, k.Quit},
	}
}

// algorithmKeys pairs the direct-selection bindings with their algorithms.
func (k keyMap) algorithmKeys() []key.Binding {
	return []key.Binding{k.Bubble, k.Selection, k.Insertion, k.Merge, k.Quick}
}
