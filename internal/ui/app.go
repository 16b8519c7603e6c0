package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/xsortlab/internal/driver"
	"github.com/five82/xsortlab/internal/prefs"
	"github.com/five82/xsortlab/internal/results"
	"github.com/five82/xsortlab/internal/sortlab"
)

// View represents the current active view.
type View int

const (
	ViewSort View = iota
	ViewLog
)

// DefaultArraySize is the number of bars used when Options leaves it unset.
const DefaultArraySize = 16

// Options configures the UI.
type Options struct {
	Generator   sortlab.Generator
	ArraySize   int
	Algorithm   sortlab.Algorithm
	FastDelay   time.Duration
	NormalDelay time.Duration
	Fast        bool

	Results  *results.Log
	Recorder driver.Recorder
	Logger   zerolog.Logger

	ThemeName string
	PrefsPath string
	// Clock feeds the driver's elapsed-time measurement. Defaults to time.Now.
	Clock func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators. All pointers, so copies of Model share them.
	drv     *driver.Driver
	sched   *teaScheduler
	gen     sortlab.Generator
	results *results.Log
	log     zerolog.Logger

	size      int
	prefsPath string

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	showInfo    bool
	status      string

	logViewport  viewport.Model
	logLen       int
	infoViewport viewport.Model
}

// New creates a new Bubble Tea model with a freshly generated run loaded.
func New(opts Options) Model {
	size := opts.ArraySize
	if size < sortlab.MinSize {
		size = DefaultArraySize
	}
	gen := opts.Generator
	if gen == nil {
		gen = sortlab.NewRandomGenerator()
	}
	runs := opts.Results
	if runs == nil {
		runs = &results.Log{}
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sched := newTeaScheduler()
	drvOpts := driver.Options{
		Scheduler:   sched,
		Algorithm:   opts.Algorithm,
		FastDelay:   opts.FastDelay,
		NormalDelay: opts.NormalDelay,
		Fast:        opts.Fast,
		Clock:       opts.Clock,
		Logger:      opts.Logger,
		Sink:        runs,
		Recorder:    opts.Recorder,
	}

	m := Model{
		drv:         driver.New(drvOpts),
		sched:       sched,
		gen:         gen,
		results:     runs,
		log:         opts.Logger.With().Str("component", "ui").Logger(),
		size:        size,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentView: ViewSort,
	}
	m.newRun()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("xsortlab")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var next tea.Model
		next, cmd = m.handleKey(msg)
		m = next.(Model)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true

	case fireMsg:
		m.sched.Fire(msg.id)
	}

	m.syncLog()
	return m, tea.Batch(cmd, m.sched.Flush())
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showInfo {
		return m.renderInfo()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.drv.Pause()
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showInfo {
		switch {
		case key.Matches(msg, m.keys.Info), key.Matches(msg, m.keys.Escape):
			m.showInfo = false
		default:
			scrollViewport(&m.infoViewport, m.keys, msg)
		}
		return m, nil
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Info):
		m.showInfo = true
		m.refreshInfo()

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.logLen = -1
		m.savePrefs()

	case key.Matches(msg, m.keys.ViewLog):
		if m.currentView == ViewLog {
			m.currentView = ViewSort
		} else {
			m.currentView = ViewLog
		}

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewSort

	case key.Matches(msg, m.keys.Run):
		m.drv.Run()

	case key.Matches(msg, m.keys.Pause):
		m.drv.Pause()

	case key.Matches(msg, m.keys.Toggle):
		if m.drv.State().Running {
			m.drv.Pause()
		} else {
			m.drv.Run()
		}

	case key.Matches(msg, m.keys.Step):
		m.drv.Step()

	case key.Matches(msg, m.keys.NewRun):
		m.newRun()

	case key.Matches(msg, m.keys.Fast):
		m.drv.SetFast(!m.drv.Fast())
		m.savePrefs()

	case key.Matches(msg, m.keys.NextAlgo):
		m.selectAlgorithm(m.drv.Algorithm().Next())

	default:
		for i, b := range m.keys.algorithmKeys() {
			if key.Matches(msg, b) {
				m.selectAlgorithm(sortlab.Algorithms()[i])
				return m, nil
			}
		}
		if m.currentView == ViewLog {
			scrollViewport(&m.logViewport, m.keys, msg)
		}
	}
	return m, nil
}

func (m *Model) newRun() {
	if err := m.drv.NewRun(m.gen.Generate(m.size)); err != nil {
		m.log.Error().Err(err).Int("size", m.size).Msg("new run")
		m.status = err.Error()
	}
}

func (m *Model) selectAlgorithm(kind sortlab.Algorithm) {
	if err := m.drv.SelectAlgorithm(kind); err != nil {
		m.log.Error().Err(err).Str("algorithm", string(kind)).Msg("select algorithm")
		m.status = err.Error()
		return
	}
	m.savePrefs()
}

// savePrefs persists theme, algorithm and speed. Failures are logged and
// otherwise ignored.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{
		Theme:     m.theme.Name,
		Algorithm: string(m.drv.Algorithm()),
		FastMode:  m.drv.Fast(),
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn().Err(err).Str("path", m.prefsPath).Msg("save prefs")
	}
}

func (m *Model) resize() {
	bodyHeight := max(m.height-headerHeight-footerHeight, 1)
	if !m.ready {
		m.logViewport = viewport.New(m.width, bodyHeight)
		m.infoViewport = viewport.New(infoWidth(m.width), max(m.height-6, 1))
	} else {
		m.logViewport.Width, m.logViewport.Height = m.width, bodyHeight
		m.infoViewport.Width, m.infoViewport.Height = infoWidth(m.width), max(m.height-6, 1)
	}
	m.help.Width = m.width
	m.logLen = -1
	if m.showInfo {
		m.refreshInfo()
	}
}

func scrollViewport(vp *viewport.Model, keys keyMap, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Down):
		vp.ScrollDown(1)
	case key.Matches(msg, keys.Up):
		vp.ScrollUp(1)
	case key.Matches(msg, keys.PageDown):
		vp.HalfPageDown()
	case key.Matches(msg, keys.PageUp):
		vp.HalfPageUp()
	}
}

// renderMain renders the header, the active view and the footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	height := max(m.height-headerHeight-footerHeight, 1)
	switch m.currentView {
	case ViewLog:
		return lipgloss.NewStyle().Height(height).Render(m.logViewport.View())
	default:
		st := m.drv.State()
		return renderBars(m.theme, st.Board, m.width, height, st.Algorithm == sortlab.Merge)
	}
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.status != "" {
		return styles.Footer.Width(m.width).Render(styles.DangerText.Render(m.status))
	}
	h := m.help
	h.Styles.ShortKey = styles.AccentText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	return styles.Footer.Width(m.width).Render(h.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
