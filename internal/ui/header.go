package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/xsortlab/internal/driver"
	"github.com/five82/xsortlab/internal/results"
)

// renderHeader renders the status bar and the two narration lines.
func (m Model) renderHeader() string {
	st := m.drv.State()
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	bar := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(m.buildStatusContent(st, styles, bg))

	plain := m.theme.Styles()
	headline := plain.Text.Width(m.width).Render(" " + truncate(st.Headline, m.width-1))
	narration := plain.InfoText.Width(m.width).Render(" " + truncate(st.Narration, m.width-1))
	return lipgloss.JoinVertical(lipgloss.Left, bar, headline, narration)
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(st driver.State, styles Styles, bg BgStyle) string {
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("xsortlab", styles.Logo),
		bg.Render(st.Algorithm.Name(), styles.AccentText.Bold(true)),
		renderRunStatus(st, styles, bg),
	}

	if !compact {
		parts = append(parts, bg.Render(ternary(st.Fast, "Fast", "Normal"), styles.MutedText))
	}

	parts = append(parts,
		bg.Render("Comparisons:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", st.Comparisons), styles.Text),
		bg.Render("Copies:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", st.Copies), styles.Text),
	)

	if !compact && st.Elapsed > 0 {
		parts = append(parts,
			bg.Render("Time:", styles.MutedText)+bg.Space()+
				bg.Render(results.FormatElapsed(st.Elapsed), styles.Text),
		)
	}

	if n := m.results.Len(); n > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("Log: %d", n), styles.FaintText))
	}

	return styles.Header.Render(bg.Join(parts, sep))
}

// runStatus returns the label for where the current run stands.
func runStatus(st driver.State) string {
	switch {
	case !st.Loaded():
		return "NO ARRAY"
	case st.Finished:
		return "DONE"
	case st.Running:
		return "RUNNING"
	case st.Paused:
		return "PAUSED"
	case st.Started():
		return "STEPPING"
	default:
		return "READY"
	}
}

func renderRunStatus(st driver.State, styles Styles, bg BgStyle) string {
	label := "● " + runStatus(st)
	switch {
	case st.Finished:
		return bg.Render(label, styles.SuccessText)
	case st.Running:
		return bg.Render(label, styles.WarningText.Bold(true))
	case st.Paused:
		return bg.Render(label, styles.InfoText)
	default:
		return bg.Render(label, styles.MutedText)
	}
}
