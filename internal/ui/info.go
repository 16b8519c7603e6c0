package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/xsortlab/internal/sortlab"
)

// infoMarkdown builds the info and instructions page for the selected
// algorithm.
func infoMarkdown(selected sortlab.Algorithm, size int) string {
	var b strings.Builder
	b.WriteString("# xsortlab\n\n")
	b.WriteString("Watch sorting algorithms work one comparison or copy at a time. ")
	fmt.Fprintf(&b, "Each bar is one of %d items; its height is its value.\n\n", size)

	b.WriteString("## Playing a sort\n\n")
	b.WriteString("- **r** or **space** runs the sort; **p** or **space** pauses it.\n")
	b.WriteString("- **s** or **→** takes a single step while paused.\n")
	b.WriteString("- **f** switches between fast and normal speed.\n")
	b.WriteString("- **n** makes a new random array. **a**, **tab** or **1**-**5** pick the algorithm and restart on the same array.\n")
	b.WriteString("- **l** shows the sort log with the totals of every finished run.\n\n")

	b.WriteString("## Reading the bars\n\n")
	b.WriteString("- Red bars are the items being compared or moved.\n")
	b.WriteString("- Green bars have reached their final position.\n")
	b.WriteString("- A heavy baseline marks the range the algorithm is working on.\n")
	b.WriteString("- The column marked **T** is the temporary register; merge sort also shows its scratch buffer **S**.\n\n")

	b.WriteString("## Algorithms\n\n")
	b.WriteString("| Algorithm | Best | Average | Worst | Space |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, a := range sortlab.Algorithms() {
		info := sortlab.Describe(a)
		name := info.Name
		if a == selected {
			name = "**" + name + "**"
		}
		c := info.Complexity
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", name, c.Best, c.Average, c.Worst, c.Space)
	}
	b.WriteString("\n")

	info := sortlab.Describe(selected)
	fmt.Fprintf(&b, "### %s\n\n%s\n", info.Name, info.Description)
	return b.String()
}

// renderMarkdown renders md for a terminal of the given width. Without color
// support the plain notty style is used.
func renderMarkdown(md string, width int) (string, error) {
	style := "dark"
	if lipgloss.ColorProfile() == termenv.Ascii {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func (m *Model) refreshInfo() {
	md := infoMarkdown(m.drv.Algorithm(), m.size)
	out, err := renderMarkdown(md, max(m.infoViewport.Width-2, 20))
	if err != nil {
		m.log.Warn().Err(err).Msg("info page")
		out = md
	}
	m.infoViewport.SetContent(out)
	m.infoViewport.GotoTop()
}

// renderInfo renders the info overlay.
func (m Model) renderInfo() string {
	styles := m.theme.Styles()
	modal := styles.Modal.
		Padding(0, 1).
		Width(m.infoViewport.Width).
		Render(m.infoViewport.View() + "\n" + styles.FaintText.Render("esc/i close  j/k scroll"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
