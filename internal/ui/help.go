package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	// Help content
	sections := []helpSection{
		{
			title: "Playback",
			items: []helpItem{
				{"r / p", "Run / pause"},
				{"space", "Toggle run and pause"},
				{"s / →", "Single step"},
				{"n", "New random array"},
				{"f", "Fast / normal speed"},
			},
		},
		{
			title: "Algorithm",
			items: []helpItem{
				{"a / tab", "Next algorithm"},
				{"1-5", "Bubble/Selection/Insertion/Merge/Quick"},
			},
		},
		{
			title: "Views",
			items: []helpItem{
				{"l", "Toggle sort log"},
				{"i", "Info and instructions"},
				{"j/k", "Scroll log or info"},
				{"esc", "Back to the bars"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme (" + m.theme.Name + ")"},
				{"h/?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	// Build help content
	var b strings.Builder

	// Title
	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		// Section title
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			// Key
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			// Description
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	// Build the modal
	content := b.String()

	modal := styles.Modal.Width(min(56, max(m.width-4, 30)))

	// Center the modal
	modalContent := modal.Render(content)

	// Create overlay
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
