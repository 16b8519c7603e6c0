package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/xsortlab/internal/sortlab"
)

const (
	barGlyph      = "█"
	baselineGlyph = "─"
	boxedGlyph    = "━"
	emptyGlyph    = "·"
)

// renderBars draws the board as vertical bars, tallest value at full height.
// The temp register gets its own column on the left. With scratch set, the
// merge buffer is drawn as a shorter second row of bars beneath the first.
func renderBars(th Theme, b *sortlab.Board, width, height int, scratch bool) string {
	if b == nil || b.Len() == 0 || width <= 0 || height <= 0 {
		return lipgloss.NewStyle().Width(max(width, 0)).Height(max(height, 0)).Render("")
	}

	n := b.Len()
	gap := barGap
	barWidth := (width - tempColumnWidth - gap*(n-1)) / n
	if barWidth < 1 {
		gap = 0
		barWidth = max((width-tempColumnWidth)/n, 1)
	}
	peak := max(n, maxValue(b))

	// One line for each baseline.
	liveRows := height - 1
	scratchRows := 0
	if scratch && height/scratchShare >= 1 {
		scratchRows = height / scratchShare
		liveRows = height - scratchRows - 2
	}
	liveRows = max(liveRows, 1)

	temp, hasTemp := b.Temp()
	live := b.Items()

	lines := make([]string, 0, height)
	lines = append(lines, barRows(th, live, tempCell(temp, hasTemp), peak, liveRows, barWidth, gap)...)
	lines = append(lines, baseline(th, live, barWidth, gap, "T"))

	if scratchRows > 0 {
		buf := make([]sortlab.Item, n)
		for i := range buf {
			buf[i] = b.At(n + 1 + i)
		}
		lines = append(lines, barRows(th, buf, nil, peak, scratchRows, barWidth, gap)...)
		lines = append(lines, baseline(th, buf, barWidth, gap, "S"))
	}

	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

// tempCell returns the temp register as a one-slot column, or an empty
// column when the register is vacant.
func tempCell(temp sortlab.Item, ok bool) []sortlab.Item {
	if !ok {
		return []sortlab.Item{{Value: sortlab.Empty}}
	}
	return []sortlab.Item{temp}
}

// barRows renders rows top to bottom. A bar of value v fills the bottom
// ceil(v*rows/peak) cells of its column.
func barRows(th Theme, items, temp []sortlab.Item, peak, rows, barWidth, gap int) []string {
	out := make([]string, 0, rows)
	blank := strings.Repeat(" ", barWidth)
	spacer := strings.Repeat(" ", gap)
	fill := strings.Repeat(barGlyph, barWidth)

	for row := rows; row >= 1; row-- {
		var b strings.Builder

		if len(temp) == 1 && barHeight(temp[0], peak, rows) >= row {
			tempStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.BarTemp))
			b.WriteString(tempStyle.Render(barGlyph + barGlyph))
			b.WriteString(strings.Repeat(" ", tempColumnWidth-2))
		} else {
			b.WriteString(strings.Repeat(" ", tempColumnWidth))
		}

		for i, it := range items {
			if i > 0 {
				b.WriteString(spacer)
			}
			if barHeight(it, peak, rows) < row {
				b.WriteString(blank)
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(th.BarColor(it)))
			b.WriteString(style.Render(fill))
		}
		out = append(out, b.String())
	}
	return out
}

// baseline draws the floor under a row of bars, marking boxed slots and
// vacated ones.
func baseline(th Theme, items []sortlab.Item, barWidth, gap int, label string) string {
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Faint))
	boxed := lipgloss.NewStyle().Foreground(lipgloss.Color(th.BarBoxed))

	var b strings.Builder
	b.WriteString(faint.Render(label))
	b.WriteString(strings.Repeat(" ", tempColumnWidth-1))
	for i, it := range items {
		if i > 0 {
			b.WriteString(faint.Render(strings.Repeat(baselineGlyph, gap)))
		}
		switch {
		case it.IsHighlighted:
			b.WriteString(boxed.Render(strings.Repeat(boxedGlyph, barWidth)))
		case it.IsEmpty():
			b.WriteString(faint.Render(emptyGlyph + strings.Repeat(baselineGlyph, barWidth-1)))
		default:
			b.WriteString(faint.Render(strings.Repeat(baselineGlyph, barWidth)))
		}
	}
	return b.String()
}

func barHeight(it sortlab.Item, peak, rows int) int {
	if it.IsEmpty() || it.Value <= 0 || peak <= 0 {
		return 0
	}
	return max((it.Value*rows+peak-1)/peak, 1)
}

func maxValue(b *sortlab.Board) int {
	held := b.Held()
	if len(held) == 0 {
		return 0
	}
	return held[len(held)-1]
}
