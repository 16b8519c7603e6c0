package ui

import "github.com/five82/xsortlab/internal/results"

// syncLog re-renders the sort log table when the result count changes or
// a resize or theme switch invalidated it.
func (m *Model) syncLog() {
	n := m.results.Len()
	if n == m.logLen {
		return
	}
	m.logLen = n
	m.logViewport.SetContent(m.renderSortLog())
	m.logViewport.GotoBottom()
}

// renderSortLog renders every recorded result as a table, or the empty
// state text.
func (m Model) renderSortLog() string {
	rows := m.results.Snapshot()
	if len(rows) == 0 {
		return m.theme.Styles().MutedText.Padding(1, 2).Render(results.EmptyText)
	}
	return results.Table(rows, m.theme.TableStyles())
}
