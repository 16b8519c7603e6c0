package ui

// Fixed chrome around the main content area.
const (
	// headerHeight is the status line plus the two narration lines.
	headerHeight = 3

	// footerHeight is the key hint bar.
	footerHeight = 1
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops the
	// speed and elapsed fields.
	LayoutCompactWidth = 80

	// InfoMaxWidth caps the info overlay so long lines stay readable.
	InfoMaxWidth = 84
)

// Bar geometry.
const (
	// barGap is the number of blank columns between adjacent bars when the
	// terminal is wide enough for one.
	barGap = 1

	// tempColumnWidth is the space reserved left of the bars for the temp
	// register, separator included.
	tempColumnWidth = 4

	// scratchShare is the fraction of the bar area given to the merge
	// scratch row, as a divisor.
	scratchShare = 3
)

func infoWidth(width int) int {
	return max(min(width-4, InfoMaxWidth), 20)
}
