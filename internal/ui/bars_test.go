package ui

import (
	"strings"
	"testing"

	"github.com/five82/xsortlab/internal/sortlab"
)

func TestRenderBarsFillsHeight(t *testing.T) {
	th := GetTheme("Nightfox")
	b := sortlab.NewBoard(sortlab.FromValues(3, 1, 2))

	cases := []struct {
		name    string
		height  int
		scratch bool
		labels  []string
	}{
		{"live only", 6, false, []string{"T"}},
		{"with scratch", 9, true, []string{"T", "S"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := renderBars(th, b, 40, tc.height, tc.scratch)
			lines := strings.Split(out, "\n")
			if len(lines) != tc.height {
				t.Fatalf("rendered %d lines, want %d", len(lines), tc.height)
			}
			for _, label := range tc.labels {
				found := false
				for _, l := range lines {
					if strings.HasPrefix(l, label) {
						found = true
					}
				}
				if !found {
					t.Fatalf("no baseline labelled %q:\n%s", label, out)
				}
			}
		})
	}
}

func TestRenderBarsTallestFillsTopRow(t *testing.T) {
	th := GetTheme("Nightfox")
	b := sortlab.NewBoard(sortlab.FromValues(1, 4, 2, 3))
	out := renderBars(th, b, 40, 5, false)
	lines := strings.Split(out, "\n")
	// Only the value-4 bar reaches the top row.
	top := strings.Count(lines[0], barGlyph)
	bottom := strings.Count(lines[3], barGlyph)
	if top == 0 || bottom != 4*top {
		t.Fatalf("top row has %d cells, bottom %d; want bottom = 4*top", top, bottom)
	}
}

func TestRenderBarsShowsTempRegister(t *testing.T) {
	th := GetTheme("Nightfox")
	b := sortlab.NewBoard(sortlab.FromValues(2, 1))
	if err := b.Apply(sortlab.StepEvent{Kind: sortlab.KindMove, Items: []int{1, sortlab.TempSlot}}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	out := renderBars(th, b, 20, 4, false)
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], barGlyph) {
		t.Fatalf("temp value 2 should fill the temp column top row:\n%s", out)
	}
	if !strings.Contains(lines[len(lines)-1], emptyGlyph) {
		t.Fatalf("vacated slot not marked on the baseline:\n%s", out)
	}
}

func TestRenderBarsWithoutBoard(t *testing.T) {
	th := GetTheme("Nightfox")
	if out := renderBars(th, nil, 40, 5, false); strings.Contains(out, barGlyph) {
		t.Fatalf("nil board rendered bars: %q", out)
	}
}
