package ui

import (
	"testing"

	"github.com/five82/xsortlab/internal/driver"
	"github.com/five82/xsortlab/internal/sortlab"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "Phase 1", 10, "Phase 1"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "Compare items 3 and 4", 10, "Compare i…"},
		{"one", "abc", 1, "…"},
		{"zero", "abc", 0, ""},
		{"runes", "ééééé", 3, "éé…"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestRunStatus(t *testing.T) {
	b := sortlab.NewBoard(sortlab.FromValues(2, 1))
	cases := []struct {
		name string
		st   driver.State
		want string
	}{
		{"empty", driver.State{}, "NO ARRAY"},
		{"ready", driver.State{Board: b}, "READY"},
		{"stepping", driver.State{Board: b, Steps: 1}, "STEPPING"},
		{"running", driver.State{Board: b, Steps: 1, Running: true}, "RUNNING"},
		{"paused", driver.State{Board: b, Steps: 3, Paused: true}, "PAUSED"},
		{"done", driver.State{Board: b, Steps: 3, Finished: true}, "DONE"},
	}
	for _, tc := range cases {
		if got := runStatus(tc.st); got != tc.want {
			t.Fatalf("%s: runStatus = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestBarHeight(t *testing.T) {
	cases := []struct {
		value, peak, rows, want int
	}{
		{16, 16, 10, 10},
		{1, 16, 10, 1},
		{8, 16, 10, 5},
		{9, 16, 10, 6},
		{sortlab.Empty, 16, 10, 0},
	}
	for _, tc := range cases {
		got := barHeight(sortlab.Item{Value: tc.value}, tc.peak, tc.rows)
		if got != tc.want {
			t.Fatalf("barHeight(%d, %d, %d) = %d, want %d", tc.value, tc.peak, tc.rows, got, tc.want)
		}
	}
}
