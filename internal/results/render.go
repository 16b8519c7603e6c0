package results

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// EmptyText is shown in place of a table when no results exist.
const EmptyText = "No results yet. Run a sort to see stats."

// Format selects an export encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat resolves a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, json or yaml)", s)
	}
}

type record struct {
	RunID         string    `json:"run_id" yaml:"run_id"`
	Algorithm     string    `json:"algorithm" yaml:"algorithm"`
	RunCount      int       `json:"run_count" yaml:"run_count"`
	ArraySize     int       `json:"array_size" yaml:"array_size"`
	Comparisons   int       `json:"comparisons" yaml:"comparisons"`
	Copies        int       `json:"copies" yaml:"copies"`
	ElapsedMillis int64     `json:"elapsed_ms" yaml:"elapsed_ms"`
	FinishedAt    time.Time `json:"finished_at,omitzero" yaml:"finished_at,omitempty"`
}

func toRecords(rs []TimedSortResult) []record {
	out := make([]record, len(rs))
	for i, r := range rs {
		out[i] = record{
			RunID:         r.RunID,
			Algorithm:     string(r.Algorithm),
			RunCount:      r.RunCount,
			ArraySize:     r.ArraySize,
			Comparisons:   r.Comparisons,
			Copies:        r.Copies,
			ElapsedMillis: r.Elapsed.Milliseconds(),
			FinishedAt:    r.FinishedAt,
		}
	}
	return out
}

// Write encodes rs to w in format f.
func Write(w io.Writer, f Format, rs []TimedSortResult) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toRecords(rs)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toRecords(rs)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	case FormatTable, "":
		_, err := io.WriteString(w, Table(rs, TableStyles{})+"\n")
		return err
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// TableStyles colors the rendered table. Zero styles render plain text.
type TableStyles struct {
	Border lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
}

var tableHeaders = []string{"Algorithm", "Runs", "Size", "Comparisons", "Copies", "Time"}

// Table renders rs as a bordered table, newest last. It returns EmptyText
// when rs is empty.
func Table(rs []TimedSortResult, styles TableStyles) string {
	if len(rs) == 0 {
		return EmptyText
	}
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{
			r.Algorithm.Name(),
			strconv.Itoa(r.RunCount),
			strconv.Itoa(r.ArraySize),
			strconv.Itoa(r.Comparisons),
			strconv.Itoa(r.Copies),
			FormatElapsed(r.Elapsed),
		})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := styles.Cell
			if row == table.HeaderRow {
				style = styles.Header.Bold(true)
			}
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			return style.Padding(0, 1)
		})
	return t.String()
}

// FormatElapsed renders d in milliseconds below ten seconds and in seconds
// above.
func FormatElapsed(d time.Duration) string {
	if d < 10*time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
