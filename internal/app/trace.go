package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/five82/xsortlab/internal/sortlab"
)

// TraceOptions select the run to trace. Values, when set, is sorted instead
// of a generated array.
type TraceOptions struct {
	Algorithm sortlab.Algorithm
	Size      int
	Values    []int
	Generator sortlab.Generator
}

// Trace pulls every step of one run and writes it to w, one event per line,
// followed by the live values after each move or swap.
func Trace(ctx context.Context, w io.Writer, opts TraceOptions) error {
	alg, err := sortlab.ParseAlgorithm(string(opts.Algorithm))
	if err != nil {
		return err
	}

	var items []sortlab.Item
	switch {
	case len(opts.Values) > 0:
		items = sortlab.FromValues(opts.Values...)
	default:
		gen := opts.Generator
		if gen == nil {
			gen = sortlab.NewRandomGenerator()
		}
		items = gen.Generate(opts.Size)
	}

	m, err := sortlab.New(alg, items)
	if err != nil {
		return fmt.Errorf("trace %s: %w", alg, err)
	}

	if _, err := fmt.Fprintf(w, "%s on %v\n%s\n", alg.Name(), sortlab.ValuesOf(items), m.InitialNarration()); err != nil {
		return err
	}

	var steps, comparisons, copies int
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, ok := m.NextStep()
		if !ok {
			break
		}
		steps++
		switch ev.Kind {
		case sortlab.KindCompare:
			comparisons++
		case sortlab.KindMove, sortlab.KindSwap:
			copies++
		}

		line := fmt.Sprintf("%5d  %s", steps, ev)
		if ev.Mutates() {
			line += "  " + formatValues(m.Board())
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "%d steps, %d comparisons, %d copies\n", steps, comparisons, copies)
	return err
}

// formatValues renders the live slots with vacated ones as "_" and the temp
// register appended when it is occupied.
func formatValues(b *sortlab.Board) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range b.Values() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if v == sortlab.Empty {
			sb.WriteByte('_')
			continue
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	if temp, ok := b.Temp(); ok {
		fmt.Fprintf(&sb, " temp=%d", temp.Value)
	}
	return sb.String()
}
