package results

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/five82/xsortlab/internal/sortlab"
)

func sample() TimedSortResult {
	return TimedSortResult{
		RunID:       "run-1",
		Algorithm:   sortlab.Quick,
		RunCount:    4,
		ArraySize:   16,
		Comparisons: 200,
		Copies:      90,
		Elapsed:     1500 * time.Millisecond,
	}
}

func TestLog_AppendAndSnapshotClone(t *testing.T) {
	var l Log
	if _, ok := l.Last(); ok {
		t.Fatal("Last() on empty log returned ok")
	}

	l.Append(sample())
	second := sample()
	second.RunID = "run-2"
	l.Append(second)

	snap := l.Snapshot()
	if len(snap) != 2 || snap[0].RunID != "run-1" || snap[1].RunID != "run-2" {
		t.Fatalf("snapshot = %#v, want run-1 then run-2", snap)
	}

	snap[0].RunID = "mutated"
	if got := l.Snapshot()[0].RunID; got != "run-1" {
		t.Fatalf("Snapshot should clone entries; got %q want run-1", got)
	}
	if last, _ := l.Last(); last.RunID != "run-2" {
		t.Fatalf("Last() = %q, want run-2", last.RunID)
	}
}

func TestLog_ConcurrentAppend(t *testing.T) {
	var l Log
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				l.Append(sample())
				_ = l.Snapshot()
			}
		}()
	}
	wg.Wait()
	if l.Len() != 400 {
		t.Fatalf("Len() = %d, want 400", l.Len())
	}
}

func TestTimedSortResult_Averages(t *testing.T) {
	r := sample()
	if got := r.AverageComparisons(); got != 50 {
		t.Fatalf("AverageComparisons = %v, want 50", got)
	}
	if got := r.AverageCopies(); got != 22.5 {
		t.Fatalf("AverageCopies = %v, want 22.5", got)
	}
	if got := (TimedSortResult{}).AverageCopies(); got != 0 {
		t.Fatalf("zero RunCount average = %v, want 0", got)
	}
}

func TestTable_EmptyAndRows(t *testing.T) {
	if got := Table(nil, TableStyles{}); got != EmptyText {
		t.Fatalf("Table(nil) = %q, want %q", got, EmptyText)
	}
	out := Table([]TimedSortResult{sample()}, TableStyles{})
	for _, want := range []string{"Algorithm", "Quick Sort", "200", "90", "1500ms"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestWrite_JSONAndYAML(t *testing.T) {
	rs := []TimedSortResult{sample()}

	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, rs); err != nil {
		t.Fatalf("Write json: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json output did not parse: %v\n%s", err, buf.String())
	}
	if len(decoded) != 1 || decoded[0]["algorithm"] != "quick" || decoded[0]["elapsed_ms"] != float64(1500) {
		t.Fatalf("json = %v", decoded)
	}
	if _, ok := decoded[0]["finished_at"]; ok {
		t.Fatalf("zero finished_at should be omitted: %v", decoded[0])
	}

	buf.Reset()
	if err := Write(&buf, FormatYAML, rs); err != nil {
		t.Fatalf("Write yaml: %v", err)
	}
	var ydecoded []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &ydecoded); err != nil {
		t.Fatalf("yaml output did not parse: %v\n%s", err, buf.String())
	}
	if len(ydecoded) != 1 || ydecoded[0]["comparisons"] != 200 || ydecoded[0]["run_id"] != "run-1" {
		t.Fatalf("yaml = %v", ydecoded)
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"csv", "", true},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseFormat(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := map[time.Duration]string{
		0:                      "0ms",
		250 * time.Millisecond: "250ms",
		12 * time.Second:       "12.0s",
	}
	for d, want := range cases {
		if got := FormatElapsed(d); got != want {
			t.Fatalf("FormatElapsed(%v) = %q, want %q", d, got, want)
		}
	}
}
