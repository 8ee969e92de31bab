package markdown

import (
	"reflect"
	"testing"

	"github.com/Santiago-vgs/Format-King/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"basic table", "| a | b |\n|---|---|\n| 1 | 2 |", true},
		{"aligned separators", "| a | b |\n|:---|---:|\n| 1 | 2 |", true},
		{"no leading pipes", "a | b\n--- | ---\n1 | 2", true},
		{"separator alone", "|---|---|", false},
		{"pipes without separator", "| a | b |\n| 1 | 2 |", false},
		{"plain text", "nothing to see here", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseBasicTable(t *testing.T) {
	set := Parse("| a | b |\n|---|---|\n| 1 | 2 |")
	if set.Len() != 1 {
		t.Fatalf("expected 1 table, got %d", set.Len())
	}
	table := set.Table(0)
	if table.Name != "Table 1" {
		t.Errorf("name = %q, want Table 1", table.Name)
	}
	if !reflect.DeepEqual(table.Headers, []string{"a", "b"}) {
		t.Errorf("headers = %v", table.Headers)
	}
	if !reflect.DeepEqual(table.Data, []model.Row{{"1", "2"}}) {
		t.Errorf("data = %v", table.Data)
	}
}

func TestParseMultipleBlocks(t *testing.T) {
	input := "| a | b |\n|---|---|\n| 1 | 2 |\n\n| c |\n|---|\n| 3 |\n| 4 |"
	set := Parse(input)
	if set.Len() != 2 {
		t.Fatalf("expected 2 tables, got %d", set.Len())
	}
	if set.Table(0).Name != "Table 1" || set.Table(1).Name != "Table 2" {
		t.Errorf("names = %q, %q", set.Table(0).Name, set.Table(1).Name)
	}
	if set.Table(1).RowCount() != 2 {
		t.Errorf("table 2 rows = %d, want 2", set.Table(1).RowCount())
	}
}

func TestParseSeparatorFirstLineSkipped(t *testing.T) {
	// A separator with no header line above it yields nothing.
	set := Parse("|---|---|\n| 1 | 2 |")
	if set.Len() != 0 {
		t.Errorf("expected empty set, got %d tables", set.Len())
	}
}

func TestParseNoDataRowsSkipped(t *testing.T) {
	set := Parse("| a | b |\n|---|---|")
	if set.Len() != 0 {
		t.Errorf("expected empty set, got %d tables", set.Len())
	}
}

func TestParseSkipsNonPipeLines(t *testing.T) {
	input := "| a | b |\n|---|---|\n| 1 | 2 |\nsome trailing prose without pipes"
	set := Parse(input)
	if set.Len() != 1 {
		t.Fatalf("expected 1 table, got %d", set.Len())
	}
	if set.Table(0).RowCount() != 1 {
		t.Errorf("rows = %d, want 1", set.Table(0).RowCount())
	}
}

func TestParseNumbersTablesAcrossBlocks(t *testing.T) {
	// The first block yields nothing; the second block is still Table 1.
	input := "just prose\n\n| a |\n|---|\n| 1 |"
	set := Parse(input)
	if set.Len() != 1 {
		t.Fatalf("expected 1 table, got %d", set.Len())
	}
	if set.Table(0).Name != "Table 1" {
		t.Errorf("name = %q, want Table 1", set.Table(0).Name)
	}
}
