package yamlarray

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
		{"sequence of mappings", "- a: 1\n- a: 2", true},
		{"leading whitespace", "\n  - a: 1\n  - a: 2", true},
		{"sequence of scalars", "- 1\n- 2", false},
		{"bare mapping", "a: 1\nb: 2", false},
		{"plain text", "just a sentence", false},
		{"dash without list", "-not a list", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseKeyUnion(t *testing.T) {
	set := Parse("- a: 1\n- a: 2\n  b: 3")
	if set.Len() != 1 {
		t.Fatalf("expected 1 table, got %d", set.Len())
	}
	table := set.Table(0)
	if table.Name != TableName {
		t.Errorf("name = %q, want %q", table.Name, TableName)
	}
	if !reflect.DeepEqual(table.Headers, []string{"a", "b"}) {
		t.Errorf("headers = %v, want [a b]", table.Headers)
	}
	want := []model.Row{{"1", ""}, {"2", "3"}}
	if !reflect.DeepEqual(table.Data, want) {
		t.Errorf("data = %v, want %v", table.Data, want)
	}
}

func TestParseKeyOrderPreserved(t *testing.T) {
	set := Parse("- z: 1\n  a: 2\n- m: 3")
	table := set.Table(0)
	if table == nil {
		t.Fatal("no table produced")
	}
	if !reflect.DeepEqual(table.Headers, []string{"z", "a", "m"}) {
		t.Errorf("headers = %v, want document order [z a m]", table.Headers)
	}
}

func TestParseNullAndMissing(t *testing.T) {
	set := Parse("- a: ~\n  b: x\n- b: y")
	table := set.Table(0)
	if table == nil {
		t.Fatal("no table produced")
	}
	want := []model.Row{{"", "x"}, {"", "y"}}
	if !reflect.DeepEqual(table.Data, want) {
		t.Errorf("data = %v, want %v", table.Data, want)
	}
}

func TestParseScalarsKeepLiteralText(t *testing.T) {
	set := Parse("- n: 2.50\n  s: hello world\n  t: true")
	table := set.Table(0)
	if table == nil {
		t.Fatal("no table produced")
	}
	row := table.Data[0]
	if row[0] != "2.50" {
		t.Errorf("number cell = %q, want literal 2.50", row[0])
	}
	if row[1] != "hello world" {
		t.Errorf("string cell = %q", row[1])
	}
	if row[2] != "true" {
		t.Errorf("bool cell = %q", row[2])
	}
}
