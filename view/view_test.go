package view

import (
	"reflect"
	"testing"

	"github.com/Santiago-vgs/Format-King/model"
	"github.com/Santiago-vgs/Format-King/reconcile"
)

func testSet() *model.TableSet {
	set := &model.TableSet{}
	set.Add(model.NewTable("x", []string{"a", "b"}, []model.Row{{"1", "2"}, {"3", "4"}}))
	set.Add(model.NewTable("y", []string{"a", "b"}, []model.Row{{"5", "6"}}))
	return set
}

func TestSelectSingleTable(t *testing.T) {
	doc := Select(model.Document{}, testSet(), 1)
	if !reflect.DeepEqual(doc.Headers, []string{"a", "b"}) {
		t.Errorf("headers = %v", doc.Headers)
	}
	if len(doc.Data) != 1 || doc.Data[0][0] != "5" {
		t.Errorf("data = %v", doc.Data)
	}
	if doc.SortColumn != model.NoSort {
		t.Error("selection must reset the sort")
	}
}

func TestSelectIdempotent(t *testing.T) {
	set := testSet()
	first := Select(model.Document{}, set, 0)
	second := Select(first, set, 0)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("selecting the same index twice differs: %v vs %v", first, second)
	}
}

func TestSelectAllTables(t *testing.T) {
	doc := Select(model.Document{}, testSet(), AllTables)
	if doc.Headers[0] != reconcile.SourceColumn {
		t.Errorf("first header = %q, want %q", doc.Headers[0], reconcile.SourceColumn)
	}
	if len(doc.Data) != 3 {
		t.Errorf("row count = %d, want 3", len(doc.Data))
	}
}

func TestSelectOutOfRangeNoOp(t *testing.T) {
	set := testSet()
	current := Select(model.Document{}, set, 0)
	after := Select(current, set, 99)
	if !reflect.DeepEqual(current, after) {
		t.Error("out-of-range selection must leave the state unchanged")
	}
}

func sortedColumn(doc model.Document, col int) []string {
	out := make([]string, len(doc.Filtered))
	for i, row := range doc.Filtered {
		out[i] = row[col]
	}
	return out
}

func TestSortNumericBeforeLexical(t *testing.T) {
	doc := model.NewDocument([]string{"v"}, []model.Row{{"10"}, {"9"}, {"abc"}})
	doc = Sort(doc, 0)
	want := []string{"9", "10", "abc"}
	if got := sortedColumn(doc, 0); !reflect.DeepEqual(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}
}

func TestSortNumericNotLexical(t *testing.T) {
	doc := model.NewDocument([]string{"v"}, []model.Row{{"10"}, {"2"}, {"9"}})
	doc = Sort(doc, 0)
	want := []string{"2", "9", "10"}
	if got := sortedColumn(doc, 0); !reflect.DeepEqual(got, want) {
		t.Errorf("sorted = %v, want numeric order %v", got, want)
	}
}

func TestSortToggleAndReset(t *testing.T) {
	doc := model.NewDocument([]string{"a", "b"}, []model.Row{{"2", "x"}, {"1", "y"}})

	doc = Sort(doc, 0)
	if doc.SortDirection != model.Ascending {
		t.Error("first sort must be ascending")
	}
	doc = Sort(doc, 0)
	if doc.SortDirection != model.Descending {
		t.Error("second sort on same column must toggle to descending")
	}
	doc = Sort(doc, 0)
	if doc.SortDirection != model.Ascending {
		t.Error("third sort on same column must toggle back to ascending")
	}
	doc = Sort(doc, 1)
	if doc.SortDirection != model.Ascending {
		t.Error("sorting a new column must reset to ascending")
	}
	if doc.SortColumn != 1 {
		t.Errorf("SortColumn = %d, want 1", doc.SortColumn)
	}
}

func TestSortLeavesDataUntouched(t *testing.T) {
	doc := model.NewDocument([]string{"v"}, []model.Row{{"2"}, {"1"}})
	doc = Sort(doc, 0)
	if doc.Data[0][0] != "2" {
		t.Error("sort must reorder Filtered only, never Data")
	}
	if doc.Filtered[0][0] != "1" {
		t.Error("Filtered must be sorted")
	}
}

func TestSortOutOfRangeNoOp(t *testing.T) {
	doc := model.NewDocument([]string{"v"}, []model.Row{{"2"}, {"1"}})
	after := Sort(doc, 5)
	if !reflect.DeepEqual(doc, after) {
		t.Error("out-of-range column sort must be a no-op")
	}
}

func TestFilterSubsequence(t *testing.T) {
	doc := model.NewDocument([]string{"name", "city"}, []model.Row{
		{"alice", "Berlin"},
		{"bob", "Lisbon"},
		{"carla", "berlin"},
	})

	doc = Filter(doc, "BERLIN")
	if len(doc.Filtered) != 2 {
		t.Fatalf("filtered = %d rows, want 2 (case-insensitive)", len(doc.Filtered))
	}
	if doc.Filtered[0][0] != "alice" || doc.Filtered[1][0] != "carla" {
		t.Errorf("filter must preserve relative order, got %v", doc.Filtered)
	}
	if len(doc.Data) != 3 {
		t.Error("filter must not change Data")
	}
}

func TestFilterEmptyTermRestoresAll(t *testing.T) {
	doc := model.NewDocument([]string{"v"}, []model.Row{{"a"}, {"b"}})
	doc = Filter(doc, "a")
	doc = Filter(doc, "")
	if len(doc.Filtered) != 2 {
		t.Errorf("filtered = %d rows, want all rows restored", len(doc.Filtered))
	}
}

func TestFilterKeepsActiveSort(t *testing.T) {
	doc := model.NewDocument([]string{"v"}, []model.Row{{"5"}, {"abc"}, {"2"}, {"10"}})
	doc = Sort(doc, 0)
	doc = Filter(doc, "") // re-derive with sort active
	want := []string{"2", "5", "10", "abc"}
	if got := sortedColumn(doc, 0); !reflect.DeepEqual(got, want) {
		t.Errorf("filtered+sorted = %v, want %v", got, want)
	}
	if doc.SortDirection != model.Ascending {
		t.Error("re-filtering must not toggle the sort direction")
	}
}

func TestNumericParsePinnedSemantics(t *testing.T) {
	numeric := []string{"3.0", "10", "-2.5", "+4", ".5", "1e3", " 7 "}
	for _, s := range numeric {
		if _, ok := parseNumeric(s); !ok {
			t.Errorf("parseNumeric(%q) = false, want numeric", s)
		}
	}
	nonNumeric := []string{"3abc", "abc", "", "Inf", "NaN", "0x10", "1_000", "1e", "--3"}
	for _, s := range nonNumeric {
		if _, ok := parseNumeric(s); ok {
			t.Errorf("parseNumeric(%q) = true, want non-numeric", s)
		}
	}
}
