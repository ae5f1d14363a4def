package state

import (
	"reflect"
	"testing"

	"github.com/idvorkin/rmux-helper/internal/menu"
)

func TestTokenize(t *testing.T) {
	cases := map[string][]string{
		"se4 blog":  {"se", "4", "blog"},
		"1;4":       {"1;4"},
		"cl2set":    {"cl", "2", "set"},
		"4se":       {"4", "se"},
		"":          nil,
		"   ":       nil,
		"a-b  c;d":  {"a-b", "c;d"},
		"main 1;4x": {"main", "1;4", "x"},
	}
	for in, want := range cases {
		if got := Tokenize(in); !reflect.DeepEqual(got, want) {
			t.Errorf("Tokenize(%q) = %#v, want %#v", in, got, want)
		}
	}
}

func TestMatches(t *testing.T) {
	display := "1;4 cl settings rmux"
	cases := []struct {
		query string
		want  bool
	}{
		{"4", true},
		{"15", false},
		{"14", true},
		{"1;4", true},
		{"cl set", true},
		{"cl2set", false},
		{"", true},
		{"5", false},
	}
	for _, tc := range cases {
		if got := Matches(display, Tokenize(tc.query)); got != tc.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", display, tc.query, got, tc.want)
		}
	}
	if !Matches("⊡ 1;1 Editor VIM", []string{"vim"}) {
		t.Fatalf("matching should ignore display case")
	}
}

func TestSetFilterKeepsSeparatorsAndResetsCursor(t *testing.T) {
	l := NewLevel(sampleEntries())
	l.SetFilter("work", 4)
	got := targets(l)
	want := []string{menu.SeparatorTarget, "work:*", "work:2.1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected visible rows %v", got)
	}
	if e, _ := l.Selected(); e.Target != "work:2.1" {
		t.Fatalf("expected cursor on first visible pane, got %q", e.Target)
	}

	l.SetFilter("main", 4)
	if e, _ := l.Selected(); e.Target != "main:1.1" {
		t.Fatalf("expected cursor back on current pane, got %q", e.Target)
	}
}

func TestClearingFilterRestoresEntries(t *testing.T) {
	l := NewLevel(sampleEntries())
	full := targets(l)
	l.InsertFilterText("1.2")
	if l.Len() >= len(full) {
		t.Fatalf("expected filter to narrow the list, got %d rows", l.Len())
	}
	if !l.ClearFilter() {
		t.Fatalf("expected clear to report a change")
	}
	if !reflect.DeepEqual(targets(l), full) {
		t.Fatalf("expected full list restored, got %v", targets(l))
	}
	if l.ClearFilter() {
		t.Fatalf("clearing an empty filter should report no change")
	}
	l.SetFilter("", 0)
	if !reflect.DeepEqual(targets(l), full) {
		t.Fatalf("empty filter should show every row in order")
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	l := NewLevel(sampleEntries())
	l.SetFilter("WORK", 4)
	if l.VisiblePanes() != 1 {
		t.Fatalf("expected one visible pane, got %d", l.VisiblePanes())
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	l := NewLevel(sampleEntries())
	if !l.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if l.Filter != "ab" || l.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", l.Filter, l.FilterCursor)
	}
	l.FilterCursor = 1
	l.InsertFilterText("z")
	if l.Filter != "azb" || l.FilterCursor != 2 {
		t.Fatalf("unexpected filter after middle insert %q/%d", l.Filter, l.FilterCursor)
	}
	if !l.DeleteFilterRuneBackward() || l.Filter != "ab" || l.FilterCursor != 1 {
		t.Fatalf("unexpected filter after backspace %q/%d", l.Filter, l.FilterCursor)
	}
	if l.InsertFilterText("") {
		t.Fatalf("empty insert should be a no-op")
	}
}

func TestDeleteFilterWordBackward(t *testing.T) {
	l := NewLevel(sampleEntries())
	l.SetFilter("main set  ", 10)
	if !l.DeleteFilterWordBackward() {
		t.Fatal("expected word delete")
	}
	if l.Filter != "main " || l.FilterCursor != 5 {
		t.Fatalf("unexpected filter %q/%d", l.Filter, l.FilterCursor)
	}
	l.FilterCursor = 0
	if l.DeleteFilterWordBackward() {
		t.Fatalf("nothing to delete before the start")
	}
}

func TestFilterCursorMovement(t *testing.T) {
	l := NewLevel(sampleEntries())
	l.SetFilter("ab", 2)
	if l.MoveFilterCursorRuneForward() {
		t.Fatalf("cursor already at end")
	}
	if !l.MoveFilterCursorRuneBackward() || l.FilterCursor != 1 {
		t.Fatalf("expected cursor at 1, got %d", l.FilterCursor)
	}
	l.SetFilter("ab", 99)
	if l.FilterCursor != 2 {
		t.Fatalf("expected cursor clamped to 2, got %d", l.FilterCursor)
	}
}

func targets(l *Level) []string {
	out := make([]string, 0, l.Len())
	for _, e := range l.VisibleEntries() {
		out = append(out, e.Target)
	}
	return out
}
