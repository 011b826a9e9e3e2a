package editor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/lineed/buffer"
	"github.com/iw2rmb/lineed/state"
)

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(8, 3)

	got := strings.Split(m.View(), "\n")
	for i := range got {
		got[i] = strings.TrimRight(got[i], " ")
	}

	want := []string{
		"1 one",
		"2 two",
		"3 three",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected view (-want +got):\n%s", diff)
	}
}

func TestModel_OnChangeSeesEveryEffectiveChange(t *testing.T) {
	var ops []state.Op
	m := New(Config{
		Text:     "ab",
		OnChange: func(ev state.ChangeEvent) { ops = append(ops, ev.Op) },
	})

	m, _ = m.Update(keyMsg("left")) // no-op at document start
	m, _ = m.Update(keyMsg("right"))
	m, _ = m.Update(keyMsg("enter"))

	want := []state.Op{state.OpMove, state.OpNewLine}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Fatalf("ops (-want +got):\n%s", diff)
	}
	if got := m.State().Lines(); !cmp.Equal(got, []string{"a", "b"}) {
		t.Fatalf("lines: got %q, want %q", got, []string{"a", "b"})
	}
}

func TestModel_ExternalMutationsShowOnNextUpdate(t *testing.T) {
	m := New(Config{Text: "one"})
	m = m.Blur()
	m = m.SetSize(10, 2)

	if err := m.State().InsertLine(1, "two"); err != nil {
		t.Fatalf("InsertLine: %v", err)
	}
	m, _ = m.Update(nil)

	got := strings.Split(m.View(), "\n")
	if g := strings.TrimRight(got[1], " "); g != "two" {
		t.Fatalf("second row: got %q, want %q", g, "two")
	}
}

func TestModel_FocusControlsCursor(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{Cursor: lipgloss.NewStyle().Transform(bracket)},
	})
	if got := m.renderContent(); got != "[a]b" {
		t.Fatalf("focused: got %q, want %q", got, "[a]b")
	}

	m = m.Blur()
	if m.Focused() {
		t.Fatalf("expected blurred model")
	}
	if got := m.renderContent(); got != "ab" {
		t.Fatalf("blurred: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(keyMsg("right"))
	if got := m.State().Caret(); got != (buffer.Pos{}) {
		t.Fatalf("blurred model moved caret to %v", got)
	}
}
