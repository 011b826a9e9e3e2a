package buffer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuffer_ReplaceLine(t *testing.T) {
	b := New("a\nb", Options{})
	if err := b.ReplaceLine(1, "beta"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "beta"}, b.Lines()); diff != "" {
		t.Fatalf("lines (-want +got):\n%s", diff)
	}

	if err := b.ReplaceLine(2, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("replace past end err=%v, want ErrIndexOutOfRange", err)
	}
	if err := b.ReplaceLine(0, "x\ny"); !errors.Is(err, ErrLineBreak) {
		t.Fatalf("replace with break err=%v, want ErrLineBreak", err)
	}
	if diff := cmp.Diff([]string{"a", "beta"}, b.Lines()); diff != "" {
		t.Fatalf("failed replace mutated lines (-want +got):\n%s", diff)
	}
}

func TestBuffer_InsertLine(t *testing.T) {
	b := New("a\nc", Options{})

	if err := b.InsertLine(1, "b"); err != nil {
		t.Fatalf("insert middle: %v", err)
	}
	if err := b.InsertLine(3, "d"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := b.InsertLine(0, "_"); err != nil {
		t.Fatalf("prepend: %v", err)
	}
	if diff := cmp.Diff([]string{"_", "a", "b", "c", "d"}, b.Lines()); diff != "" {
		t.Fatalf("lines (-want +got):\n%s", diff)
	}

	for _, i := range []int{-1, 6} {
		if err := b.InsertLine(i, "x"); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("InsertLine(%d) err=%v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestBuffer_InsertLines(t *testing.T) {
	b := New("first\nlast", Options{})
	if err := b.InsertLines(1, "x", "y", "z"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if diff := cmp.Diff([]string{"first", "x", "y", "z", "last"}, b.Lines()); diff != "" {
		t.Fatalf("lines (-want +got):\n%s", diff)
	}

	if err := b.InsertLines(0, "ok", "bad\r"); !errors.Is(err, ErrLineBreak) {
		t.Fatalf("err=%v, want ErrLineBreak", err)
	}
	if got := b.LineCount(); got != 5 {
		t.Fatalf("rejected insert changed line count to %d", got)
	}

	if err := b.InsertLines(2); err != nil {
		t.Fatalf("empty insert: %v", err)
	}
	if got := b.LineCount(); got != 5 {
		t.Fatalf("empty insert changed line count to %d", got)
	}
}

func TestBuffer_RemoveLines(t *testing.T) {
	b := New("0\n1\n2\n3\n4", Options{})

	if err := b.RemoveLines(1, 3); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if diff := cmp.Diff([]string{"0", "3", "4"}, b.Lines()); diff != "" {
		t.Fatalf("lines (-want +got):\n%s", diff)
	}

	if err := b.RemoveLines(2, 2); err != nil {
		t.Fatalf("empty range: %v", err)
	}
	if got := b.LineCount(); got != 3 {
		t.Fatalf("empty range changed line count to %d", got)
	}

	bad := [][2]int{{-1, 1}, {0, 4}, {2, 1}}
	for _, r := range bad {
		if err := b.RemoveLines(r[0], r[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("RemoveLines(%d,%d) err=%v, want ErrIndexOutOfRange", r[0], r[1], err)
		}
	}
}

func TestBuffer_RemoveLine_NeverEmpty(t *testing.T) {
	b := New("only", Options{})
	if err := b.RemoveLine(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if diff := cmp.Diff([]string{""}, b.Lines()); diff != "" {
		t.Fatalf("lines (-want +got):\n%s", diff)
	}

	if err := b.RemoveLine(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("RemoveLine(1) err=%v, want ErrIndexOutOfRange", err)
	}

	b.SetText("a\nb\nc")
	if err := b.RemoveLines(0, 3); err != nil {
		t.Fatalf("remove all: %v", err)
	}
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
}
