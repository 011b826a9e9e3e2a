package buffer

import (
	"fmt"
	"strings"
)

// ReplaceLine overwrites row i with text.
func (b *Buffer) ReplaceLine(i int, text string) error {
	if err := b.checkRow(i); err != nil {
		return err
	}
	if err := checkLineText(text); err != nil {
		return err
	}
	b.lines[i] = text
	return nil
}

// InsertLine inserts text as a new row at i, shifting later rows down.
// i may equal LineCount to append.
func (b *Buffer) InsertLine(i int, text string) error {
	return b.InsertLines(i, text)
}

// InsertLines inserts texts as consecutive rows starting at i.
func (b *Buffer) InsertLines(i int, texts ...string) error {
	if i < 0 || i > len(b.lines) {
		return fmt.Errorf("insert at line %d (count %d): %w", i, len(b.lines), ErrIndexOutOfRange)
	}
	for _, t := range texts {
		if err := checkLineText(t); err != nil {
			return err
		}
	}
	if len(texts) == 0 {
		return nil
	}

	out := make([]string, 0, len(b.lines)+len(texts))
	out = append(out, b.lines[:i]...)
	out = append(out, texts...)
	out = append(out, b.lines[i:]...)
	b.lines = out
	return nil
}

// RemoveLines removes rows [start, end). An empty range is a no-op. Removing
// every row leaves a single empty line.
func (b *Buffer) RemoveLines(start, end int) error {
	if start < 0 || end > len(b.lines) || start > end {
		return fmt.Errorf("remove lines [%d,%d) (count %d): %w", start, end, len(b.lines), ErrIndexOutOfRange)
	}
	if start == end {
		return nil
	}
	b.lines = append(b.lines[:start], b.lines[end:]...)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	return nil
}

// RemoveLine removes row i.
func (b *Buffer) RemoveLine(i int) error {
	if err := b.checkRow(i); err != nil {
		return err
	}
	return b.RemoveLines(i, i+1)
}

func checkLineText(text string) error {
	if strings.ContainsAny(text, "\r\n") {
		return fmt.Errorf("%q: %w", text, ErrLineBreak)
	}
	return nil
}
