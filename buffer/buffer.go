package buffer

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/lineed/internal/grapheme"
)

// DefaultLineSeparator joins lines in Text when Options.LineSeparator is empty.
const DefaultLineSeparator = "\n"

type Options struct {
	LineSeparator string // default: "\n"
}

// Buffer is an ordered, never-empty sequence of lines.
//
// Buffer holds no caret or selection; the owning editor state keeps those
// consistent with the content.
type Buffer struct {
	lines []string
	opt   Options
}

func New(text string, opt Options) *Buffer {
	if opt.LineSeparator == "" {
		opt.LineSeparator = DefaultLineSeparator
	}
	return &Buffer{
		lines: SplitLines(text),
		opt:   opt,
	}
}

// Text joins all lines with the configured separator.
func (b *Buffer) Text() string { return b.TextSep(b.opt.LineSeparator) }

// TextSep joins all lines with sep.
func (b *Buffer) TextSep(sep string) string {
	return strings.Join(b.lines, sep)
}

func (b *Buffer) LineSeparator() string { return b.opt.LineSeparator }

// SetText replaces the whole document. Empty content yields one empty line.
func (b *Buffer) SetText(content string) {
	b.lines = SplitLines(content)
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row i.
func (b *Buffer) Line(i int) (string, error) {
	if err := b.checkRow(i); err != nil {
		return "", err
	}
	return b.lines[i], nil
}

// Lines returns a copy of every line in document order.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// LineLen returns the grapheme length of row i, or 0 for invalid rows.
func (b *Buffer) LineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return grapheme.Count(b.lines[i])
}

// LastPos is the slot after the last character of the last line.
func (b *Buffer) LastPos() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, Col: b.LineLen(last)}
}

// ValidPos reports whether p addresses a slot in the current document.
func (b *Buffer) ValidPos(p Pos) bool {
	if p.Row < 0 || p.Row >= len(b.lines) || p.Col < 0 {
		return false
	}
	return p.Col <= b.LineLen(p.Row)
}

// CheckPos returns ErrIndexOutOfRange when p is not a valid slot.
func (b *Buffer) CheckPos(p Pos) error {
	if err := b.checkRow(p.Row); err != nil {
		return err
	}
	if n := b.LineLen(p.Row); p.Col < 0 || p.Col > n {
		return fmt.Errorf("column %d on line %d (length %d): %w", p.Col, p.Row, n, ErrIndexOutOfRange)
	}
	return nil
}

func (b *Buffer) ClampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.LineLen)
}

func (b *Buffer) checkRow(i int) error {
	if i < 0 || i >= len(b.lines) {
		return fmt.Errorf("line %d (count %d): %w", i, len(b.lines), ErrIndexOutOfRange)
	}
	return nil
}

// SplitLines breaks text on "\r\n", "\r" and "\n". The result always holds at
// least one element.
func SplitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			out = append(out, text[start:i])
			start = i + 1
		case '\r':
			out = append(out, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(out, text[start:])
}
