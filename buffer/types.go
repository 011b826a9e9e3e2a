package buffer

import "fmt"

// Pos points into the logical document by (row, col).
// Row and Col are 0-based; Col counts grapheme clusters.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Less reports whether p precedes o in document order.
func (p Pos) Less(o Pos) bool { return ComparePos(p, o) < 0 }

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

// Selection is an anchored range. From is where the selection began and To
// is the live end; To may precede From. From == To is a bare caret.
type Selection struct {
	From Pos
	To   Pos
}

// Caret returns a collapsed selection at p.
func Caret(p Pos) Selection { return Selection{From: p, To: p} }

func (s Selection) String() string { return s.From.String() + "-" + s.To.String() }

// IsCaret reports whether the selection selects no text.
func (s Selection) IsCaret() bool { return s.From == s.To }

// Span is a column range [Start, End) on a single line.
type Span struct {
	Start int
	End   int
}

func (s Span) IsEmpty() bool { return s.Start == s.End }

// Len is the width of the span; reversed spans report a negative length.
func (s Span) Len() int { return s.End - s.Start }

func (s Span) Normalized() Span {
	if s.Start <= s.End {
		return s
	}
	return Span{Start: s.End, End: s.Start}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// - rowCount is the number of logical lines (rows).
// - lineLen(row) returns the grapheme length of the given row.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Row: row, Col: col}
}
