package buffer

import "github.com/iw2rmb/lineed/internal/grapheme"

// IsSingleLine reports whether both endpoints are on the same row.
func (s Selection) IsSingleLine() bool {
	return s.From.Row == s.To.Row
}

// Contains reports whether row lies within [From.Row, To.Row] as given.
// A reversed multi-line selection contains no rows; normalize first.
func (s Selection) Contains(row int) bool {
	return row >= s.From.Row && row <= s.To.Row
}

// Normalized returns the selection with From <= To in document order.
func (s Selection) Normalized() Selection {
	if ComparePos(s.From, s.To) <= 0 {
		return s
	}
	return Selection{From: s.To, To: s.From}
}

// LineSelection returns the columns of s that fall on row, given that row's
// current text. Rows outside [From.Row, To.Row] yield an empty Span.
//
// The endpoints are used in the order given. On a single-line selection with
// From.Col > To.Col the returned Span is reversed; callers that delete text
// must normalize the selection first.
func (s Selection) LineSelection(row int, text string) Span {
	switch {
	case row < s.From.Row || row > s.To.Row:
		return Span{}
	case row == s.From.Row && row == s.To.Row:
		return Span{Start: s.From.Col, End: s.To.Col}
	case row == s.From.Row:
		return Span{Start: s.From.Col, End: grapheme.Count(text)}
	case row == s.To.Row:
		return Span{Start: 0, End: s.To.Col}
	default:
		return Span{Start: 0, End: grapheme.Count(text)}
	}
}
