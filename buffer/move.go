package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirDocStart
	DirDocEnd
)

func (d MoveDir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirDocStart:
		return "doc-start"
	case DirDocEnd:
		return "doc-end"
	default:
		return "unknown"
	}
}

// Step returns the caret slot one unit from p in dir. ok is false when p is
// already at the document edge in that direction and nothing would move.
//
// Vertical steps keep the column, clamped to the target line's length.
// Horizontal steps wrap across line ends.
func (b *Buffer) Step(p Pos, dir MoveDir) (next Pos, ok bool) {
	p = b.ClampPos(p)
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if row == 0 && col == 0 {
			return p, false
		}
		if col > 0 {
			return Pos{Row: row, Col: col - 1}, true
		}
		return Pos{Row: row - 1, Col: b.LineLen(row - 1)}, true
	case DirRight:
		if row == lastRow && col == b.LineLen(lastRow) {
			return p, false
		}
		if col < b.LineLen(row) {
			return Pos{Row: row, Col: col + 1}, true
		}
		return Pos{Row: row + 1, Col: 0}, true
	case DirUp:
		if row == 0 {
			return p, false
		}
		nr := row - 1
		return Pos{Row: nr, Col: minInt(col, b.LineLen(nr))}, true
	case DirDown:
		if row == lastRow {
			return p, false
		}
		nr := row + 1
		return Pos{Row: nr, Col: minInt(col, b.LineLen(nr))}, true
	case DirDocStart:
		return Pos{}, true
	case DirDocEnd:
		return b.LastPos(), true
	default:
		return p, false
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
