package editor

import (
	"github.com/iw2rmb/lineed/buffer"
)

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells relative to the visible content region.
// Rows past the end map to the last line; gutter clicks map to column 0.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	count := m.st.LineCount()
	row := clamp(m.viewport.YOffset+y, 0, count-1)

	x -= m.gutterWidth()
	if x < 0 {
		return buffer.Pos{Row: row}
	}

	line, err := m.st.Line(row)
	if err != nil {
		return buffer.Pos{Row: row}
	}
	return buffer.Pos{Row: row, Col: colForCell(layoutLine(line, m.cfg.TabWidth), x)}
}
