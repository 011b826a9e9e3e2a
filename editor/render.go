package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/lineed/buffer"
	"github.com/iw2rmb/lineed/state"
)

// lineCache holds rendered rows keyed by row index. It belongs to the
// rendering side only; the state never sees it.
type lineCache struct {
	rows   map[int]string
	digits int
}

func newLineCache() *lineCache {
	return &lineCache{rows: make(map[int]string)}
}

func (c *lineCache) reset() {
	c.rows = make(map[int]string)
}

// invalidate drops the rows a change may have altered: rows with new text,
// every row after a line insertion or removal, and the rows covered by the
// selection before and after the change.
func (c *lineCache) invalidate(ev state.ChangeEvent) {
	if ev.TextChanged {
		if ev.Shifted {
			for row := range c.rows {
				if row >= ev.FirstRow {
					delete(c.rows, row)
				}
			}
		} else {
			for row := ev.FirstRow; row <= ev.LastRow; row++ {
				delete(c.rows, row)
			}
		}
	}
	c.dropSelection(ev.SelectionBefore)
	c.dropSelection(ev.SelectionAfter)
}

func (c *lineCache) dropSelection(sel buffer.Selection) {
	n := sel.Normalized()
	for row := n.From.Row; row <= n.To.Row; row++ {
		delete(c.rows, row)
	}
}

func (m *Model) renderContent() string {
	count := m.st.LineCount()

	digits := 0
	if m.cfg.ShowLineNums {
		digits = len(strconv.Itoa(count))
	}
	if digits != m.cache.digits {
		m.cache.reset()
		m.cache.digits = digits
	}

	sel := m.st.NormalizedSelection()
	caret := m.st.Caret()

	out := make([]string, 0, count)
	for row := 0; row < count; row++ {
		if s, ok := m.cache.rows[row]; ok {
			out = append(out, s)
			continue
		}
		text, err := m.st.Line(row)
		if err != nil {
			break
		}
		s := m.renderRow(row, text, sel, caret, digits)
		m.cache.rows[row] = s
		out = append(out, s)
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderRow(row int, text string, sel buffer.Selection, caret buffer.Pos, digits int) string {
	st := m.cfg.Style
	var sb strings.Builder

	if digits > 0 {
		numStyle := st.LineNum
		if m.focused && row == caret.Row {
			numStyle = st.LineNumActive
		}
		sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
		sb.WriteString(st.Gutter.Render(" "))
	}

	span := sel.LineSelection(row, text)
	hasCaret := m.focused && row == caret.Row
	cells := layoutLine(text, m.cfg.TabWidth)

	for col, c := range cells {
		glyph := c.Text
		if glyph == "\t" {
			glyph = strings.Repeat(" ", c.Width)
		}
		switch {
		case hasCaret && col == caret.Col:
			sb.WriteString(st.Cursor.Render(glyph))
		case col >= span.Start && col < span.End:
			sb.WriteString(st.Selection.Render(glyph))
		default:
			sb.WriteString(st.Text.Render(glyph))
		}
	}

	// Caret at EOL renders as a one-cell placeholder.
	if hasCaret && caret.Col >= len(cells) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// gutterWidth is the number of cells taken by line numbers and their
// separator.
func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return len(strconv.Itoa(m.st.LineCount())) + 1
}
