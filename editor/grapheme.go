package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	graphemeutil "github.com/iw2rmb/lineed/internal/grapheme"
)

// cell is one grapheme cluster of a line laid out in terminal cells.
type cell struct {
	Text      string
	StartCell int
	Width     int
}

// layoutLine lays text out left to right; element i is grapheme column i.
func layoutLine(text string, tabWidth int) []cell {
	clusters := graphemeutil.Split(text)
	if len(clusters) == 0 {
		return nil
	}
	out := make([]cell, 0, len(clusters))
	visualCol := 0
	for _, c := range clusters {
		w := graphemeCellWidth(c, visualCol, tabWidth)
		out = append(out, cell{Text: c, StartCell: visualCol, Width: w})
		visualCol += w
	}
	return out
}

// colForCell returns the grapheme column under visual cell x. Cells past
// the end of the line map to the line length.
func colForCell(cells []cell, x int) int {
	if x < 0 {
		return 0
	}
	for i, c := range cells {
		if x < c.StartCell+c.Width {
			return i
		}
	}
	return len(cells)
}

func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - visualCol%tabWidth
}
