package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// ByteOffset returns the byte offset of grapheme column col in text.
// Columns past the end map to len(text).
func ByteOffset(text string, col int) int {
	if col <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx == col {
			start, _ := g.Positions()
			return start
		}
		idx++
	}
	return len(text)
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}
	return text[ByteOffset(text, start):ByteOffset(text, end)]
}

// Cut splits text at grapheme column col.
func Cut(text string, col int) (before, after string) {
	off := ByteOffset(text, col)
	return text[:off], text[off:]
}

// Remove deletes the clusters in [start, end) from text.
func Remove(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return text
	}
	a, b := ByteOffset(text, start), ByteOffset(text, end)
	var sb strings.Builder
	sb.Grow(len(text) - (b - a))
	sb.WriteString(text[:a])
	sb.WriteString(text[b:])
	return sb.String()
}

// Insert places s before grapheme column col.
func Insert(text string, col int, s string) string {
	before, after := Cut(text, col)
	return before + s + after
}
