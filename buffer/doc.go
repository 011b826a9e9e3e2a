// Package buffer implements the pure, line-oriented document model for lineed.
//
// Coordinates are 0-based (Row, Col) with Col counted in grapheme clusters.
// A Col equal to the line length addresses the slot after the last cluster.
// The buffer never holds zero lines and no line contains a line break.
package buffer
