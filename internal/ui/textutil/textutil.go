// Package textutil provides unicode-aware helpers for laying out panel controls.
// Inputs are plain (unstyled) strings; style after measuring.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis marks truncated labels.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// Fit truncates or right-pads s to exactly width columns.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	return runewidth.FillRight(s, width)
}

// Span is a half-open column range [Start, End).
type Span struct {
	Start, End int
}

// Contains reports whether col falls inside the span.
func (s Span) Contains(col int) bool {
	return col >= s.Start && col < s.End
}

// Spans lays out items left to right separated by gap columns and returns each
// item's column range. Used to hit-test mouse clicks on inline controls.
func Spans(items []string, gap int) []Span {
	spans := make([]Span, len(items))
	col := 0
	for i, it := range items {
		w := Width(it)
		spans[i] = Span{Start: col, End: col + w}
		col += w + gap
	}
	return spans
}
