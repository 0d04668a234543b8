// Package render provides width-aware text helpers for the screen.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters and invalid UTF-8 so that file names
// and tags cannot move the cursor or break the line layout.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\t' || r == '\u00a0':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// Truncate shortens plain text to maxWidth cells with a trailing ellipsis.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// TruncateStyled shortens a line that may carry ANSI styling.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Columns places plain-text cells at fixed column offsets, like a
// terminal addstr at (row, col). A cell that would run into the next
// offset is truncated.
func Columns(cells []string, offsets []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i >= len(offsets) {
			break
		}
		if w := runewidth.StringWidth(b.String()); w < offsets[i] {
			b.WriteString(strings.Repeat(" ", offsets[i]-w))
		}
		if i+1 < len(offsets) {
			cell = Truncate(cell, offsets[i+1]-offsets[i]-1)
		}
		b.WriteString(cell)
	}
	return b.String()
}
