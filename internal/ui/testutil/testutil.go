// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes so rendered output can be compared
// without style interference.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Lines splits rendered output into unstyled lines.
func Lines(output string) []string {
	return strings.Split(StripANSI(output), "\n")
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first unstyled line containing substr, or an empty
// string.
func FindLine(output, substr string) string {
	for _, line := range Lines(output) {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// Width returns the visual width of a string, accounting for wide
// characters and ignoring ANSI codes.
func Width(s string) int {
	return ansi.StringWidth(s)
}
