// Package testutil provides helpers for testing rendered UI output.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes styling so rendered output can be compared as text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// FindLine returns the first line of output containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// ContainsLine reports whether some line of output contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}
