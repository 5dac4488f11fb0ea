package dataprocessing

import (
	"regexp"
	"strings"
)

// indicatorLabel matches a bare indicator header cell such as "I7". Cells with
// any extra characters, including footnote markers like "I7*", do not match.
var indicatorLabel = regexp.MustCompile(`^I(\d+)$`)

// ResolveIndicatorColumns scans the designated header row (the first row of
// the supplied header region) and maps each indicator identifier to the
// 0-based column position it was found at. Empty and non-matching cells are
// skipped; decorative header cells are expected and not an error. When the
// same identifier appears more than once the last occurrence wins.
func ResolveIndicatorColumns(region [][]string) map[string]int {
	columns := make(map[string]int)
	if len(region) == 0 {
		return columns
	}
	for idx, cell := range region[0] {
		value := strings.TrimSpace(cell)
		if value == "" {
			continue
		}
		if m := indicatorLabel.FindStringSubmatch(value); m != nil {
			columns["I"+m[1]] = idx
		}
	}
	return columns
}
