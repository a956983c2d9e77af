package dashboard

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlay composites top centered over base, clearing the covered region.
// Both strings are newline-separated blocks; base is treated as width
// columns wide. Anything on a covered base line to the right of the modal
// is cleared with it, which matches a terminal Clear of the region.
func overlay(base, top string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")

	topWidth := 0
	for _, line := range topLines {
		if w := ansi.StringWidth(line); w > topWidth {
			topWidth = w
		}
	}

	row := (height - len(topLines)) / 2
	if row < 0 {
		row = 0
	}
	col := (width - topWidth) / 2
	if col < 0 {
		col = 0
	}

	for i, topLine := range topLines {
		j := row + i
		for j >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		left := ansi.Truncate(baseLines[j], col, "")
		if pad := col - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		baseLines[j] = left + topLine
	}
	return strings.Join(baseLines, "\n")
}
