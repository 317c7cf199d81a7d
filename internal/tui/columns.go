package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlignColumns renders rows of cells with every column padded to its widest
// entry. Widths are measured on the raw cell text, so cells may be styled
// afterwards by render without breaking alignment. render may be nil.
// indent is prepended to every line and gap spaces separate columns.
func AlignColumns(rows [][]string, indent string, gap int, render func(row, col int, cell string) string) string {
	if len(rows) == 0 {
		return ""
	}

	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			// lipgloss.Width handles wide runes and ANSI escape codes
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	gapStr := strings.Repeat(" ", gap)
	var sb strings.Builder
	for r, row := range rows {
		sb.WriteString(indent)
		for c, cell := range row {
			styled := cell
			if render != nil {
				styled = render(r, c, cell)
			}
			sb.WriteString(styled)
			if c == len(row)-1 {
				break
			}
			sb.WriteString(strings.Repeat(" ", widths[c]-lipgloss.Width(cell)))
			sb.WriteString(gapStr)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
