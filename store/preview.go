package store

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/datakit/settings"
)

const ellipsis = "..."

// PreviewTable renders rows as an aligned text table, truncated to the
// current display preferences: at most MaxRows rows (head and tail
// halves around an ellipsis row), at most MaxColumns columns, and each
// line clipped to LineWidth. A footer with the full dimensions is
// appended when anything was elided.
func PreviewTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	prefs := settings.Display()

	totalCols := 0
	for _, row := range rows {
		if len(row) > totalCols {
			totalCols = len(row)
		}
	}

	visibleCols := totalCols
	colsElided := false
	if prefs.MaxColumns > 0 && totalCols > prefs.MaxColumns {
		visibleCols = prefs.MaxColumns
		colsElided = true
	}

	visible := rows
	rowsElided := false
	if prefs.MaxRows > 0 && len(rows) > prefs.MaxRows {
		head := (prefs.MaxRows + 1) / 2
		tail := prefs.MaxRows / 2

		visible = make([][]string, 0, prefs.MaxRows+1)
		visible = append(visible, rows[:head]...)
		visible = append(visible, nil) // ellipsis row
		visible = append(visible, rows[len(rows)-tail:]...)
		rowsElided = true
	}

	widths := make([]int, visibleCols)
	for _, row := range visible {
		for j := 0; j < visibleCols && j < len(row); j++ {
			if n := utf8.RuneCountInString(row[j]); n > widths[j] {
				widths[j] = n
			}
		}
	}
	if rowsElided {
		for j := range widths {
			if widths[j] < len(ellipsis) {
				widths[j] = len(ellipsis)
			}
		}
	}

	var b strings.Builder
	for _, row := range visible {
		cells := make([]string, 0, visibleCols+1)
		for j := 0; j < visibleCols; j++ {
			cell := ellipsis
			if row != nil {
				cell = ""
				if j < len(row) {
					cell = row[j]
				}
			}
			cells = append(cells, pad(cell, widths[j]))
		}
		if colsElided {
			cells = append(cells, ellipsis)
		}
		b.WriteString(clip(strings.TrimRight(strings.Join(cells, "  "), " "), prefs.LineWidth))
		b.WriteByte('\n')
	}

	if rowsElided || colsElided {
		fmt.Fprintf(&b, "[%d rows x %d columns]\n", len(rows), totalCols)
	}
	return b.String()
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// clip truncates s to width runes, never splitting a multibyte
// character.
func clip(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}
