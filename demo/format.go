package demo

import (
	"strings"
	"time"
	"unicode/utf8"
)

func formatTimeOrNil(v *time.Time) string {
	if v == nil || v.IsZero() {
		return ""
	}
	return v.Format(time.RFC3339)
}

// oneLine joins the lines of s, so that a failure is always written as a single line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func newTable(headers []string) table {
	separator := make([]string, len(headers))
	for i, header := range headers {
		separator[i] = strings.Repeat("-", utf8.RuneCountInString(header))
	}

	return table{rows: [][]string{headers, separator}}
}

type table struct {
	rows [][]string
}

func (t *table) addRow(row []string) {
	t.rows = append(t.rows, row)
}

// format formats the table with two leading spaces per row. The last column is aligned right.
func (t *table) format() string {
	rows := t.rows

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for j := range widths {
			if l := utf8.RuneCountInString(row[j]); widths[j] < l {
				widths[j] = l
			}
		}
	}

	last := len(widths) - 1

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString("  ")
		for j, value := range row {
			if j != 0 {
				sb.WriteString("   ")
			}

			padding := strings.Repeat(" ", widths[j]-utf8.RuneCountInString(value))
			if j == last {
				sb.WriteString(padding)
				sb.WriteString(value)
			} else {
				sb.WriteString(value)
				sb.WriteString(padding)
			}
		}
		sb.WriteRune('\n')
	}

	return sb.String()
}
