package cli

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"daily-todo/internal/domain"
	"daily-todo/internal/services"
)

// tabWidth is the distance between tab stops in rendered content.
const tabWidth = 8

// renderRows formats rows as a numbered checklist. Lines after the first of
// a multi-line todo are indented under its text.
func renderRows(rows []services.Row) string {
	if len(rows) == 0 {
		return "  (no to-dos)\n"
	}

	var b strings.Builder
	for i, row := range rows {
		mark := " "
		if row.Checked {
			mark = "x"
		}
		prefix := fmt.Sprintf("  %d. [%s] ", i+1, mark)
		indent := strings.Repeat(" ", displayWidth(prefix))

		for j, line := range strings.Split(row.Content, "\n") {
			if j == 0 {
				b.WriteString(prefix)
			} else {
				b.WriteString(indent)
			}
			b.WriteString(expandTabs(strings.TrimSuffix(line, "\r")))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// expandTabs replaces each tab with spaces up to the next tab stop, counted
// from the start of s in terminal cells.
func expandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	var b strings.Builder
	column := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - column%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			column += n
			continue
		}
		b.WriteRune(r)
		column += runeWidth(r)
	}
	return b.String()
}

func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

// runeWidth returns how many terminal cells r occupies: two for wide East
// Asian characters, none for combining marks and control runes.
func runeWidth(r rune) int {
	if unicode.Is(unicode.Mn, r) || unicode.IsControl(r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// renderCalendar draws the month of month as a Monday-first grid. The
// selected day is bracketed; days with open to-dos get '*' and fully done
// days get '+'.
func renderCalendar(month, selected domain.Date, summaries []domain.DaySummary) string {
	byDay := make(map[int]domain.DaySummary, len(summaries))
	for _, s := range summaries {
		byDay[s.Date.Day()] = s
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", month.Month(), month.Year())

	var header strings.Builder
	for _, name := range weekdayHeader {
		fmt.Fprintf(&header, " %s  ", name)
	}
	b.WriteString(strings.TrimRight(header.String(), " "))
	b.WriteByte('\n')

	first := month.FirstOfMonth()
	last := month.LastOfMonth()
	offset := (int(first.Weekday()) + 6) % 7

	var line strings.Builder
	line.WriteString(strings.Repeat("     ", offset))
	column := offset
	for day := first; !last.Before(day); day = day.AddDays(1) {
		line.WriteString(calendarCell(day, selected, byDay[day.Day()]))
		column++
		if column == 7 {
			b.WriteString(strings.TrimRight(line.String(), " "))
			b.WriteByte('\n')
			line.Reset()
			column = 0
		}
	}
	if column > 0 {
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}

	b.WriteString("[ ] selected  * open to-dos  + all done\n")
	return b.String()
}

func calendarCell(day, selected domain.Date, summary domain.DaySummary) string {
	left, right := " ", " "
	if day.Equal(selected) {
		left, right = "[", "]"
	}

	marker := " "
	switch {
	case summary.AllDone():
		marker = "+"
	case summary.Open() > 0:
		marker = "*"
	}

	return fmt.Sprintf("%s%2d%s%s", left, day.Day(), marker, right)
}
