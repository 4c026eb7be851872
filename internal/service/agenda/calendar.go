package agenda

import "time"

// Grid describes one month of the calendar view: the number of blank
// leading cells (0 = the month starts on Sunday) followed by one cell per
// day of the month.
type Grid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	DaysInMonth   int
}

// CalendarGrid computes the month layout for any (year, month) pair,
// including leap Februaries.
func CalendarGrid(year int, month time.Month) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the next month is the last day of this one.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	return Grid{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		DaysInMonth:   last.Day(),
	}
}

// Cells flattens the grid into display order: zeros for the leading
// blanks, then the day numbers 1..DaysInMonth.
func (g Grid) Cells() []int {
	cells := make([]int, 0, g.LeadingBlanks+g.DaysInMonth)
	for range g.LeadingBlanks {
		cells = append(cells, 0)
	}
	for d := 1; d <= g.DaysInMonth; d++ {
		cells = append(cells, d)
	}
	return cells
}
