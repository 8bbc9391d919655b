package calendar

import (
	"errors"
	"fmt"
	"time"
)

// DaysPerWeek is the width of every grid row.
const DaysPerWeek = 7

// Domain errors
var (
	ErrInvalidMonth = errors.New("month must be in YYYY-MM format")
)

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a YYYY-MM query parameter.
// PRE: value is the raw query string
// POST: Returns the month, or ErrInvalidMonth if it cannot be parsed
func ParseMonth(value string) (Month, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing the given time.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// FirstDay returns the first date of the month as YYYY-MM-DD.
func (m Month) FirstDay() string {
	return fmt.Sprintf("%04d-%02d-01", m.Year, int(m.Month))
}

// LastDay returns the last date of the month as YYYY-MM-DD, using the
// actual month length rather than a fixed 28/30/31 constant.
func (m Month) LastDay() string {
	return fmt.Sprintf("%04d-%02d-%02d", m.Year, int(m.Month), m.NumDays())
}

// NumDays returns the number of days in the month.
// POST: Returns 28..31, correct for leap years
func (m Month) NumDays() int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Prev returns the preceding calendar month.
func (m Month) Prev() Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return MonthOf(t)
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return MonthOf(t)
}

// Grid returns the month laid out as Monday-first weeks of 7 slots.
// Out-of-month slots hold 0; in-month slots hold the day number.
// POST: Every row has exactly 7 entries; days 1..NumDays appear exactly once
func (m Month) Grid() [][]int {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	// Column index of day 1 in a Monday-first week.
	offset := (int(first.Weekday()) + 6) % DaysPerWeek

	days := m.NumDays()
	var weeks [][]int
	week := make([]int, DaysPerWeek)
	col := offset
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == DaysPerWeek {
			weeks = append(weeks, week)
			week = make([]int, DaysPerWeek)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
