package ast

import (
	"fmt"
	"time"
)

// Date is a calendar date on the proleptic Gregorian calendar with
// astronomical year numbering: year zero exists and negative years are
// allowed. This diverges from ISO 8601 on purpose, matching the literal
// grammar's `-?DDDD-DD-DD` shape.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, validating the day against the actual month
// length (including leap-year February). It fails rather than clamping.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("invalid month %d", int(month))
	}
	if max := daysInMonth(year, month); day < 1 || day > max {
		return Date{}, fmt.Errorf("invalid day %d for %s in year %d", day, month, year)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

func daysInMonth(year int, month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// Go's remainder keeps the sign of the dividend, so the divisibility
// checks hold for negative years as well.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// String renders the date in the literal grammar's own form: a four digit
// year with an optional leading minus, then zero padded month and day.
func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, int(d.Month), d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
