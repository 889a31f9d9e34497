// Package calendar implements the proleptic Gregorian calendar date and the
// civil time of day used to present instants in human-readable form.
package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/lox-space/lox-go/internal/deltas"
)

var (
	// ErrInvalidDate is returned for dates that do not exist in the calendar.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidTimeOfDay is returned for out-of-range clock readings.
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)

var isoDate = regexp.MustCompile(`^(-?\d{4,})-(\d{2})-(\d{2})`)

var (
	previousMonthEndDay     = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	previousMonthEndDayLeap = [12]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
)

// Date is a day in the proleptic Gregorian calendar.
type Date struct {
	year  int64
	month int
	day   int
}

// J2000Date is 2000-01-01, day number zero.
var J2000Date = Date{year: 2000, month: 1, day: 1}

// NewDate validates and builds a date.
func NewDate(year int64, month, day int) (Date, error) {
	if month < 1 || month > 12 || day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: %d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// ParseDate parses the leading YYYY-MM-DD of an ISO 8601 string.
func ParseDate(iso string) (Date, error) {
	m := isoDate.FindStringSubmatch(iso)
	if m == nil {
		return Date{}, fmt.Errorf("%w: invalid ISO string %q", ErrInvalidDate, iso)
	}
	year, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid ISO string %q", ErrInvalidDate, iso)
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return NewDate(year, month, day)
}

// DateFromDaysSinceJ2000 returns the date whose J2000 day number is days.
func DateFromDaysSinceJ2000(days int64) Date {
	year := findYear(days)
	leap := IsLeapYear(year)
	dayOfYear := int(days - lastDayOfYearJ2K(year-1))
	month := findMonth(dayOfYear, leap)
	return Date{year: year, month: month, day: dayOfYear - previousDays(leap)[month-1]}
}

// DateFromSecondsSinceJ2000 returns the date containing the instant that lies
// seconds after J2000 (2000-01-01T12:00:00).
func DateFromSecondsSinceJ2000(seconds int64) Date {
	s := seconds + deltas.SecondsPerHalfDay
	return DateFromDaysSinceJ2000(floorDiv(s, deltas.SecondsPerDay))
}

// DateFromDayOfYear builds a date from a one-based ordinal day.
func DateFromDayOfYear(year int64, dayOfYear int) (Date, error) {
	leap := IsLeapYear(year)
	max := 365
	if leap {
		max = 366
	}
	if dayOfYear < 1 || dayOfYear > max {
		return Date{}, fmt.Errorf("%w: day %d of year %d", ErrInvalidDate, dayOfYear, year)
	}
	month := findMonth(dayOfYear, leap)
	return Date{year: year, month: month, day: dayOfYear - previousDays(leap)[month-1]}, nil
}

func (d Date) Year() int64 { return d.year }
func (d Date) Month() int  { return d.month }
func (d Date) Day() int    { return d.day }

// IsZero reports whether d is the zero value, which is not a valid date.
func (d Date) IsZero() bool { return d.month == 0 }

// DayOfYear returns the one-based ordinal day.
func (d Date) DayOfYear() int {
	return previousDays(IsLeapYear(d.year))[d.month-1] + d.day
}

// J2000DayNumber returns the number of days since 2000-01-01.
func (d Date) J2000DayNumber() int64 {
	return lastDayOfYearJ2K(d.year-1) + int64(d.DayOfYear())
}

// SecondsSinceJ2000 returns the seconds between J2000 and midnight of d.
func (d Date) SecondsSinceJ2000() int64 {
	return d.J2000DayNumber()*deltas.SecondsPerDay - deltas.SecondsPerHalfDay
}

// JulianDate projects midnight of d onto epoch in unit.
func (d Date) JulianDate(epoch deltas.Epoch, unit deltas.Unit) float64 {
	return deltas.FromSeconds(d.SecondsSinceJ2000()).JulianDate(epoch, unit)
}

// Compare orders dates chronologically.
func (d Date) Compare(o Date) int {
	a, b := d.J2000DayNumber(), o.J2000DayNumber()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// AddDays returns the date n days after d.
func (d Date) AddDays(n int64) Date {
	return DateFromDaysSinceJ2000(d.J2000DayNumber() + n)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// IsLeapYear applies the Gregorian 4/100/400 rule.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%400 == 0 || year%100 != 0)
}

// DaysInMonth returns the length of month in year, or 0 for an invalid month.
func DaysInMonth(year int64, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 12 {
		return 31
	}
	prev := previousDays(IsLeapYear(year))
	return prev[month] - prev[month-1]
}

func previousDays(leap bool) [12]int {
	if leap {
		return previousMonthEndDayLeap
	}
	return previousMonthEndDay
}

func lastDayOfYearJ2K(year int64) int64 {
	return 365*year + floorDiv(year, 4) - floorDiv(year, 100) + floorDiv(year, 400) - 730120
}

func findYear(days int64) int64 {
	year := floorDiv(400*days+292194288, 146097)
	for days <= lastDayOfYearJ2K(year-1) {
		year--
	}
	for days > lastDayOfYearJ2K(year) {
		year++
	}
	return year
}

func findMonth(dayOfYear int, leap bool) int {
	if dayOfYear < 32 {
		return 1
	}
	offset := 323
	if leap {
		offset = 313
	}
	return (10*dayOfYear + offset) / 306
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
