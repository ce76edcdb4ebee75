package domain

import (
	"fmt"
	"time"

	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time of day. The persisted string form is
// ISO YYYY-MM-DD.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate rejects anything that is not a valid YYYY-MM-DD calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, constants.Invalidf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// AddYears shifts the date by n calendar years, normalizing Feb 29 to Mar 1
// on non-leap years.
func (d Date) AddYears(n int) Date {
	return DateOf(d.Time().AddDate(n, 0, 0))
}

func (d Date) MonthKey() MonthKey {
	return MonthKey{Year: d.Year, Month: d.Month}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return constants.ErrInvalidDate
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange is an inclusive [Start, End] calendar interval: Start counts from
// 00:00:00 and End through 23:59:59.
type DateRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// ParseDateRange validates both bounds and their ordering.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	if e.Before(s) {
		return DateRange{}, constants.ErrEndBeforeStart
	}
	return DateRange{Start: s, End: e}, nil
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// OverlapsMonth reports whether any day of the month falls inside the range.
// Partner batches are keyed by month and occupy the whole calendar month, so
// a month counts as soon as it overlaps the range at all.
func (r DateRange) OverlapsMonth(k MonthKey) bool {
	return !k.FirstDay().After(r.End) && !k.LastDay().Before(r.Start)
}

// ShiftYears moves both bounds by n calendar years.
func (r DateRange) ShiftYears(n int) DateRange {
	return DateRange{Start: r.Start.AddYears(n), End: r.End.AddYears(n)}
}
