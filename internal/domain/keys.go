package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
)

type Year = int

// DayKey addresses one daily entry. Flat composite keys replace the persisted
// year→month→day string tree so lookups need no multi-level existence checks.
type DayKey struct {
	Year  int
	Month int
	Day   int
}

func (k DayKey) Date() Date {
	return Date{Year: k.Year, Month: k.Month, Day: k.Day}
}

// MonthKey addresses one calendar month.
type MonthKey struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (k MonthKey) FirstDay() Date {
	return Date{Year: k.Year, Month: k.Month, Day: 1}
}

func (k MonthKey) LastDay() Date {
	// day 0 of the next month
	return DateOf(time.Date(k.Year, time.Month(k.Month)+1, 0, 0, 0, 0, 0, time.UTC))
}

// MidMonth is the representative date a month-keyed batch carries when a
// range check needs a single point inside the month.
func (k MonthKey) MidMonth() Date {
	return Date{Year: k.Year, Month: k.Month, Day: 15}
}

// MonthLabel is the persisted two-digit month form ("01".."12").
func (k MonthKey) MonthLabel() string {
	return fmt.Sprintf("%02d", k.Month)
}

func (k MonthKey) YearLabel() string {
	return strconv.Itoa(k.Year)
}

// ParseMonthKey accepts the persisted string pair ("2024", "03").
func ParseMonthKey(year, month string) (MonthKey, error) {
	y, err := strconv.Atoi(year)
	if err != nil || y < 1000 || y > 9999 {
		return MonthKey{}, constants.Invalidf("invalid year key %q", year)
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return MonthKey{}, constants.ErrInvalidMonthKey
	}
	return MonthKey{Year: y, Month: m}, nil
}
