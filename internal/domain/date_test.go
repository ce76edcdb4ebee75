package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: 2, Day: 29}, d)

	for _, bad := range []string{"", "2024-13-01", "2023-02-29", "29/02/2024", "2024-2-9"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateRoundTripJSON(t *testing.T) {
	d := Date{Year: 2025, Month: 7, Day: 3}
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2025-07-03"`, string(b))

	var parsed Date
	require.NoError(t, parsed.UnmarshalJSON(b))
	assert.Equal(t, d, parsed)
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.True(t, r.Contains(Date{Year: 2025, Month: 1, Day: 1}))
	assert.True(t, r.Contains(Date{Year: 2025, Month: 1, Day: 31}))
	assert.False(t, r.Contains(Date{Year: 2025, Month: 2, Day: 1}))
	assert.False(t, r.Contains(Date{Year: 2024, Month: 12, Day: 31}))

	_, err = ParseDateRange("2025-02-01", "2025-01-31")
	assert.Error(t, err)

	// single-day range is legal
	_, err = ParseDateRange("2025-01-15", "2025-01-15")
	assert.NoError(t, err)
}

func TestDateRangeOverlapsMonth(t *testing.T) {
	r, err := ParseDateRange("2025-01-20", "2025-03-10")
	require.NoError(t, err)

	assert.True(t, r.OverlapsMonth(MonthKey{Year: 2025, Month: 1}))
	assert.True(t, r.OverlapsMonth(MonthKey{Year: 2025, Month: 2}))
	assert.True(t, r.OverlapsMonth(MonthKey{Year: 2025, Month: 3}))
	assert.False(t, r.OverlapsMonth(MonthKey{Year: 2024, Month: 12}))
	assert.False(t, r.OverlapsMonth(MonthKey{Year: 2025, Month: 4}))

	// a month counts even when only one edge day touches the range
	edge, err := ParseDateRange("2025-01-31", "2025-01-31")
	require.NoError(t, err)
	assert.True(t, edge.OverlapsMonth(MonthKey{Year: 2025, Month: 1}))
	assert.False(t, edge.OverlapsMonth(MonthKey{Year: 2025, Month: 2}))
}

func TestDateRangeShiftYears(t *testing.T) {
	r, err := ParseDateRange("2025-03-01", "2025-03-31")
	require.NoError(t, err)

	shifted := r.ShiftYears(-1)
	assert.Equal(t, Date{Year: 2024, Month: 3, Day: 1}, shifted.Start)
	assert.Equal(t, Date{Year: 2024, Month: 3, Day: 31}, shifted.End)
}

func TestMonthKeyDays(t *testing.T) {
	feb := MonthKey{Year: 2024, Month: 2}
	assert.Equal(t, Date{Year: 2024, Month: 2, Day: 1}, feb.FirstDay())
	assert.Equal(t, Date{Year: 2024, Month: 2, Day: 29}, feb.LastDay())
	assert.Equal(t, Date{Year: 2024, Month: 2, Day: 15}, feb.MidMonth())

	dec := MonthKey{Year: 2025, Month: 12}
	assert.Equal(t, Date{Year: 2025, Month: 12, Day: 31}, dec.LastDay())
}

func TestParseMonthKey(t *testing.T) {
	key, err := ParseMonthKey("2025", "07")
	require.NoError(t, err)
	assert.Equal(t, MonthKey{Year: 2025, Month: 7}, key)
	assert.Equal(t, "07", key.MonthLabel())

	_, err = ParseMonthKey("2025", "13")
	assert.Error(t, err)
	_, err = ParseMonthKey("abc", "01")
	assert.Error(t, err)
}

func TestDeclineReasonKey(t *testing.T) {
	key := DeclineReasonKey(Date{Year: 2025, Month: 1, Day: 31}, "Dr. Silva")
	assert.Equal(t, "2025-01-31_Dr. Silva", key)
}

func TestDeclineReasonValid(t *testing.T) {
	assert.True(t, DeclineNone.Valid())
	assert.True(t, DeclineRecess.Valid())
	assert.False(t, DeclineReason("anything else").Valid())
}
