package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 15), d)
	assert.Equal(t, "2024-03-15", d.String())

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestDateOfTruncatesTime(t *testing.T) {
	almaty := time.FixedZone("ALMT", 5*60*60)
	d := DateOf(time.Date(2024, time.March, 15, 23, 45, 0, 0, almaty))
	assert.Equal(t, NewDate(2024, time.March, 15), d)
}

func TestDateUnmarshalToleratesTimestamps(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15T18:30:00Z"`), &d))
	assert.Equal(t, NewDate(2024, time.March, 15), d)

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &d))
}

func TestDateMarshal(t *testing.T) {
	out, err := json.Marshal(NewDate(2024, time.March, 5))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(out))

	out, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2024, Month: time.March}, m)
	assert.Equal(t, "2024-03", m.String())

	_, err = ParseMonth("2024-3")
	assert.Error(t, err)

	_, err = ParseMonth("March 2024")
	assert.Error(t, err)
}

func TestMonthBounds(t *testing.T) {
	feb := Month{Year: 2024, Month: time.February}
	assert.Equal(t, NewDate(2024, time.February, 1), feb.Start())
	assert.Equal(t, NewDate(2024, time.February, 29), feb.End()) // leap year

	dec := Month{Year: 2023, Month: time.December}
	assert.Equal(t, NewDate(2023, time.December, 31), dec.End())
}

func TestMonthContains(t *testing.T) {
	m := Month{Year: 2024, Month: time.March}
	assert.True(t, m.Contains(NewDate(2024, time.March, 1)))
	assert.True(t, m.Contains(NewDate(2024, time.March, 31)))
	assert.False(t, m.Contains(NewDate(2024, time.April, 1)))
	assert.False(t, m.Contains(NewDate(2023, time.March, 15)))
}

func TestMonthAddMonths(t *testing.T) {
	jan := Month{Year: 2024, Month: time.January}

	assert.Equal(t, Month{Year: 2024, Month: time.April}, jan.AddMonths(3))
	assert.Equal(t, Month{Year: 2023, Month: time.October}, jan.AddMonths(-3))
	assert.Equal(t, Month{Year: 2025, Month: time.February}, jan.AddMonths(13))
	assert.Equal(t, jan, jan.AddMonths(0))
}

func TestMonthJSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(Month{Year: 2024, Month: time.March})
	require.NoError(t, err)
	assert.Equal(t, `"2024-03"`, string(out))

	var m Month
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, Month{Year: 2024, Month: time.March}, m)

	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	assert.True(t, m.IsZero())
}

func TestDateYearMonth(t *testing.T) {
	d := NewDate(2024, time.December, 31)
	assert.Equal(t, Month{Year: 2024, Month: time.December}, d.YearMonth())
}
