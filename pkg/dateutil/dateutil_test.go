package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJulianDayNumber(t *testing.T) {
	tests := []struct {
		name     string
		y, m, d  int
		expected int
	}{
		{name: "J2000 epoch date", y: 2000, m: 1, d: 1, expected: 2451545},
		{name: "Unix epoch", y: 1970, m: 1, d: 1, expected: 2440588},
		{name: "Gregorian reform", y: 1582, m: 10, d: 15, expected: 2299161},
		{name: "Leap day", y: 2024, m: 2, d: 29, expected: 2460370},
		{name: "Century non-leap", y: 1900, m: 3, d: 1, expected: 2415080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JulianDayNumber(tt.y, tt.m, tt.d))
			y, m, d := DateFromJulianDayNumber(tt.expected)
			assert.Equal(t, []int{tt.y, tt.m, tt.d}, []int{y, m, d})
		})
	}
}

func TestJulianDayRoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 13, 16, 26, 0, 0, time.UTC),
		time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2100, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, in := range instants {
		got := FromJulianDay(JulianDay(in))
		assert.WithinDuration(t, in, got, time.Millisecond, in.String())
	}
	assert.InDelta(t, 2451545.0, JulianDay(instants[0]), 1e-9)
}

func TestCivilDayRespectsLocation(t *testing.T) {
	cst := time.FixedZone("CST", 8*3600)
	// 2025-07-13T16:26Z is already 2025-07-14 in UTC+8.
	jd := JulianDay(time.Date(2025, 7, 13, 16, 26, 0, 0, time.UTC))

	assert.Equal(t, JulianDayNumber(2025, 7, 13), CivilDay(jd, time.UTC))
	assert.Equal(t, JulianDayNumber(2025, 7, 14), CivilDay(jd, cst))

	mid := StartOfCivilDay(JulianDayNumber(2025, 7, 14), cst)
	require.InDelta(t, 2460870.166667, mid, 1e-5)
	assert.Equal(t, JulianDayNumber(2025, 7, 14), CivilDay(mid, cst))
	assert.Equal(t, JulianDayNumber(2025, 7, 13), CivilDay(mid-1e-6, cst))
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2000))
	assert.True(t, IsLeapYear(2024))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2100))
	assert.False(t, IsLeapYear(2025))
}

func TestFractionalYear(t *testing.T) {
	assert.InDelta(t, 2024.0, FractionalYear(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), 1e-12)
	assert.InDelta(t, 2024.5, FractionalYear(time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)), 1e-9)
}
