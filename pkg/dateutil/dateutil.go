package dateutil

import (
	"math"
	"time"
)

// UnixEpochJD is the Julian Day of 1970-01-01T00:00:00Z.
const UnixEpochJD = 2440587.5

const secondsPerDay = 86400.0

// JulianDayNumber returns the integer Julian Day Number of a proleptic Gregorian date.
func JulianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// DateFromJulianDayNumber is the inverse of JulianDayNumber.
func DateFromJulianDayNumber(jdn int) (year, month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153
	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = 100*b + d - 4800 + m/10
	return year, month, day
}

// JulianDay converts an instant to a fractional Julian Day in UT.
func JulianDay(t time.Time) float64 {
	secs := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return UnixEpochJD + secs/secondsPerDay
}

// FromJulianDay converts a fractional Julian Day (UT) to a UTC instant,
// truncated to the millisecond.
func FromJulianDay(jd float64) time.Time {
	ms := math.Round((jd - UnixEpochJD) * secondsPerDay * 1000)
	return time.UnixMilli(int64(ms)).UTC()
}

// CivilDay returns the Julian Day Number of the calendar date on which the
// instant jd falls when observed in loc.
func CivilDay(jd float64, loc *time.Location) int {
	t := FromJulianDay(jd).In(loc)
	return JulianDayNumber(t.Year(), int(t.Month()), t.Day())
}

// CivilDayOf returns the Julian Day Number of t's calendar date in t's own location.
func CivilDayOf(t time.Time) int {
	return JulianDayNumber(t.Year(), int(t.Month()), t.Day())
}

// StartOfCivilDay returns the Julian Day of local midnight starting civil day jdn in loc.
func StartOfCivilDay(jdn int, loc *time.Location) float64 {
	return JulianDay(Midnight(jdn, loc))
}

// Midnight returns local midnight of civil day jdn in loc.
func Midnight(jdn int, loc *time.Location) time.Time {
	y, m, d := DateFromJulianDayNumber(jdn)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// FractionalYear returns the UTC year plus the elapsed fraction of that year.
func FractionalYear(t time.Time) float64 {
	u := t.UTC()
	start := time.Date(u.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := 365.0
	if IsLeapYear(u.Year()) {
		days = 366
	}
	return float64(u.Year()) + u.Sub(start).Hours()/24/days
}
