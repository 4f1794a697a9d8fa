package calculation

import (
	"testing"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cst = time.FixedZone("CST", 8*3600)

func TestGregorianToLunarScenario(t *testing.T) {
	cal := NewLunarCalendar()
	ld, err := cal.GregorianToLunar(time.Date(2025, 7, 13, 16, 26, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 2025, ld.Year)
	assert.Equal(t, 6, ld.Month)
	assert.Equal(t, 19, ld.Day)
	assert.False(t, ld.IsLeapMonth)
	assert.Equal(t, "乙巳", ld.YearPillar.String())
	assert.Equal(t, "癸未", ld.MonthPillar.String())
	assert.Equal(t, "癸未", ld.DayPillar.String())
	assert.Equal(t, "庚申", ld.HourPillar.String())
	assert.Equal(t, "小暑", ld.SolarTerm.String())
	assert.Equal(t, 3, ld.Cycle)
	assert.Equal(t, ld.YearPillar.Index()+1, ld.YearInCycle)
}

func TestGregorianToLunarKnownDates(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		year    int
		month   int
		day     int
		pillar  string
	}{
		{"Taiyi scenario", time.Date(2024, 7, 13, 15, 30, 0, 0, time.UTC), 2024, 6, 9, "甲辰"},
		{"before new year", time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), 2023, 12, 5, "癸卯"},
		{"start of range", time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), 1899, 12, 1, "己亥"},
		{"end of range", time.Date(2100, 12, 31, 12, 0, 0, 0, cst), 2100, 12, 1, "庚申"},
	}
	cal := NewLunarCalendar()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ld, err := cal.GregorianToLunar(tt.instant)
			require.NoError(t, err)
			assert.Equal(t, []int{tt.year, tt.month, tt.day}, []int{ld.Year, ld.Month, ld.Day})
			assert.Equal(t, tt.pillar, ld.YearPillar.String())
		})
	}
}

func TestLunarNewYearDates(t *testing.T) {
	dates := []time.Time{
		time.Date(1901, 2, 19, 12, 0, 0, 0, cst),
		time.Date(1985, 2, 20, 12, 0, 0, 0, cst),
		time.Date(2000, 2, 5, 12, 0, 0, 0, cst),
		time.Date(2020, 1, 25, 12, 0, 0, 0, cst),
		time.Date(2023, 1, 22, 12, 0, 0, 0, cst),
		time.Date(2024, 2, 10, 12, 0, 0, 0, cst),
		time.Date(2025, 1, 29, 12, 0, 0, 0, cst),
		time.Date(2099, 1, 21, 12, 0, 0, 0, cst),
	}
	cal := NewLunarCalendar()
	for _, d := range dates {
		t.Run(d.Format("2006-01-02"), func(t *testing.T) {
			ld, err := cal.GregorianToLunar(d)
			require.NoError(t, err)
			assert.Equal(t, d.Year(), ld.Year)
			assert.Equal(t, 1, ld.Month)
			assert.Equal(t, 1, ld.Day)
			assert.False(t, ld.IsLeapMonth)

			prev, err := cal.GregorianToLunar(d.AddDate(0, 0, -1))
			require.NoError(t, err)
			assert.Equal(t, d.Year()-1, prev.Year)
			assert.Equal(t, 12, prev.Month)
			assert.Contains(t, []int{29, 30}, prev.Day)
		})
	}
}

func TestLeapMonthBoundaries(t *testing.T) {
	tests := []struct {
		date  time.Time
		month int
		leap  bool
		day   int
	}{
		{time.Date(2025, 7, 24, 12, 0, 0, 0, cst), 6, false, 30},
		{time.Date(2025, 7, 25, 12, 0, 0, 0, cst), 6, true, 1},
		{time.Date(2025, 8, 22, 12, 0, 0, 0, cst), 6, true, 29},
		{time.Date(2025, 8, 23, 12, 0, 0, 0, cst), 7, false, 1},
		{time.Date(2023, 3, 21, 12, 0, 0, 0, cst), 2, false, 30},
		{time.Date(2023, 3, 22, 12, 0, 0, 0, cst), 2, true, 1},
		{time.Date(2020, 5, 22, 12, 0, 0, 0, cst), 4, false, 30},
		{time.Date(2020, 5, 23, 12, 0, 0, 0, cst), 4, true, 1},
		{time.Date(2033, 12, 22, 12, 0, 0, 0, cst), 11, true, 1},
	}
	cal := NewLunarCalendar()
	for _, tt := range tests {
		ld, err := cal.GregorianToLunar(tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.month, ld.Month, tt.date.String())
		assert.Equal(t, tt.leap, ld.IsLeapMonth, tt.date.String())
		assert.Equal(t, tt.day, ld.Day, tt.date.String())
	}

	leaps := map[int]int{2020: 4, 2023: 2, 2024: 0, 2025: 6, 2033: 11}
	for year, want := range leaps {
		got, err := cal.LeapMonth(year, cst)
		require.NoError(t, err)
		assert.Equal(t, want, got, "leap month of %d", year)
	}
}

// Walking day by day across an intercalary month never skips or repeats a lunar day.
func TestLeapMonthDayContinuity(t *testing.T) {
	cal := NewLunarCalendar()
	windows := []time.Time{
		time.Date(2025, 6, 1, 12, 0, 0, 0, cst),
		time.Date(2023, 2, 1, 12, 0, 0, 0, cst),
		time.Date(2020, 4, 1, 12, 0, 0, 0, cst),
	}
	for _, start := range windows {
		prev, err := cal.GregorianToLunar(start)
		require.NoError(t, err)
		for i := 1; i <= 120; i++ {
			cur, err := cal.GregorianToLunar(start.AddDate(0, 0, i))
			require.NoError(t, err)
			sameMonth := cur.Month == prev.Month && cur.IsLeapMonth == prev.IsLeapMonth
			if sameMonth {
				assert.Equal(t, prev.Day+1, cur.Day, "day skipped at %s", cur.Instant)
			} else {
				assert.Equal(t, 1, cur.Day, "month did not start on day 1 at %s", cur.Instant)
				assert.Contains(t, []int{29, 30}, prev.Day, "short month before %s", cur.Instant)
				if cur.IsLeapMonth {
					assert.Equal(t, prev.Month, cur.Month)
				} else {
					assert.Equal(t, prev.Month%12+1, cur.Month)
				}
			}
			prev = cur
		}
	}
}

func TestLunarToGregorianRoundTrip(t *testing.T) {
	cal := NewLunarCalendar()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, cst)
	for i := 0; i < 365; i += 3 {
		day := start.AddDate(0, 0, i)
		ld, err := cal.GregorianToLunar(day.Add(10 * time.Hour))
		require.NoError(t, err)

		back, err := cal.LunarToGregorian(ld.Year, ld.Month, ld.Day, ld.IsLeapMonth, cst)
		require.NoError(t, err)
		assert.True(t, day.Equal(back), "%s -> %s -> %s", day, ld.Numeric(), back)
	}

	newYear, err := cal.LunarToGregorian(2024, 1, 1, false, cst)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, cst), newYear)
}

func TestLunarToGregorianInvalid(t *testing.T) {
	cal := NewLunarCalendar()
	cases := []struct {
		name             string
		year, month, day int
		leap             bool
	}{
		{"no leap month in 2024", 2024, 6, 1, true},
		{"leap sixth month of 2025 has 29 days", 2025, 6, 30, true},
		{"day out of range", 2025, 1, 31, false},
		{"month out of range", 2025, 13, 1, false},
		{"year out of range", 2200, 1, 1, false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cal.LunarToGregorian(tt.year, tt.month, tt.day, tt.leap, cst)
			assert.ErrorIs(t, err, ErrInvalidLunarDate)
		})
	}
}

func TestMonthLengths(t *testing.T) {
	labels, days, err := NewLunarCalendar().MonthLengths(2025, cst)
	require.NoError(t, err)
	require.Len(t, labels, 13)
	assert.Equal(t, "L6", labels[6])
	assert.Equal(t, 29, days[6])
	total := 0
	for _, d := range days {
		assert.Contains(t, []int{29, 30}, d)
		total += d
	}
	assert.InDelta(t, 384, total, 1)
}

func TestInvalidInstants(t *testing.T) {
	cal := NewLunarCalendar()
	for _, instant := range []time.Time{
		{},
		time.Date(1899, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2101, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1900, 1, 1, 0, 0, 0, 0, cst),
	} {
		_, err := cal.GregorianToLunar(instant)
		assert.ErrorIs(t, err, ErrInvalidInstant, instant.String())
	}
}

func TestPillarRules(t *testing.T) {
	assert.Equal(t, "丙寅", MonthPillar(0, 1).String())
	assert.Equal(t, "癸未", MonthPillar(1, 6).String())
	assert.Equal(t, "甲子", MonthPillar(4, 11).String())
	assert.Equal(t, "乙丑", MonthPillar(9, 12).String())

	day := domain.PillarFromIndex(19) // 癸未
	assert.Equal(t, "壬子", HourPillar(day, 0).String())
	assert.Equal(t, "癸亥", HourPillar(day, 22).String())
	assert.Equal(t, "甲子", HourPillar(day, 23).String())
	assert.Equal(t, "甲子", HourPillar(day.Next(1), 0).String())
}

func TestPillarContinuity(t *testing.T) {
	cal := NewLunarCalendar()
	start := time.Date(2025, 7, 12, 1, 0, 0, 0, time.UTC)
	prev, err := cal.GregorianToLunar(start)
	require.NoError(t, err)
	for i := 1; i <= 36; i++ {
		cur, err := cal.GregorianToLunar(start.Add(time.Duration(i) * 2 * time.Hour))
		require.NoError(t, err)
		assert.Equal(t, prev.HourPillar.Next(1), cur.HourPillar, "hour pillar jump at %s", cur.Instant)
		for _, p := range cur.Pillars() {
			assert.True(t, p.Valid())
		}
		prev = cur
	}

	ld, err := cal.GregorianToLunar(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "戊午", ld.DayPillar.String())
}
