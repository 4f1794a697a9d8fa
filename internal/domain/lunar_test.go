package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolarTermAt(t *testing.T) {
	tests := []struct {
		lon   float64
		name  string
		major bool
	}{
		{0, "春分", true},
		{14.99, "春分", true},
		{111.5, "小暑", false},
		{270, "冬至", true},
		{315.2, "立春", false},
		{359.9, "惊蛰", false},
	}
	for _, tt := range tests {
		term := SolarTermAt(tt.lon)
		assert.Equal(t, tt.name, term.String(), "lon %v", tt.lon)
		assert.Equal(t, tt.major, term.IsMajor(), "lon %v", tt.lon)
	}
	assert.Equal(t, 270.0, SolarTerm(18).Longitude())
}

func TestLunarDateNames(t *testing.T) {
	d := LunarDate{Year: 2025, Month: 6, Day: 19, YearPillar: PillarFromIndex(41)}
	assert.Equal(t, "六月", d.MonthName())
	assert.Equal(t, "十九", d.DayName())
	assert.Equal(t, "乙巳年 六月十九", d.String())
	assert.Equal(t, "2025-06-19", d.Numeric())

	d.IsLeapMonth = true
	d.Day = 1
	assert.Equal(t, "閏六月", d.MonthName())
	assert.Equal(t, "初一", d.DayName())
	assert.Equal(t, "2025-L06-01", d.Numeric())

	days := map[int]string{10: "初十", 11: "十一", 20: "二十", 21: "廿一", 29: "廿九", 30: "三十"}
	for day, want := range days {
		d.Day = day
		assert.Equal(t, want, d.DayName())
	}

	d.Month = 12
	d.IsLeapMonth = false
	assert.Equal(t, "腊月", d.MonthName())
}

func TestPatternClassification(t *testing.T) {
	expected := map[int]PatternClass{
		0: ChallengingPattern, 3: ChallengingPattern,
		4: MixedPattern, 5: MixedPattern,
		6: HighlyFavorablePattern, 9: HighlyFavorablePattern,
	}
	for n, want := range expected {
		assert.Equal(t, want, ClassifyPattern(n), "count %d", n)
	}
}

func TestTimeFrameParsing(t *testing.T) {
	f, err := ParseTimeFrame("")
	assert.NoError(t, err)
	assert.Equal(t, HourFrame, f)

	f, err = ParseTimeFrame("day")
	assert.NoError(t, err)
	assert.Equal(t, DayFrame, f)

	f, err = ParseTimeFrame("年家")
	assert.NoError(t, err)
	assert.Equal(t, YearFrame, f)

	_, err = ParseTimeFrame("minute")
	assert.ErrorIs(t, err, ErrUnknownName)
}
