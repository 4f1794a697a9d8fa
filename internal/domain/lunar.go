package domain

import (
	"fmt"
	"time"
)

// SolarTerm is one of the 24 solar terms (節氣), numbered from 春分 at 0° of
// apparent solar longitude in 15° steps.
type SolarTerm int

const SolarTermCount = 24

var solarTermNames = []string{
	"春分", "清明", "谷雨", "立夏", "小满", "芒种",
	"夏至", "小暑", "大暑", "立秋", "处暑", "白露",
	"秋分", "寒露", "霜降", "立冬", "小雪", "大雪",
	"冬至", "小寒", "大寒", "立春", "雨水", "惊蛰",
}

var solarTermEnglish = []string{
	"Spring Equinox", "Clear and Bright", "Grain Rain", "Start of Summer", "Grain Full", "Grain in Ear",
	"Summer Solstice", "Minor Heat", "Major Heat", "Start of Autumn", "End of Heat", "White Dew",
	"Autumn Equinox", "Cold Dew", "Frost Descent", "Start of Winter", "Minor Snow", "Major Snow",
	"Winter Solstice", "Minor Cold", "Major Cold", "Start of Spring", "Rain Water", "Awakening of Insects",
}

// SolarTermAt returns the term in effect at the given apparent longitude.
func SolarTermAt(longitude float64) SolarTerm {
	return SolarTerm(Mod(int(longitude/15), SolarTermCount))
}

func (s SolarTerm) String() string  { return nameAt(solarTermNames, int(s)) }
func (s SolarTerm) English() string { return nameAt(solarTermEnglish, int(s)) }

// Longitude is the apparent solar longitude at which the term begins.
func (s SolarTerm) Longitude() float64 { return float64(s) * 15 }

// IsMajor reports whether the term is a principal term (中氣), i.e. a multiple of 30°.
func (s SolarTerm) IsMajor() bool { return s%2 == 0 }

func (s SolarTerm) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *SolarTerm) UnmarshalText(text []byte) error {
	i, err := lookupName("solar term", string(text), solarTermNames, solarTermEnglish)
	if err != nil {
		return err
	}
	*s = SolarTerm(i)
	return nil
}

// LunarDate is an instant expressed in the Chinese lunisolar calendar with its
// four pillars.
type LunarDate struct {
	Instant        time.Time `json:"instant" yaml:"instant"`
	Year           int       `json:"year" yaml:"year"`
	Month          int       `json:"month" yaml:"month"`
	Day            int       `json:"day" yaml:"day"`
	IsLeapMonth    bool      `json:"is_leap_month" yaml:"is_leap_month"`
	Cycle          int       `json:"cycle" yaml:"cycle"`
	YearInCycle    int       `json:"year_in_cycle" yaml:"year_in_cycle"`
	YearPillar     Pillar    `json:"year_pillar" yaml:"year_pillar"`
	MonthPillar    Pillar    `json:"month_pillar" yaml:"month_pillar"`
	DayPillar      Pillar    `json:"day_pillar" yaml:"day_pillar"`
	HourPillar     Pillar    `json:"hour_pillar" yaml:"hour_pillar"`
	SolarLongitude float64   `json:"solar_longitude" yaml:"solar_longitude"`
	SolarTerm      SolarTerm `json:"solar_term" yaml:"solar_term"`
}

var lunarMonthNames = []string{"", "正", "二", "三", "四", "五", "六", "七", "八", "九", "十", "冬", "腊"}

var lunarDayTens = []string{"初", "十", "廿", "三"}
var chineseDigits = []string{"十", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// Pillars returns year, month, day and hour pillars in that order.
func (d LunarDate) Pillars() [4]Pillar {
	return [4]Pillar{d.YearPillar, d.MonthPillar, d.DayPillar, d.HourPillar}
}

// MonthName is the traditional month name, e.g. 閏六月.
func (d LunarDate) MonthName() string {
	prefix := ""
	if d.IsLeapMonth {
		prefix = "閏"
	}
	return prefix + nameAt(lunarMonthNames, d.Month) + "月"
}

// DayName is the traditional day name, e.g. 初一, 十九, 廿三.
func (d LunarDate) DayName() string {
	switch d.Day {
	case 10:
		return "初十"
	case 20:
		return "二十"
	case 30:
		return "三十"
	}
	if d.Day < 1 || d.Day > 30 {
		return fmt.Sprintf("?(%d)", d.Day)
	}
	return lunarDayTens[d.Day/10] + chineseDigits[d.Day%10]
}

// Numeric renders the date as year-month-day with an L marker for leap months.
func (d LunarDate) Numeric() string {
	leap := ""
	if d.IsLeapMonth {
		leap = "L"
	}
	return fmt.Sprintf("%d-%s%02d-%02d", d.Year, leap, d.Month, d.Day)
}

func (d LunarDate) String() string {
	return fmt.Sprintf("%s年 %s%s", d.YearPillar, d.MonthName(), d.DayName())
}

// PillarComposition summarises the elements carried by the four pillar stems.
type PillarComposition struct {
	Distribution map[Element]int     `json:"distribution" yaml:"distribution"`
	Dominant     []Element           `json:"dominant" yaml:"dominant"`
	Weak         []Element           `json:"weak" yaml:"weak"`
	Balanced     bool                `json:"balanced" yaml:"balanced"`
	Balance      map[Element]float64 `json:"balance" yaml:"balance"`
}
