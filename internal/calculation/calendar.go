package calculation

import (
	"fmt"
	"math"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/pkg/dateutil"
)

const (
	// MinSupportedYear and MaxSupportedYear bound the UTC year of accepted instants.
	MinSupportedYear = 1900
	MaxSupportedYear = 2100

	// TaiyiEpochYear is the 甲子 year from which cycles are counted.
	TaiyiEpochYear = 1864

	winterSolstice = 270.0
)

// five-tiger rule: stem of month 1 (寅) by year stem
var fiveTigerMonthStems = [domain.StemCount]int{2, 4, 6, 8, 0, 2, 4, 6, 8, 0}

// five-rat rule: stem of the 子 hour by day stem
var fiveRatHourStems = [domain.StemCount]int{0, 2, 4, 6, 8, 0, 2, 4, 6, 8}

// lunarMonth is one month of a sui with its civil start and end day numbers.
type lunarMonth struct {
	year   int
	number int
	leap   bool
	start  int // first civil day (JDN)
	end    int // first civil day of the following month
}

func (m lunarMonth) days() int { return m.end - m.start }

// LunarCalendar converts between Gregorian instants and the Chinese
// lunisolar calendar. Civil days are taken in the instant's own location,
// so pass instants in Asia/Shanghai for the civil Chinese calendar.
type LunarCalendar struct{}

// NewLunarCalendar creates a calendar engine.
func NewLunarCalendar() *LunarCalendar {
	return &LunarCalendar{}
}

// ValidateInstant reports ErrInvalidInstant for instants outside the supported range.
func ValidateInstant(t time.Time) error {
	if t.IsZero() {
		return fmt.Errorf("%w: zero time", ErrInvalidInstant)
	}
	if y := t.UTC().Year(); y < MinSupportedYear || y > MaxSupportedYear {
		return fmt.Errorf("%w: %s outside %d-%d", ErrInvalidInstant, t.Format(time.RFC3339), MinSupportedYear, MaxSupportedYear)
	}
	return nil
}

// GregorianToLunar converts an instant to its lunar date and four pillars.
func (c *LunarCalendar) GregorianToLunar(t time.Time) (*domain.LunarDate, error) {
	if err := ValidateInstant(t); err != nil {
		return nil, err
	}
	loc := t.Location()
	today := dateutil.CivilDayOf(t)

	month, err := c.monthContaining(today, t.Year(), loc)
	if err != nil {
		return nil, fmt.Errorf("lunar conversion of %s: %w", t.Format(time.RFC3339), err)
	}

	lon := SolarLongitude(dateutil.JulianDay(t))
	yearPillar := domain.PillarFromIndex(month.year - 4)
	dayPillar := domain.PillarFromIndex(today + 49)

	ld := &domain.LunarDate{
		Instant:        t,
		Year:           month.year,
		Month:          month.number,
		Day:            today - month.start + 1,
		IsLeapMonth:    month.leap,
		Cycle:          domain.FloorDiv(month.year-TaiyiEpochYear, domain.CycleLength) + 1,
		YearInCycle:    domain.Mod(month.year-TaiyiEpochYear, domain.CycleLength) + 1,
		YearPillar:     yearPillar,
		MonthPillar:    MonthPillar(yearPillar.Stem, month.number),
		DayPillar:      dayPillar,
		HourPillar:     HourPillar(dayPillar, t.Hour()),
		SolarLongitude: lon,
		SolarTerm:      domain.SolarTermAt(lon),
	}
	return ld, nil
}

// MonthPillar applies the five-tiger rule. Month 1 is the 寅 month.
func MonthPillar(yearStem domain.HeavenlyStem, month int) domain.Pillar {
	return domain.Pillar{
		Stem:   domain.HeavenlyStem(domain.Mod(fiveTigerMonthStems[yearStem]+month-1, domain.StemCount)),
		Branch: domain.EarthlyBranch(domain.Mod(month+1, domain.BranchCount)),
	}
}

// HourPillar applies the five-rat rule. From 23:00 the 子 hour already
// belongs to the next day, so its stem follows the next day's stem while the
// day pillar itself still changes at midnight.
func HourPillar(day domain.Pillar, hour int) domain.Pillar {
	stem := day.Stem
	if hour >= 23 {
		stem = domain.HeavenlyStem(domain.Mod(int(stem)+1, domain.StemCount))
	}
	branch := domain.BranchForHour(hour)
	return domain.Pillar{
		Stem:   domain.HeavenlyStem(domain.Mod(fiveRatHourStems[stem]+int(branch), domain.StemCount)),
		Branch: branch,
	}
}

// LunarToGregorian returns local midnight of the given lunar date in loc.
func (c *LunarCalendar) LunarToGregorian(year, month, day int, leap bool, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if day < 1 || day > 30 || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: %d-%d-%d", ErrInvalidLunarDate, year, month, day)
	}
	months, err := c.yearMonths(year, loc)
	if err != nil {
		return time.Time{}, err
	}
	for _, m := range months {
		if m.number != month || m.leap != leap {
			continue
		}
		if day > m.days() {
			return time.Time{}, fmt.Errorf("%w: month %d of %d has %d days", ErrInvalidLunarDate, month, year, m.days())
		}
		return dateutil.Midnight(m.start+day-1, loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: year %d has no %smonth %d", ErrInvalidLunarDate, year, leapWord(leap), month)
}

// LeapMonth returns the number of the intercalary month of a lunar year, or 0.
func (c *LunarCalendar) LeapMonth(year int, loc *time.Location) (int, error) {
	if loc == nil {
		loc = time.UTC
	}
	months, err := c.yearMonths(year, loc)
	if err != nil {
		return 0, err
	}
	for _, m := range months {
		if m.leap {
			return m.number, nil
		}
	}
	return 0, nil
}

// MonthLengths returns the day count of each month of a lunar year in order,
// keyed by the month's numeric label (leap months carry an L prefix).
func (c *LunarCalendar) MonthLengths(year int, loc *time.Location) ([]string, []int, error) {
	if loc == nil {
		loc = time.UTC
	}
	months, err := c.yearMonths(year, loc)
	if err != nil {
		return nil, nil, err
	}
	labels := make([]string, len(months))
	days := make([]int, len(months))
	for i, m := range months {
		labels[i] = fmt.Sprint(m.number)
		if m.leap {
			labels[i] = "L" + labels[i]
		}
		days[i] = m.days()
	}
	return labels, days, nil
}

func leapWord(leap bool) string {
	if leap {
		return "leap "
	}
	return ""
}

// yearMonths collects the months labelled with lunar year `year`: month 1 up
// to month 10 fall in the sui starting the previous December, months 11 and
// 12 in the next one.
func (c *LunarCalendar) yearMonths(year int, loc *time.Location) ([]lunarMonth, error) {
	if year < MinSupportedYear-1 || year > MaxSupportedYear {
		return nil, fmt.Errorf("%w: lunar year %d outside %d-%d", ErrInvalidLunarDate, year, MinSupportedYear-1, MaxSupportedYear)
	}
	var out []lunarMonth
	for _, s := range []int{year - 1, year} {
		months, err := c.sui(s, loc)
		if err != nil {
			return nil, err
		}
		for _, m := range months {
			if m.year == year {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

// monthContaining finds the lunar month holding civil day `day`.
func (c *LunarCalendar) monthContaining(day, localYear int, loc *time.Location) (lunarMonth, error) {
	months, err := c.sui(localYear-1, loc)
	if err != nil {
		return lunarMonth{}, err
	}
	if day >= months[len(months)-1].end {
		if months, err = c.sui(localYear, loc); err != nil {
			return lunarMonth{}, err
		}
	}
	for _, m := range months {
		if day >= m.start && day < m.end {
			return m, nil
		}
	}
	return lunarMonth{}, fmt.Errorf("civil day %d not covered by sui %d", day, localYear-1)
}

// sui returns the months from the 11th month containing the December
// solstice of year s up to, not including, the next 11th month.
func (c *LunarCalendar) sui(s int, loc *time.Location) ([]lunarMonth, error) {
	ws, err := SolarTermTime(winterSolstice, float64(dateutil.JulianDayNumber(s, 12, 21)))
	if err != nil {
		return nil, err
	}
	next, err := SolarTermTime(winterSolstice, float64(dateutil.JulianDayNumber(s+1, 12, 21)))
	if err != nil {
		return nil, err
	}
	wsDay := dateutil.CivilDay(ws, loc)
	nextDay := dateutil.CivilDay(next, loc)

	k := c.newMoonOnOrBefore(wsDay, loc)
	var starts []int
	for {
		d := dateutil.CivilDay(NewMoon(k), loc)
		starts = append(starts, d)
		if d > nextDay {
			break
		}
		k++
	}
	// starts ends with the month after the next 11th month
	count := len(starts) - 2

	leapIndex := -1
	if count == 13 {
		for i := 1; i < 13; i++ {
			if !c.hasMajorTerm(starts[i], starts[i+1], loc) {
				leapIndex = i
				break
			}
		}
	}

	months := make([]lunarMonth, 0, count)
	number, year := 11, s
	for i := 0; i < count; i++ {
		leap := i == leapIndex
		if i > 0 && !leap {
			number = number%12 + 1
			if number == 1 {
				year = s + 1
			}
		}
		months = append(months, lunarMonth{year: year, number: number, leap: leap, start: starts[i], end: starts[i+1]})
	}
	return months, nil
}

func (c *LunarCalendar) newMoonOnOrBefore(day int, loc *time.Location) int {
	k := LunationNumber(dateutil.StartOfCivilDay(day, loc)) + 1
	for dateutil.CivilDay(NewMoon(k), loc) > day {
		k--
	}
	for dateutil.CivilDay(NewMoon(k+1), loc) <= day {
		k++
	}
	return k
}

// hasMajorTerm reports whether a principal term (multiple of 30°) begins
// between the civil days start and end.
func (c *LunarCalendar) hasMajorTerm(start, end int, loc *time.Location) bool {
	a := SolarLongitude(dateutil.StartOfCivilDay(start, loc))
	b := SolarLongitude(dateutil.StartOfCivilDay(end, loc))
	if b < a {
		b += 360
	}
	return math.Floor(b/30) > math.Floor(a/30)
}
