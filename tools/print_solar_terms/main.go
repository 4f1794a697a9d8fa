// Command print_solar_terms dumps the solar terms, new moons and lunar months
// of a Gregorian year, for checking the calendar against published almanacs.
//
//	go run ./tools/print_solar_terms 2025 Asia/Shanghai
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/calculation"
	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/pkg/dateutil"
)

func main() {
	year := time.Now().Year()
	loc := time.UTC
	if len(os.Args) > 1 {
		y, err := strconv.Atoi(os.Args[1])
		if err != nil {
			log.Fatalf("year: %v", err)
		}
		year = y
	}
	if len(os.Args) > 2 {
		l, err := time.LoadLocation(os.Args[2])
		if err != nil {
			log.Fatal(err)
		}
		loc = l
	}

	terms, err := calculation.SolarTermsOfYear(year)
	if err != nil {
		log.Fatal(err)
	}
	days := 365
	if dateutil.IsLeapYear(year) {
		days = 366
	}
	midYear := dateutil.FractionalYear(time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC))
	fmt.Printf("Solar terms %d (%s, %d days, ΔT %.1fs)\n", year, loc, days, calculation.DeltaT(midYear))
	for _, ev := range terms {
		major := ""
		if ev.Term.IsMajor() {
			major = "*"
		}
		fmt.Printf("  %-4s%s %-22s %3.0f°  %s\n", ev.Term, major, ev.Term.English(), ev.Term.Longitude(),
			ev.Time.In(loc).Format("2006-01-02 15:04"))
	}

	fmt.Println("New moons")
	jd := float64(dateutil.JulianDayNumber(year, 1, 1))
	end := float64(dateutil.JulianDayNumber(year+1, 1, 1))
	for k := calculation.LunationNumber(jd); ; k++ {
		nm := calculation.NewMoon(k)
		if nm >= end {
			break
		}
		if nm < jd {
			continue
		}
		fmt.Printf("  k=%-5d %s\n", k, dateutil.FromJulianDay(nm).In(loc).Format("2006-01-02 15:04"))
	}

	cal := calculation.NewLunarCalendar()
	labels, lengths, err := cal.MonthLengths(year, loc)
	if err != nil {
		log.Fatal(err)
	}
	leap, err := cal.LeapMonth(year, loc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Lunar year %d: %d months, leap month %d\n", year, len(labels), leap)
	for i, label := range labels {
		first, err := firstDay(cal, year, label, loc)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  %-4s %2d days from %s\n", label, lengths[i], first.Format("2006-01-02"))
	}
}

func firstDay(cal *calculation.LunarCalendar, year int, label string, loc *time.Location) (time.Time, error) {
	leap := label[0] == 'L'
	if leap {
		label = label[1:]
	}
	month, err := strconv.Atoi(label)
	if err != nil {
		return time.Time{}, err
	}
	return cal.LunarToGregorian(year, month, 1, leap, loc)
}
