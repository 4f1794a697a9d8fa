package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/pkg/decimal"
)

const (
	ruleWidth = 81
	cellWidth = 18
	barWidth  = 10
)

// ConsoleFormatter renders the full report: header, Lo Shu grid, Taiyi reading.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	var buf bytes.Buffer
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "QI MEN DUN JIA & TAIYI DIVINATION REPORT")
	fmt.Fprintln(&buf, rule)
	writeLunarHeader(&buf, report)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "CONVENTIONS:")
	for _, n := range GenerateNotes(report) {
		fmt.Fprintf(&buf, "• %s\n", n)
	}
	fmt.Fprintln(&buf)

	if report.QiMen != nil {
		writeQiMen(&buf, report.QiMen)
	}
	if report.Taiyi != nil {
		writeTaiyi(&buf, report.Taiyi)
	}
	writeComposition(&buf, report.Composition)

	rec := AnalyzeReport(report)
	if rec.Palace != 0 {
		fmt.Fprintln(&buf, "RECOMMENDATION")
		fmt.Fprintln(&buf, strings.Repeat("-", 45))
		fmt.Fprintf(&buf, "Best palace: %d %s via %s, score %s\n", rec.Palace, FormatDirection(rec.Direction),
			optionalName(rec.Gate), FormatScore(rec.Score))
		fmt.Fprintf(&buf, "Auspicious palaces: %s; dominant element %s (%s)\n", rec.AuspiciousShare.Percent(),
			rec.DominantElement, rec.DominantElement.English())
	}
	return buf.Bytes(), nil
}

func writeLunarHeader(w io.Writer, r *domain.Report) {
	ld := r.LunarDate
	fmt.Fprintf(w, "Instant:      %s\n", r.Instant.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "Lunar date:   %s (%s)\n", ld, ld.Numeric())
	fmt.Fprintf(w, "Pillars:      年 %s  月 %s  日 %s  時 %s\n", ld.YearPillar, ld.MonthPillar, ld.DayPillar, ld.HourPillar)
	fmt.Fprintf(w, "Solar term:   %s (%s), longitude %.2f°\n", ld.SolarTerm, ld.SolarTerm.English(), ld.SolarLongitude)
	fmt.Fprintf(w, "Hour period:  %s, %s\n", ld.HourPillar.Branch.TimePeriod(), ld.HourPillar.Branch.EnergyQuality())
}

func writeQiMen(w io.Writer, chart *domain.QiMenChart) {
	fmt.Fprintf(w, "QI MEN DUN JIA (%s)\n", chart.TimeFrame)
	fmt.Fprintln(w, strings.Repeat("=", 45))
	dun := "Yang"
	if !chart.IsYangDun {
		dun = "Yin"
	}
	fmt.Fprintf(w, "%s dun, duty chief in palace %d\n", dun, chart.DutyChiefPalace)
	writeGrid(w, chart)
	fmt.Fprintf(w, "Pattern: %s (%d of 9 auspicious)\n", chart.OverallPattern, chart.AuspiciousCount())
	fmt.Fprintf(w, "Favorable directions:   %s\n", joinDirections(chart.FavorableDirections))
	fmt.Fprintf(w, "Unfavorable directions: %s\n", joinDirections(chart.UnfavorableDirections))
	fmt.Fprintln(w, "Element balance:")
	writeElementBars(w, chart.ElementBalance)
	fmt.Fprintf(w, "Assessment: %s\n", chart.StrategicAssessment)
	fmt.Fprintf(w, "Timing: %s\n", chart.OptimalTiming)
	fmt.Fprintln(w)
}

// writeGrid draws the chart as the Lo Shu square, south at the top.
func writeGrid(w io.Writer, chart *domain.QiMenChart) {
	border := "+" + strings.Repeat(strings.Repeat("-", cellWidth)+"+", 3)
	fmt.Fprintln(w, border)
	for _, row := range domain.LoShuGrid {
		var lines [4][]string
		for _, n := range row {
			for i, l := range palaceCell(chart, n) {
				lines[i] = append(lines[i], " "+padCell(l, cellWidth-1))
			}
		}
		for _, l := range lines {
			fmt.Fprintf(w, "|%s|\n", strings.Join(l, "|"))
		}
		fmt.Fprintln(w, border)
	}
}

func palaceCell(chart *domain.QiMenChart, n int) [4]string {
	p := domain.MustPalace(n)
	cfg := chart.Configurations[n]
	head := fmt.Sprintf("%d %s %s", n, p.Name, p.Direction)
	if n == chart.DutyChiefPalace {
		head += " ★"
	}
	star := cfg.Star.String()
	if cfg.LodgedStar != nil {
		star += "+" + strings.TrimPrefix(cfg.LodgedStar.String(), "天")
	}
	mark := "✗"
	if cfg.IsAuspicious {
		mark = "✓"
	}
	return [4]string{
		head,
		optionalName(cfg.Gate) + " " + star,
		optionalName(cfg.Spirit) + " " + cfg.HeavenlyStem.String() + cfg.EarthlyBranch.String(),
		fmt.Sprintf("%s %s %s", cfg.Element, FormatScore(cfg.Score), mark),
	}
}

func joinDirections(dirs []domain.Direction) string {
	if len(dirs) == 0 {
		return "none"
	}
	parts := make([]string, len(dirs))
	for i, d := range dirs {
		parts[i] = FormatDirection(d)
	}
	return strings.Join(parts, ", ")
}

func writeElementBars(w io.Writer, scores map[domain.Element]float64) {
	for _, e := range domain.AllElements {
		r := decimal.NewRatio(scores[e])
		fmt.Fprintf(w, "  %s %-6s %s %s\n", e, e.English(), r, r.Bar(barWidth))
	}
}

func writeTaiyi(w io.Writer, div *domain.TaiyiDivination) {
	fmt.Fprintln(w, "TAIYI SHENSHU")
	fmt.Fprintln(w, strings.Repeat("=", 45))
	acc := div.AccumulatedYears
	fmt.Fprintf(w, "Accumulated years: %d (cycle %d, remainder %d), palace %d\n",
		acc.TotalYears, acc.CycleYears, acc.RemainderYears, acc.PalacePosition)
	for _, pos := range []domain.TaiyiStarPosition{div.MasterStar, div.GuestStar} {
		role := "Guest"
		if pos.IsMaster {
			role = "Master"
		}
		fmt.Fprintf(w, "%s star: %s (%s) in palace %d %s, strength %s (%s)\n", role, pos.Star, pos.Star.English(),
			pos.Palace, domain.MustPalace(pos.Palace).Name, FormatStrength(pos.InfluenceStrength), pos.StrengthLabel())
	}
	fmt.Fprintf(w, "Active palace: %d\n", div.ActivePalace)
	fmt.Fprintf(w, "Supporting palaces: %s\n", joinInts(div.SupportingPalaces))
	fmt.Fprintf(w, "Conflicting palaces: %s\n", joinInts(div.ConflictingPalaces))
	fmt.Fprintln(w, "Elemental influences:")
	writeElementBars(w, div.ElementalInfluences)
	fmt.Fprintf(w, "Assessment: %s\n", div.OverallAssessment)
	fmt.Fprintf(w, "Guidance: %s\n", div.StrategicGuidance)
	for _, note := range div.TimingAnalysis {
		fmt.Fprintf(w, "  %-10s %s\n", note.Horizon+":", note.Note)
	}
	fmt.Fprintln(w)
}

func writeComposition(w io.Writer, comp domain.PillarComposition) {
	if comp.Distribution == nil {
		return
	}
	fmt.Fprintln(w, "PILLAR COMPOSITION")
	fmt.Fprintln(w, strings.Repeat("-", 45))
	parts := make([]string, 0, len(domain.AllElements))
	for _, e := range domain.AllElements {
		parts = append(parts, fmt.Sprintf("%s %d", e, comp.Distribution[e]))
	}
	balanced := "no"
	if comp.Balanced {
		balanced = "yes"
	}
	fmt.Fprintf(w, "Stems: %s; dominant %s; weak %s; balanced %s\n", strings.Join(parts, "  "),
		joinElements(comp.Dominant), joinElements(comp.Weak), balanced)
	fmt.Fprintln(w)
}

func joinInts(xs []int) string {
	if len(xs) == 0 {
		return "none"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = intToString(x)
	}
	return strings.Join(parts, ", ")
}

func joinElements(es []domain.Element) string {
	if len(es) == 0 {
		return "none"
	}
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
