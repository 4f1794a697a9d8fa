package calculation

import (
	"fmt"
	"strings"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
)

var (
	// yangRing is the Lo Shu flight path of the outer palaces in a Yang dun;
	// yinRing is the traversal used in a Yin dun.
	yangRing = [8]int{1, 8, 3, 4, 9, 2, 7, 6}
	yinRing  = [8]int{1, 6, 7, 2, 9, 4, 3, 8}

	gateOrder   = [domain.GateCount]domain.Gate{domain.RestGate, domain.LifeGate, domain.HarmGate, domain.BlockGate, domain.ViewGate, domain.DeathGate, domain.ShockGate, domain.OpenGate}
	spiritOrder = [domain.SpiritCount]domain.Spirit{domain.ZhiFuSpirit, domain.TengSheSpirit, domain.TaiYinSpirit, domain.LiuHeSpirit, domain.BaiHuSpirit, domain.XuanWuSpirit, domain.JiuDiSpirit, domain.JiuTianSpirit}
	// outer stars in yangRing order of their home palaces
	outerStars = [8]domain.Star{domain.PengStar, domain.RenStar, domain.ChongStar, domain.FuStar, domain.YingStar, domain.RuiStar, domain.ZhuStar, domain.XinStar}

	elementScores = map[ElementRelation]int{
		Same:        1,
		Generates:   1,
		GeneratedBy: 0,
		Destroys:    -1,
		DestroyedBy: -1,
	}
)

const (
	centerEnergyQuality = "Central command, coordination point"
	centerApplication   = "Overall coordination and balance"
)

// QiMenCalculator builds Qi Men Dun Jia charts.
type QiMenCalculator struct {
	calendar *LunarCalendar
}

// NewQiMenCalculator creates a calculator over the given calendar.
func NewQiMenCalculator(calendar *LunarCalendar) *QiMenCalculator {
	if calendar == nil {
		calendar = NewLunarCalendar()
	}
	return &QiMenCalculator{calendar: calendar}
}

// Calculate builds the hourly (時家) chart for t.
func (q *QiMenCalculator) Calculate(t time.Time) (*domain.QiMenChart, error) {
	return q.CalculateFrame(t, domain.HourFrame)
}

// CalculateFrame builds the chart for t driven by the pillar of the given frame.
func (q *QiMenCalculator) CalculateFrame(t time.Time, frame domain.TimeFrame) (*domain.QiMenChart, error) {
	if !frame.Valid() {
		return nil, fmt.Errorf("unsupported time frame %d", frame)
	}
	ld, err := q.calendar.GregorianToLunar(t)
	if err != nil {
		return nil, err
	}
	return BuildQiMenChart(ld, frame), nil
}

// IsYangDun reports whether the sun lies between the winter and summer
// solstices, the half of the year in which the rings are walked forward.
func IsYangDun(solarLongitude float64) bool {
	return solarLongitude >= 270 || solarLongitude < 90
}

func ringFor(yang bool) [8]int {
	if yang {
		return yangRing
	}
	return yinRing
}

func ringIndex(ring [8]int, palace int) int {
	for i, p := range ring {
		if p == palace {
			return i
		}
	}
	return -1
}

// DutyChiefPalace returns the palace anchoring gates and spirits.
func DutyChiefPalace(ld *domain.LunarDate, frame domain.TimeFrame, yang bool) int {
	ring := ringFor(yang)
	switch frame {
	case domain.DayFrame:
		return ring[int(ld.DayPillar.Stem)%8]
	case domain.MonthFrame:
		return ring[int(ld.MonthPillar.Stem)%8]
	case domain.YearFrame:
		return ring[int(ld.YearPillar.Stem)%8]
	}
	return ring[(int(ld.DayPillar.Stem)*6+int(ld.HourPillar.Branch))%8]
}

func framePillar(ld *domain.LunarDate, frame domain.TimeFrame) domain.Pillar {
	switch frame {
	case domain.DayFrame:
		return ld.DayPillar
	case domain.MonthFrame:
		return ld.MonthPillar
	case domain.YearFrame:
		return ld.YearPillar
	}
	return ld.HourPillar
}

// PlaceGates walks the eight gates from the duty chief along the dun's ring.
func PlaceGates(duty int, yang bool) map[int]domain.Gate {
	ring := ringFor(yang)
	start := ringIndex(ring, duty)
	out := make(map[int]domain.Gate, domain.GateCount)
	for i, g := range gateOrder {
		out[ring[(start+i)%8]] = g
	}
	return out
}

// PlaceSpirits walks the eight spirits clockwise from the duty chief in both
// duns, so 值符 always shares the duty chief palace.
func PlaceSpirits(duty int) map[int]domain.Spirit {
	start := ringIndex(yangRing, duty)
	out := make(map[int]domain.Spirit, domain.SpiritCount)
	for i, s := range spiritOrder {
		out[yangRing[(start+i)%8]] = s
	}
	return out
}

// PlaceStars rotates the outer stars from their home palaces by the frame
// pillar's position in the nine-star cycle. Step 8 is 天禽's own slot: the
// star returns to the center and the ring shows its home layout. 天禽 never
// leaves palace 5.
func PlaceStars(pillar domain.Pillar, yang bool) map[int]domain.Star {
	step := pillar.Index() % domain.StarCount
	if step == domain.StarCount-1 {
		step = 0
	}
	out := make(map[int]domain.Star, domain.StarCount)
	for j, s := range outerStars {
		pos := j + step
		if !yang {
			pos = j - step
		}
		out[yangRing[domain.Mod(pos, 8)]] = s
	}
	out[domain.CenterPalace] = domain.QinStar
	return out
}

// PalaceScore sums the gate, spirit and element contributions of a palace;
// the center has no gate or spirit and is scored on its element alone.
func PalaceScore(palace domain.Palace, gate *domain.Gate, spirit *domain.Spirit, dayElement domain.Element) int {
	score := elementScores[Relation(palace.Element, dayElement)]
	if gate != nil {
		score += polarityScore(gate.IsAuspicious())
	}
	if spirit != nil {
		score += polarityScore(spirit.IsAuspicious())
	}
	return score
}

func polarityScore(good bool) int {
	if good {
		return 1
	}
	return -1
}

// BuildQiMenChart lays out a complete chart from a lunar date.
func BuildQiMenChart(ld *domain.LunarDate, frame domain.TimeFrame) *domain.QiMenChart {
	yang := IsYangDun(ld.SolarLongitude)
	duty := DutyChiefPalace(ld, frame, yang)
	gates := PlaceGates(duty, yang)
	spirits := PlaceSpirits(duty)
	stars := PlaceStars(framePillar(ld, frame), yang)
	dayElement := ld.DayPillar.Stem.Element()
	branchStart := ld.HourPillar.Branch.StartHour()

	configs := make(map[int]domain.QiMenConfiguration, 9)
	elementCounts := make(map[domain.Element]int, len(domain.AllElements))
	for n := 1; n <= 9; n++ {
		palace := domain.MustPalace(n)
		cfg := domain.QiMenConfiguration{
			PalaceNumber:  n,
			Star:          stars[n],
			HeavenlyStem:  domain.HeavenlyStem(domain.Mod(n+ld.Day-1, domain.StemCount)),
			EarthlyBranch: domain.EarthlyBranch(domain.Mod(n+branchStart-1, domain.BranchCount)),
		}
		if n == domain.CenterPalace {
			cfg.Element = palace.Element
			cfg.EnergyQuality = centerEnergyQuality
			cfg.StrategicApplication = centerApplication
			cfg.HeavenlyStem = ld.DayPillar.Stem
			cfg.EarthlyBranch = ld.HourPillar.Branch
		} else {
			gate, spirit := gates[n], spirits[n]
			cfg.Gate = &gate
			cfg.Spirit = &spirit
			cfg.Element = gate.Element()
			cfg.EnergyQuality = gate.EnergyQuality()
			cfg.StrategicApplication = gate.StrategicApplication()
		}
		if stars[n] == domain.RuiStar {
			lodged := domain.QinStar
			cfg.LodgedStar = &lodged
		}
		cfg.Score = PalaceScore(palace, cfg.Gate, cfg.Spirit, dayElement)
		cfg.IsAuspicious = cfg.Score > 0
		configs[n] = cfg
		elementCounts[cfg.Element]++
	}

	chart := &domain.QiMenChart{
		CalculationTime: ld.Instant,
		LunarDate:       *ld,
		TimeFrame:       frame,
		IsYangDun:       yang,
		DutyChiefPalace: duty,
		Configurations:  configs,
		ElementBalance:  BalanceScore(elementCounts),
	}
	chart.Pattern = domain.ClassifyPattern(chart.AuspiciousCount())
	chart.OverallPattern = chart.Pattern.String() + " - " + chart.Pattern.Description()
	chart.FavorableDirections, chart.UnfavorableDirections = chartDirections(configs)
	chart.StrategicAssessment = strategicAssessment(configs[duty], duty)
	chart.OptimalTiming = optimalTiming(ld, frame, chart.Pattern)
	return chart
}

func chartDirections(configs map[int]domain.QiMenConfiguration) (favorable, unfavorable []domain.Direction) {
	favorable, unfavorable = []domain.Direction{}, []domain.Direction{}
	seen := make(map[domain.Direction]bool)
	for n := 1; n <= 9; n++ {
		if n == domain.CenterPalace {
			continue
		}
		dir := domain.MustPalace(n).Direction
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if configs[n].IsAuspicious {
			favorable = append(favorable, dir)
		} else {
			unfavorable = append(unfavorable, dir)
		}
	}
	return favorable, unfavorable
}

func strategicAssessment(duty domain.QiMenConfiguration, palace int) string {
	parts := make([]string, 0, 3)
	if duty.IsAuspicious {
		parts = append(parts, fmt.Sprintf("Command center is favorable in Palace %d", palace))
	} else {
		parts = append(parts, fmt.Sprintf("Command center faces challenges in Palace %d", palace))
	}
	if duty.Gate != nil {
		parts = append(parts, fmt.Sprintf("Primary strategy follows %s - %s", duty.Gate, duty.StrategicApplication))
	}
	parts = append(parts, "Energy quality: "+duty.EnergyQuality)
	return strings.Join(parts, "; ") + "."
}

func optimalTiming(ld *domain.LunarDate, frame domain.TimeFrame, pattern domain.PatternClass) string {
	return fmt.Sprintf("Current %s period shows %s conditions; the %s hour favors %s",
		frame, strings.ToLower(pattern.String()), ld.HourPillar.Branch.TimePeriod(),
		strings.ToLower(ld.HourPillar.Branch.OptimalActivities()[0]))
}
