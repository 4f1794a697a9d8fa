package calculation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
)

const (
	// TaiyiCycleYears is the length of the great Taiyi cycle.
	TaiyiCycleYears = 72
	// taiyiYearsPerPalace spreads the cycle over all nine palaces.
	taiyiYearsPerPalace = TaiyiCycleYears / 9
)

var (
	taiyiForwardRing = [8]int{1, 2, 3, 4, 6, 7, 8, 9}
	taiyiReverseRing = [8]int{9, 8, 7, 6, 4, 3, 2, 1}

	// master star strength by the year stem element's relation to the palace element
	masterStrength = map[ElementRelation]float64{
		Same:        1.0,
		Generates:   0.8,
		GeneratedBy: 0.7,
		Destroys:    0.3,
		DestroyedBy: 0.2,
	}

	guestPeakHours = map[int]bool{5: true, 11: true, 17: true, 23: true}

	// guestSeasonShift advances the guest along its ring by lunar month:
	// none from the 12th through the 2nd month, then one step more every
	// three months.
	guestSeasonShift = [13]int{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 0}
)

const (
	neutralStrength = 0.5
	peakHourFactor  = 1.0
	offPeakFactor   = 0.6
)

// TaiyiCalculator produces Taiyi Shenshu readings.
type TaiyiCalculator struct {
	calendar *LunarCalendar
}

// NewTaiyiCalculator creates a calculator over the given calendar.
func NewTaiyiCalculator(calendar *LunarCalendar) *TaiyiCalculator {
	if calendar == nil {
		calendar = NewLunarCalendar()
	}
	return &TaiyiCalculator{calendar: calendar}
}

// Divine computes the reading for t.
func (c *TaiyiCalculator) Divine(t time.Time) (*domain.TaiyiDivination, error) {
	ld, err := c.calendar.GregorianToLunar(t)
	if err != nil {
		return nil, err
	}
	return BuildTaiyiDivination(ld), nil
}

// AccumulateYears counts lunar years from the Taiyi epoch and places the
// remainder of the 72-year cycle in one of the nine palaces, eight years each.
func AccumulateYears(lunarYear int) domain.AccumulatedYears {
	total := lunarYear - TaiyiEpochYear
	rem := domain.Mod(total, TaiyiCycleYears)
	return domain.AccumulatedYears{
		TotalYears:     total,
		CycleYears:     domain.FloorDiv(total, TaiyiCycleYears),
		RemainderYears: rem,
		PalacePosition: rem/taiyiYearsPerPalace + 1,
	}
}

// MasterStarPosition selects the master star by year stem. Its palace starts
// from the year stem folded onto the eight outer palaces, then moves by the
// month (mod 12) and the day (mod 30), each step folded back onto the ring.
func MasterStarPosition(ld *domain.LunarDate) domain.TaiyiStarPosition {
	stem := ld.YearPillar.Stem
	idx := int(stem) % 8
	idx = (idx + domain.Mod(ld.Month-1, 12)) % 8
	idx = (idx + domain.Mod(ld.Day-1, 30)) % 8
	palace := taiyiForwardRing[idx]

	strength, ok := masterStrength[Relation(stem.Element(), domain.MustPalace(palace).Element)]
	if !ok {
		strength = neutralStrength
	}
	return domain.TaiyiStarPosition{
		Star:              domain.MasterStars[stem],
		Palace:            palace,
		IsMaster:          true,
		InfluenceStrength: strength,
	}
}

// GuestStarPosition selects the guest star by day branch and places it on the
// reverse ring by day and hour branch together, shifted by season.
func GuestStarPosition(ld *domain.LunarDate) domain.TaiyiStarPosition {
	dayBranch := int(ld.DayPillar.Branch)
	palace := taiyiReverseRing[(dayBranch+int(ld.HourPillar.Branch)+seasonShift(ld.Month))%8]
	return domain.TaiyiStarPosition{
		Star:              domain.GuestStars[dayBranch%len(domain.GuestStars)],
		Palace:            palace,
		IsMaster:          false,
		InfluenceStrength: guestStrength(ld.Instant.Hour(), ld.Day),
	}
}

func seasonShift(month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return guestSeasonShift[month]
}

// guestStrength peaks at dawn, noon, dusk and midnight and follows the phase
// of the lunar month.
func guestStrength(hour, day int) float64 {
	factor := offPeakFactor
	if guestPeakHours[hour] {
		factor = peakHourFactor
	}
	phase := 0.5 + 0.5*math.Sin(2*math.Pi*float64(day)/30)
	return math.Min(1, factor*phase)
}

// PalaceRelationships classifies every palace other than the master's.
func PalaceRelationships(master int) (supporting, conflicting []int) {
	supporting, conflicting = []int{}, []int{}
	me := domain.MustPalace(master).Element
	for _, p := range domain.Palaces() {
		if p.Number == master {
			continue
		}
		switch Relation(me, p.Element) {
		case Generates, GeneratedBy:
			supporting = append(supporting, p.Number)
		case Destroys, DestroyedBy:
			conflicting = append(conflicting, p.Number)
		}
	}
	return supporting, conflicting
}

// ElementalInfluences scores each element by how many of the given palace
// elements equal it or generate it.
func ElementalInfluences(palaces ...int) map[domain.Element]float64 {
	counts := make(map[domain.Element]int, len(domain.AllElements))
	for _, n := range palaces {
		src := domain.MustPalace(n).Element
		for _, e := range domain.AllElements {
			if src == e || src.Generates() == e {
				counts[e]++
			}
		}
	}
	return BalanceScore(counts)
}

// BuildTaiyiDivination assembles the reading from a lunar date.
func BuildTaiyiDivination(ld *domain.LunarDate) *domain.TaiyiDivination {
	acc := AccumulateYears(ld.Year)
	master := MasterStarPosition(ld)
	guest := GuestStarPosition(ld)
	supporting, conflicting := PalaceRelationships(master.Palace)
	influences := ElementalInfluences(master.Palace, guest.Palace, acc.PalacePosition)

	return &domain.TaiyiDivination{
		QueryTime:           ld.Instant,
		LunarDate:           *ld,
		AccumulatedYears:    acc,
		MasterStar:          master,
		GuestStar:           guest,
		ActivePalace:        acc.PalacePosition,
		SupportingPalaces:   supporting,
		ConflictingPalaces:  conflicting,
		ElementalInfluences: influences,
		OverallAssessment:   taiyiAssessment(master, guest, len(supporting), len(conflicting)),
		StrategicGuidance:   taiyiGuidance(master, guest, influences),
		TimingAnalysis:      taiyiTiming(ld, master),
	}
}

// DominantElement returns the strongest element, earliest in generation order on ties.
func DominantElement(scores map[domain.Element]float64) domain.Element {
	best := domain.AllElements[0]
	for _, e := range domain.AllElements[1:] {
		if scores[e] > scores[best] {
			best = e
		}
	}
	return best
}

func taiyiAssessment(master, guest domain.TaiyiStarPosition, supporting, conflicting int) string {
	parts := []string{
		fmt.Sprintf("Master star %s resides in %s, with %s influence", master.Star, domain.MustPalace(master.Palace).Name, master.StrengthLabel()),
		fmt.Sprintf("Guest star %s resides in %s, with %s influence", guest.Star, domain.MustPalace(guest.Palace).Name, guest.StrengthLabel()),
	}
	switch {
	case supporting > conflicting:
		parts = append(parts, "Palace positions provide mutual support, creating favorable circumstances")
	case conflicting > supporting:
		parts = append(parts, "Palace positions show conflicts, requiring cautious action")
	default:
		parts = append(parts, "Palace positions are balanced, suggesting a path of moderation")
	}
	return strings.Join(parts, "; ") + "."
}

func taiyiGuidance(master, guest domain.TaiyiStarPosition, influences map[domain.Element]float64) string {
	parts := []string{
		"Primary strategy: " + domain.MustPalace(master.Palace).StrategicUse,
		"Supporting strategy: " + domain.MustPalace(guest.Palace).StrategicUse,
		"Elemental guidance: " + DominantElement(influences).Attributes().StrategicApplication,
	}
	return strings.Join(parts, "; ") + "."
}

func taiyiTiming(ld *domain.LunarDate, master domain.TaiyiStarPosition) []domain.TimingNote {
	branch := ld.HourPillar.Branch
	palace := domain.MustPalace(master.Palace)
	return []domain.TimingNote{
		{Horizon: "Today", Note: fmt.Sprintf("Favorable for %s, avoid %s", strings.ToLower(branch.OptimalActivities()[0]), strings.ToLower(branch.AvoidActivities()[0]))},
		{Horizon: "This Month", Note: fmt.Sprintf("Focus on developing %s element activities", palace.Element.English())},
		{Horizon: "This Year", Note: fmt.Sprintf("Year fortune guided by %s element dominance", ld.YearPillar.Stem.Element().English())},
		{Horizon: "Long-term", Note: "Cultivate " + strings.ToLower(palace.CultivationFocus)},
	}
}
