package output

import (
	"sort"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/pkg/decimal"
)

// Recommendation is the palace a report points to most strongly.
type Recommendation struct {
	Palace          int
	Direction       domain.Direction
	Gate            *domain.Gate
	Score           int
	AuspiciousShare decimal.Ratio
	DominantElement domain.Element
}

// AnalyzeReport picks the highest scoring outer palace, the duty chief's
// palace on ties and then the lowest number.
func AnalyzeReport(report *domain.Report) Recommendation {
	if report == nil || report.QiMen == nil {
		return Recommendation{}
	}
	chart := report.QiMen
	type ranked struct {
		palace int
		score  int
	}
	var ranks []ranked
	for n, cfg := range chart.Configurations {
		if n == domain.CenterPalace {
			continue
		}
		ranks = append(ranks, ranked{n, cfg.Score})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].score != ranks[j].score {
			return ranks[i].score > ranks[j].score
		}
		if (ranks[i].palace == chart.DutyChiefPalace) != (ranks[j].palace == chart.DutyChiefPalace) {
			return ranks[i].palace == chart.DutyChiefPalace
		}
		return ranks[i].palace < ranks[j].palace
	})
	best := chart.Configurations[ranks[0].palace]
	rec := Recommendation{
		Palace:          best.PalaceNumber,
		Direction:       domain.MustPalace(best.PalaceNumber).Direction,
		Gate:            best.Gate,
		Score:           best.Score,
		AuspiciousShare: decimal.NewRatio(float64(chart.AuspiciousCount()) / 9),
		DominantElement: dominant(chart.ElementBalance),
	}
	return rec
}

func dominant(scores map[domain.Element]float64) domain.Element {
	best := domain.AllElements[0]
	for _, e := range domain.AllElements[1:] {
		if scores[e] > scores[best] {
			best = e
		}
	}
	return best
}
