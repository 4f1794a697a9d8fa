package calculation

import (
	"math"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
)

// ElementRelation is how element a stands toward element b.
type ElementRelation int

const (
	Unrelated ElementRelation = iota
	Same
	Generates
	GeneratedBy
	Destroys
	DestroyedBy
)

var relationNames = []string{"unrelated", "same", "generates", "generated_by", "destroys", "destroyed_by"}

func (r ElementRelation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return "unknown"
	}
	return relationNames[r]
}

// Relation classifies a relative to b. Any pair of distinct elements is
// related by exactly one of the four cycle relations.
func Relation(a, b domain.Element) ElementRelation {
	switch {
	case !a.Valid() || !b.Valid():
		return Unrelated
	case a == b:
		return Same
	case a.Generates() == b:
		return Generates
	case b.Generates() == a:
		return GeneratedBy
	case a.Destroys() == b:
		return Destroys
	case b.Destroys() == a:
		return DestroyedBy
	}
	return Unrelated
}

// idealShareScore is the score given to an element holding exactly 1/5 of the total.
const idealShareScore = 0.5

// BalanceScore maps element counts to strengths in [0, 1]. An element holding
// the even one-fifth share scores 0.5 and the scale saturates at 2/5.
func BalanceScore(counts map[domain.Element]int) map[domain.Element]float64 {
	total := 0
	for _, e := range domain.AllElements {
		total += counts[e]
	}
	out := make(map[domain.Element]float64, len(domain.AllElements))
	for _, e := range domain.AllElements {
		if total == 0 {
			out[e] = 0
			continue
		}
		share := float64(counts[e]) / float64(total)
		out[e] = math.Min(1, share*idealShareScore*float64(len(domain.AllElements)))
	}
	return out
}

// AnalyzePillars reports the element distribution of the four pillar stems.
func AnalyzePillars(ld *domain.LunarDate) domain.PillarComposition {
	counts := make(map[domain.Element]int, len(domain.AllElements))
	for _, e := range domain.AllElements {
		counts[e] = 0
	}
	for _, p := range ld.Pillars() {
		counts[p.Stem.Element()]++
	}

	maxCount, minCount := 0, math.MaxInt
	for _, e := range domain.AllElements {
		maxCount = max(maxCount, counts[e])
		minCount = min(minCount, counts[e])
	}

	comp := domain.PillarComposition{
		Distribution: counts,
		Dominant:     []domain.Element{},
		Weak:         []domain.Element{},
		Balanced:     maxCount-minCount <= 1,
		Balance:      BalanceScore(counts),
	}
	for _, e := range domain.AllElements {
		if counts[e] == maxCount {
			comp.Dominant = append(comp.Dominant, e)
		}
		if counts[e] == minCount {
			comp.Weak = append(comp.Weak, e)
		}
	}
	return comp
}
