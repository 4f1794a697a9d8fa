package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidPillar is returned for a stem/branch pairing outside the sexagenary cycle.
var ErrInvalidPillar = errors.New("invalid sexagenary pillar")

// HeavenlyStem is one of the ten celestial stems (天干), 0 = 甲.
type HeavenlyStem int

// EarthlyBranch is one of the twelve terrestrial branches (地支), 0 = 子.
type EarthlyBranch int

const (
	StemCount   = 10
	BranchCount = 12
	CycleLength = 60
)

type stemInfo struct {
	name        string
	pinyin      string
	element     Element
	polarity    Polarity
	description string
	application string
}

var stemTable = [StemCount]stemInfo{
	{"甲", "jiǎ", Wood, Yang, "Towering tree, leadership, pioneering spirit, bold initiative", "Initiate new projects, take leadership roles"},
	{"乙", "yǐ", Wood, Yin, "Flexible vine, adaptation, gentle persistence, diplomatic influence", "Practice diplomacy, work on gradual improvements"},
	{"丙", "bǐng", Fire, Yang, "Blazing sun, brilliant manifestation, public recognition, charismatic authority", "Engage in public activities, seek recognition"},
	{"丁", "dīng", Fire, Yin, "Steady flame, sustained focus, inner illumination, refined culture", "Focus on cultural refinement, inner development"},
	{"戊", "wù", Earth, Yang, "Mountain, stability, reliable foundation, protective strength", "Build foundations, provide stability for others"},
	{"己", "jǐ", Earth, Yin, "Fertile soil, nourishment, transformation, supportive cultivation", "Nurture relationships, facilitate transformations"},
	{"庚", "gēng", Metal, Yang, "Sword, decisive action, cutting through obstacles, military precision", "Make decisive cuts, eliminate obstacles"},
	{"辛", "xīn", Metal, Yin, "Jewelry, refinement, precious beauty, artistic perfection", "Refine quality, appreciate beauty"},
	{"壬", "rén", Water, Yang, "Ocean, vast potential, deep wisdom, overwhelming force", "Engage with vast possibilities, deep planning"},
	{"癸", "guǐ", Water, Yin, "Dew, subtle influence, gentle nourishment, hidden depth", "Work subtly, provide hidden support"},
}

type branchInfo struct {
	name     string
	pinyin   string
	animal   string
	animalEn string
	element  Element
	energy   string
	optimal  []string
	avoid    []string
}

var branchTable = [BranchCount]branchInfo{
	{"子", "zǐ", "鼠", "Rat", Water, "Deep yin, hidden potential, new beginnings in darkness",
		[]string{"Deep meditation", "planning", "accessing subconscious wisdom"},
		[]string{"Heavy physical activity", "important decisions requiring yang energy"}},
	{"丑", "chǒu", "牛", "Ox", Earth, "Yin stabilizing, foundation building, patient endurance",
		[]string{"Detailed work", "persistent effort", "liver detoxification"},
		[]string{"Creative projects requiring inspiration", "social activities"}},
	{"寅", "yín", "虎", "Tiger", Wood, "Yang birth, courage emerging, brave initiatives",
		[]string{"Spiritual practice", "exercise", "bold planning"},
		[]string{"Timid activities", "excessive caution"}},
	{"卯", "mǎo", "兔", "Rabbit", Wood, "Yang rising gently, growth, careful advancement",
		[]string{"Gentle exercise", "gradual progress", "diplomatic communication"},
		[]string{"Aggressive actions", "harsh decisions"}},
	{"辰", "chén", "龙", "Dragon", Earth, "Transformation power, dynamic change, magical potential",
		[]string{"Important transformations", "breakthrough work", "creative projects"},
		[]string{"Routine tasks", "resistance to change"}},
	{"巳", "sì", "蛇", "Snake", Fire, "Wisdom emerging, intelligent strategy, subtle influence",
		[]string{"Strategic planning", "intellectual work", "subtle negotiations"},
		[]string{"Impulsive actions", "obvious approaches"}},
	{"午", "wǔ", "马", "Horse", Fire, "Peak yang, maximum activity, dynamic movement",
		[]string{"High-energy tasks", "public speaking", "competitive activities"},
		[]string{"Rest", "introspection", "delicate work"}},
	{"未", "wèi", "羊", "Goat", Earth, "Yang declining, group harmony, collective benefit",
		[]string{"Team building", "consensus building", "nurturing others"},
		[]string{"Individual competition", "aggressive self-assertion"}},
	{"申", "shēn", "猴", "Monkey", Metal, "Intelligent adaptation, clever solutions, playful innovation",
		[]string{"Problem-solving", "learning new skills", "adaptive strategies"},
		[]string{"Rigid approaches", "serious formality"}},
	{"酉", "yǒu", "鸡", "Rooster", Metal, "Precision, punctuality, harvest completion",
		[]string{"Completing tasks", "quality control", "precise work"},
		[]string{"Starting new projects", "imprecise activities"}},
	{"戌", "xū", "狗", "Dog", Earth, "Loyal protection, security, faithful completion",
		[]string{"Protecting achievements", "security planning", "loyal service"},
		[]string{"Betrayal", "abandoning responsibilities"}},
	{"亥", "hài", "猪", "Pig", Water, "Abundant blessing, satisfaction, return to source",
		[]string{"Gratitude practice", "enjoying achievements", "preparing for rest"},
		[]string{"Excessive ambition", "dissatisfaction with current blessings"}},
}

var (
	stemNames    = tableNames(StemCount, func(i int) string { return stemTable[i].name })
	stemPinyin   = tableNames(StemCount, func(i int) string { return stemTable[i].pinyin })
	branchNames  = tableNames(BranchCount, func(i int) string { return branchTable[i].name })
	branchPinyin = tableNames(BranchCount, func(i int) string { return branchTable[i].pinyin })
)

func tableNames(n int, f func(int) string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = f(i)
	}
	return out
}

func (s HeavenlyStem) Valid() bool                  { return s >= 0 && s < StemCount }
func (s HeavenlyStem) String() string               { return nameAt(stemNames, int(s)) }
func (s HeavenlyStem) Pinyin() string               { return stemTable[s].pinyin }
func (s HeavenlyStem) Element() Element             { return stemTable[s].element }
func (s HeavenlyStem) Polarity() Polarity           { return stemTable[s].polarity }
func (s HeavenlyStem) Description() string          { return stemTable[s].description }
func (s HeavenlyStem) StrategicApplication() string { return stemTable[s].application }

func (s HeavenlyStem) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *HeavenlyStem) UnmarshalText(text []byte) error {
	i, err := lookupName("heavenly stem", string(text), stemNames, stemPinyin)
	if err != nil {
		return err
	}
	*s = HeavenlyStem(i)
	return nil
}

func (b EarthlyBranch) Valid() bool      { return b >= 0 && b < BranchCount }
func (b EarthlyBranch) String() string   { return nameAt(branchNames, int(b)) }
func (b EarthlyBranch) Pinyin() string   { return branchTable[b].pinyin }
func (b EarthlyBranch) Element() Element { return branchTable[b].element }

// Polarity alternates from 子 (yang).
func (b EarthlyBranch) Polarity() Polarity { return Polarity(int(b) % 2) }

// Zodiac returns the animal in Chinese and English.
func (b EarthlyBranch) Zodiac() (string, string) {
	return branchTable[b].animal, branchTable[b].animalEn
}

// StartHour is the civil hour the branch's two-hour slot begins (子 starts at 23:00).
func (b EarthlyBranch) StartHour() int { return (2*int(b) + 23) % 24 }

// TimePeriod is the name of the two-hour slot, e.g. 子時.
func (b EarthlyBranch) TimePeriod() string { return b.String() + "時" }

func (b EarthlyBranch) EnergyQuality() string { return branchTable[b].energy }
func (b EarthlyBranch) OptimalActivities() []string {
	return append([]string(nil), branchTable[b].optimal...)
}
func (b EarthlyBranch) AvoidActivities() []string {
	return append([]string(nil), branchTable[b].avoid...)
}

func (b EarthlyBranch) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *EarthlyBranch) UnmarshalText(text []byte) error {
	i, err := lookupName("earthly branch", string(text), branchNames, branchPinyin)
	if err != nil {
		return err
	}
	*b = EarthlyBranch(i)
	return nil
}

// BranchForHour maps a civil hour 0..23 to its two-hour branch.
func BranchForHour(hour int) EarthlyBranch {
	return EarthlyBranch(((hour + 1) / 2) % BranchCount)
}

// Pillar is a stem/branch pair. Only the 60 pairs reached by stepping both
// cycles together are valid, which means stem and branch share parity.
type Pillar struct {
	Stem   HeavenlyStem
	Branch EarthlyBranch
}

// NewPillar validates a stem/branch pair.
func NewPillar(stem HeavenlyStem, branch EarthlyBranch) (Pillar, error) {
	p := Pillar{Stem: stem, Branch: branch}
	if !p.Valid() {
		return Pillar{}, fmt.Errorf("%w: %d/%d", ErrInvalidPillar, stem, branch)
	}
	return p, nil
}

// PillarFromIndex returns the pillar at position i of the sexagenary cycle (0 = 甲子).
func PillarFromIndex(i int) Pillar {
	i = Mod(i, CycleLength)
	return Pillar{Stem: HeavenlyStem(i % StemCount), Branch: EarthlyBranch(i % BranchCount)}
}

// Index returns the 0..59 cycle position.
func (p Pillar) Index() int {
	return Mod(6*int(p.Stem)-5*int(p.Branch), CycleLength)
}

func (p Pillar) Valid() bool {
	return p.Stem.Valid() && p.Branch.Valid() && int(p.Stem)%2 == int(p.Branch)%2
}

// Next returns the pillar n steps later in the cycle.
func (p Pillar) Next(n int) Pillar { return PillarFromIndex(p.Index() + n) }

func (p Pillar) String() string { return p.Stem.String() + p.Branch.String() }

func (p Pillar) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Pillar) UnmarshalText(text []byte) error {
	r := []rune(string(text))
	if len(r) != 2 {
		return fmt.Errorf("%w: %q", ErrInvalidPillar, string(text))
	}
	var s HeavenlyStem
	var b EarthlyBranch
	if err := s.UnmarshalText([]byte(string(r[0]))); err != nil {
		return err
	}
	if err := b.UnmarshalText([]byte(string(r[1]))); err != nil {
		return err
	}
	np, err := NewPillar(s, b)
	if err != nil {
		return err
	}
	*p = np
	return nil
}

// Mod is a modulus that is never negative for positive m.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, m int) int {
	q := a / m
	if a%m != 0 && (a < 0) != (m < 0) {
		q--
	}
	return q
}
