package domain

import "time"

// Gate is one of the Eight Gates (八門).
type Gate int

const (
	RestGate Gate = iota
	LifeGate
	HarmGate
	BlockGate
	ViewGate
	DeathGate
	ShockGate
	OpenGate
)

// GateCount is the number of gates, one per outer palace.
const GateCount = 8

type gateInfo struct {
	name        string
	english     string
	element     Element
	auspicious  bool
	quality     string
	application string
}

var gateTable = [GateCount]gateInfo{
	{"休門", "Rest", Water, true, "Withdrawal and recuperation, strategic pause", "Rest, planning, avoiding conflict"},
	{"生門", "Life", Earth, true, "Growth and vitality, new opportunities", "Starting projects, seeking advancement"},
	{"傷門", "Harm", Wood, false, "Conflict and injury, aggressive action", "Military action, competitive situations"},
	{"杜門", "Block", Wood, false, "Obstruction and closure, hidden activities", "Secret operations, blocking enemies"},
	{"景門", "View", Fire, true, "Illumination and revelation, clear sight", "Examinations, seeking clarity"},
	{"死門", "Death", Earth, false, "Endings and transformation, dangerous power", "Eliminating obstacles, dangerous missions"},
	{"驚門", "Shock", Metal, false, "Sudden change and alarm, unexpected events", "Surprising enemies, emergency action"},
	{"開門", "Open", Metal, true, "New beginnings and breakthrough, open paths", "Important meetings, new ventures"},
}

var (
	gateNames   = tableNames(GateCount, func(i int) string { return gateTable[i].name })
	gateEnglish = tableNames(GateCount, func(i int) string { return gateTable[i].english })
)

func (g Gate) Valid() bool                  { return g >= 0 && g < GateCount }
func (g Gate) String() string               { return nameAt(gateNames, int(g)) }
func (g Gate) English() string              { return nameAt(gateEnglish, int(g)) }
func (g Gate) Element() Element             { return gateTable[g].element }
func (g Gate) IsAuspicious() bool           { return gateTable[g].auspicious }
func (g Gate) EnergyQuality() string        { return gateTable[g].quality }
func (g Gate) StrategicApplication() string { return gateTable[g].application }

func (g Gate) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *Gate) UnmarshalText(text []byte) error {
	i, err := lookupName("gate", string(text), gateNames, gateEnglish)
	if err != nil {
		return err
	}
	*g = Gate(i)
	return nil
}

// Star is one of the Nine Stars (九星).
type Star int

const (
	PengStar Star = iota
	RenStar
	ChongStar
	FuStar
	YingStar
	RuiStar
	ZhuStar
	XinStar
	QinStar
)

const StarCount = 9

var starNames = []string{"天蓬", "天任", "天沖", "天輔", "天英", "天芮", "天柱", "天心", "天禽"}
var starEnglish = []string{"Canopy", "Responsibility", "Rushing", "Assistant", "Hero", "Grain", "Pillar", "Heart", "Bird"}

func (s Star) Valid() bool     { return s >= 0 && s < StarCount }
func (s Star) String() string  { return nameAt(starNames, int(s)) }
func (s Star) English() string { return nameAt(starEnglish, int(s)) }

func (s Star) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Star) UnmarshalText(text []byte) error {
	i, err := lookupName("star", string(text), starNames, starEnglish)
	if err != nil {
		return err
	}
	*s = Star(i)
	return nil
}

// Spirit is one of the Eight Spirits (八神).
type Spirit int

const (
	ZhiFuSpirit Spirit = iota
	TengSheSpirit
	TaiYinSpirit
	LiuHeSpirit
	BaiHuSpirit
	XuanWuSpirit
	JiuDiSpirit
	JiuTianSpirit
)

const SpiritCount = 8

var spiritNames = []string{"值符", "騰蛇", "太陰", "六合", "白虎", "玄武", "九地", "九天"}
var spiritEnglish = []string{"Duty Chief", "Soaring Snake", "Great Yin", "Six Harmonies", "White Tiger", "Black Tortoise", "Nine Earth", "Nine Heaven"}

// 騰蛇, 白虎 and 玄武 are the malefic spirits
var spiritAuspicious = [SpiritCount]bool{true, false, true, true, false, false, true, true}

func (s Spirit) Valid() bool        { return s >= 0 && s < SpiritCount }
func (s Spirit) String() string     { return nameAt(spiritNames, int(s)) }
func (s Spirit) English() string    { return nameAt(spiritEnglish, int(s)) }
func (s Spirit) IsAuspicious() bool { return spiritAuspicious[s] }

func (s Spirit) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Spirit) UnmarshalText(text []byte) error {
	i, err := lookupName("spirit", string(text), spiritNames, spiritEnglish)
	if err != nil {
		return err
	}
	*s = Spirit(i)
	return nil
}

// TimeFrame selects which pillar drives a Qi Men chart.
type TimeFrame int

const (
	HourFrame TimeFrame = iota
	DayFrame
	MonthFrame
	YearFrame
)

var timeFrameNames = []string{"時家", "日家", "月家", "年家"}
var timeFrameEnglish = []string{"hour", "day", "month", "year"}

func (f TimeFrame) Valid() bool     { return f >= HourFrame && f <= YearFrame }
func (f TimeFrame) String() string  { return nameAt(timeFrameNames, int(f)) }
func (f TimeFrame) English() string { return nameAt(timeFrameEnglish, int(f)) }

func (f TimeFrame) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *TimeFrame) UnmarshalText(text []byte) error {
	i, err := lookupName("time frame", string(text), timeFrameNames, timeFrameEnglish)
	if err != nil {
		return err
	}
	*f = TimeFrame(i)
	return nil
}

// ParseTimeFrame accepts the Chinese or English name; empty means hour.
func ParseTimeFrame(s string) (TimeFrame, error) {
	if s == "" {
		return HourFrame, nil
	}
	var f TimeFrame
	err := f.UnmarshalText([]byte(s))
	return f, err
}

// PatternClass partitions charts by their count of auspicious palaces.
type PatternClass int

const (
	ChallengingPattern PatternClass = iota
	MixedPattern
	HighlyFavorablePattern
)

var patternNames = []string{"Challenging Pattern", "Mixed Pattern", "Highly Favorable"}
var patternDescriptions = []string{
	"Significant obstacles require strategic patience",
	"Careful timing and positioning required",
	"Multiple auspicious configurations support success",
}

// ClassifyPattern applies the 6+/4-5/0-3 partition over nine palaces.
func ClassifyPattern(auspicious int) PatternClass {
	switch {
	case auspicious >= 6:
		return HighlyFavorablePattern
	case auspicious >= 4:
		return MixedPattern
	default:
		return ChallengingPattern
	}
}

func (p PatternClass) String() string      { return nameAt(patternNames, int(p)) }
func (p PatternClass) Description() string { return nameAt(patternDescriptions, int(p)) }

func (p PatternClass) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *PatternClass) UnmarshalText(text []byte) error {
	i, err := lookupName("pattern", string(text), patternNames)
	if err != nil {
		return err
	}
	*p = PatternClass(i)
	return nil
}

// QiMenConfiguration is the full content of one palace in a chart.
// Gate and Spirit are nil for the center palace.
type QiMenConfiguration struct {
	PalaceNumber         int           `json:"palace_number" yaml:"palace_number"`
	Gate                 *Gate         `json:"gate" yaml:"gate"`
	Star                 Star          `json:"star" yaml:"star"`
	Spirit               *Spirit       `json:"spirit" yaml:"spirit"`
	Element              Element       `json:"element" yaml:"element"`
	IsAuspicious         bool          `json:"is_auspicious" yaml:"is_auspicious"`
	EnergyQuality        string        `json:"energy_quality" yaml:"energy_quality"`
	StrategicApplication string        `json:"strategic_application" yaml:"strategic_application"`
	HeavenlyStem         HeavenlyStem  `json:"heavenly_stem" yaml:"heavenly_stem"`
	EarthlyBranch        EarthlyBranch `json:"earthly_branch" yaml:"earthly_branch"`
	LodgedStar           *Star         `json:"lodged_star,omitempty" yaml:"lodged_star,omitempty"`
	Score                int           `json:"score" yaml:"score"`
}

// QiMenChart is a complete Qi Men Dun Jia chart for one instant.
type QiMenChart struct {
	CalculationTime       time.Time                  `json:"calculation_time" yaml:"calculation_time"`
	LunarDate             LunarDate                  `json:"lunar_date" yaml:"lunar_date"`
	TimeFrame             TimeFrame                  `json:"time_frame" yaml:"time_frame"`
	IsYangDun             bool                       `json:"is_yang_dun" yaml:"is_yang_dun"`
	DutyChiefPalace       int                        `json:"duty_chief_palace" yaml:"duty_chief_palace"`
	Configurations        map[int]QiMenConfiguration `json:"configurations" yaml:"configurations"`
	Pattern               PatternClass               `json:"pattern" yaml:"pattern"`
	OverallPattern        string                     `json:"overall_pattern" yaml:"overall_pattern"`
	FavorableDirections   []Direction                `json:"favorable_directions" yaml:"favorable_directions"`
	UnfavorableDirections []Direction                `json:"unfavorable_directions" yaml:"unfavorable_directions"`
	ElementBalance        map[Element]float64        `json:"element_balance" yaml:"element_balance"`
	OptimalTiming         string                     `json:"optimal_timing" yaml:"optimal_timing"`
	StrategicAssessment   string                     `json:"strategic_assessment" yaml:"strategic_assessment"`
}

// AuspiciousCount returns how many of the nine palaces are auspicious.
func (c *QiMenChart) AuspiciousCount() int {
	n := 0
	for _, cfg := range c.Configurations {
		if cfg.IsAuspicious {
			n++
		}
	}
	return n
}

// Palace returns the configuration of palace n.
func (c *QiMenChart) Palace(n int) (QiMenConfiguration, bool) {
	cfg, ok := c.Configurations[n]
	return cfg, ok
}
