package domain

import "time"

// TaiyiStar is one of the sixteen Taiyi stars: ten master stars (主星)
// followed by six guest stars (客星).
type TaiyiStar int

const (
	TaiyiMaster TaiyiStar = iota
	WenChang
	SheTi
	XuanYuan
	ZhaoYao
	TianFu
	QingLong
	XianChi
	TaiChong
	TianYing

	DaDe
	XiaoDe
	TianXing
	TaiYinGuest
	TianYi
	TaiYuan
)

var taiyiStarNames = []string{
	"太乙", "文昌", "摄提", "轩辕", "招摇", "天符", "青龙", "咸池", "太冲", "天英",
	"大德", "小德", "天刑", "太阴", "天乙", "太元",
}

var taiyiStarEnglish = []string{
	"Supreme Unity", "Literary Brightness", "Regulator", "Yellow Emperor", "Beckoning Distant",
	"Celestial Talisman", "Azure Dragon", "Universal Pool", "Great Rushing", "Celestial Hero",
	"Great Virtue", "Small Virtue", "Celestial Punishment", "Great Yin", "Celestial Unity", "Great Origin",
}

// MasterStars is indexed by year stem.
var MasterStars = [StemCount]TaiyiStar{TaiyiMaster, WenChang, SheTi, XuanYuan, ZhaoYao, TianFu, QingLong, XianChi, TaiChong, TianYing}

// GuestStars is indexed by day branch modulo 6.
var GuestStars = [6]TaiyiStar{DaDe, XiaoDe, TianXing, TaiYinGuest, TianYi, TaiYuan}

func (s TaiyiStar) Valid() bool     { return s >= TaiyiMaster && s <= TaiYuan }
func (s TaiyiStar) IsMaster() bool  { return s <= TianYing }
func (s TaiyiStar) String() string  { return nameAt(taiyiStarNames, int(s)) }
func (s TaiyiStar) English() string { return nameAt(taiyiStarEnglish, int(s)) }

func (s TaiyiStar) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *TaiyiStar) UnmarshalText(text []byte) error {
	i, err := lookupName("taiyi star", string(text), taiyiStarNames, taiyiStarEnglish)
	if err != nil {
		return err
	}
	*s = TaiyiStar(i)
	return nil
}

// AccumulatedYears is the 積年 reckoning from the Taiyi epoch.
type AccumulatedYears struct {
	TotalYears     int `json:"total_years" yaml:"total_years"`
	CycleYears     int `json:"cycle_years" yaml:"cycle_years"`
	RemainderYears int `json:"remainder_years" yaml:"remainder_years"`
	PalacePosition int `json:"palace_position" yaml:"palace_position"`
}

// TaiyiStarPosition places a star in a palace with its influence in [0, 1].
type TaiyiStarPosition struct {
	Star              TaiyiStar `json:"star" yaml:"star"`
	Palace            int       `json:"palace" yaml:"palace"`
	IsMaster          bool      `json:"is_master" yaml:"is_master"`
	InfluenceStrength float64   `json:"influence_strength" yaml:"influence_strength"`
}

// StrengthLabel buckets the influence into strong, moderate or weak.
func (p TaiyiStarPosition) StrengthLabel() string {
	switch {
	case p.InfluenceStrength >= 0.7:
		return "strong"
	case p.InfluenceStrength >= 0.4:
		return "moderate"
	default:
		return "weak"
	}
}

// TimingNote is guidance for one time horizon.
type TimingNote struct {
	Horizon string `json:"horizon" yaml:"horizon"`
	Note    string `json:"note" yaml:"note"`
}

// TaiyiDivination is a complete Taiyi Shenshu reading for one instant.
type TaiyiDivination struct {
	QueryTime           time.Time           `json:"query_time" yaml:"query_time"`
	LunarDate           LunarDate           `json:"lunar_date" yaml:"lunar_date"`
	AccumulatedYears    AccumulatedYears    `json:"accumulated_years" yaml:"accumulated_years"`
	MasterStar          TaiyiStarPosition   `json:"master_star" yaml:"master_star"`
	GuestStar           TaiyiStarPosition   `json:"guest_star" yaml:"guest_star"`
	ActivePalace        int                 `json:"active_palace" yaml:"active_palace"`
	SupportingPalaces   []int               `json:"supporting_palaces" yaml:"supporting_palaces"`
	ConflictingPalaces  []int               `json:"conflicting_palaces" yaml:"conflicting_palaces"`
	ElementalInfluences map[Element]float64 `json:"elemental_influences" yaml:"elemental_influences"`
	OverallAssessment   string              `json:"overall_assessment" yaml:"overall_assessment"`
	StrategicGuidance   string              `json:"strategic_guidance" yaml:"strategic_guidance"`
	TimingAnalysis      []TimingNote        `json:"timing_analysis" yaml:"timing_analysis"`
}
