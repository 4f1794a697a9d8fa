package domain

// Element is one of the Five Phases (五行).
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// AllElements lists the elements in generation order.
var AllElements = [5]Element{Wood, Fire, Earth, Metal, Water}

var (
	elementNames   = []string{"木", "火", "土", "金", "水"}
	elementEnglish = []string{"Wood", "Fire", "Earth", "Metal", "Water"}

	// generation (相生) and destruction (相剋) cycles, indexed by source element
	generationCycle  = [5]Element{Fire, Earth, Metal, Water, Wood}
	destructionCycle = [5]Element{Earth, Metal, Water, Wood, Fire}
)

// ElementAttributes describes the correspondences of an element.
type ElementAttributes struct {
	Quality              string    `json:"quality" yaml:"quality"`
	Season               Season    `json:"season" yaml:"season"`
	Direction            Direction `json:"direction" yaml:"direction"`
	Time                 string    `json:"time" yaml:"time"`
	StrategicApplication string    `json:"strategic_application" yaml:"strategic_application"`
}

var elementAttributes = [5]ElementAttributes{
	{Quality: "Growth, expansion, flexibility, creativity", Season: Spring, Direction: East, Time: "Dawn (3-7 AM)", StrategicApplication: "Initiation, new projects, creative breakthrough"},
	{Quality: "Manifestation, activity, joy, communication", Season: Summer, Direction: South, Time: "Noon (11 AM-1 PM)", StrategicApplication: "Peak activity, public presentation, relationship building"},
	{Quality: "Stability, nourishment, transformation, centering", Season: LateSummer, Direction: Center, Time: "Transitions between other times", StrategicApplication: "Consolidation, resource management, team building"},
	{Quality: "Refinement, precision, letting go, harvest", Season: Autumn, Direction: West, Time: "Evening (5-7 PM)", StrategicApplication: "Completion, quality control, elimination of non-essentials"},
	{Quality: "Depth, wisdom, storage, potential", Season: Winter, Direction: North, Time: "Midnight (11 PM-1 AM)", StrategicApplication: "Deep planning, resource conservation, foundational work"},
}

func (e Element) Valid() bool     { return e >= Wood && e <= Water }
func (e Element) String() string  { return nameAt(elementNames, int(e)) }
func (e Element) English() string { return nameAt(elementEnglish, int(e)) }

// Generates returns the element this one feeds in the generation cycle.
func (e Element) Generates() Element { return generationCycle[e] }

// Destroys returns the element this one overcomes in the destruction cycle.
func (e Element) Destroys() Element { return destructionCycle[e] }

// Attributes returns the static correspondences of e.
func (e Element) Attributes() ElementAttributes { return elementAttributes[e] }

func (e Element) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *Element) UnmarshalText(text []byte) error {
	i, err := lookupName("element", string(text), elementNames, elementEnglish)
	if err != nil {
		return err
	}
	*e = Element(i)
	return nil
}

// Polarity is the yin/yang quality of a stem or branch.
type Polarity int

const (
	Yang Polarity = iota
	Yin
)

var polarityNames = []string{"阳", "阴"}
var polarityEnglish = []string{"Yang", "Yin"}

func (p Polarity) String() string  { return nameAt(polarityNames, int(p)) }
func (p Polarity) English() string { return nameAt(polarityEnglish, int(p)) }

func (p Polarity) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Polarity) UnmarshalText(text []byte) error {
	i, err := lookupName("polarity", string(text), polarityNames, polarityEnglish)
	if err != nil {
		return err
	}
	*p = Polarity(i)
	return nil
}

// Season is the seasonal correspondence of an element.
type Season int

const (
	Spring Season = iota
	Summer
	LateSummer
	Autumn
	Winter
)

var seasonNames = []string{"春", "夏", "长夏", "秋", "冬"}
var seasonEnglish = []string{"Spring", "Summer", "Late Summer", "Autumn", "Winter"}

func (s Season) String() string  { return nameAt(seasonNames, int(s)) }
func (s Season) English() string { return nameAt(seasonEnglish, int(s)) }

func (s Season) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Season) UnmarshalText(text []byte) error {
	i, err := lookupName("season", string(text), seasonNames, seasonEnglish)
	if err != nil {
		return err
	}
	*s = Season(i)
	return nil
}

// Direction is a compass point of the Lo Shu square.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	Center
)

var directionNames = []string{"北", "东北", "东", "东南", "南", "西南", "西", "西北", "中"}
var directionEnglish = []string{"North", "Northeast", "East", "Southeast", "South", "Southwest", "West", "Northwest", "Center"}

func (d Direction) String() string  { return nameAt(directionNames, int(d)) }
func (d Direction) English() string { return nameAt(directionEnglish, int(d)) }

func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Direction) UnmarshalText(text []byte) error {
	i, err := lookupName("direction", string(text), directionNames, directionEnglish)
	if err != nil {
		return err
	}
	*d = Direction(i)
	return nil
}
