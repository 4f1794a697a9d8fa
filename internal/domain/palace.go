package domain

import "fmt"

// Palace is one cell of the Lo Shu magic square.
type Palace struct {
	Number           int       `json:"number" yaml:"number"`
	Name             string    `json:"name" yaml:"name"`
	Trigram          string    `json:"trigram,omitempty" yaml:"trigram,omitempty"`
	Direction        Direction `json:"direction" yaml:"direction"`
	Element          Element   `json:"element" yaml:"element"`
	Quality          string    `json:"quality" yaml:"quality"`
	StrategicUse     string    `json:"strategic_use" yaml:"strategic_use"`
	CultivationFocus string    `json:"cultivation_focus" yaml:"cultivation_focus"`
}

// CenterPalace is the palace without a gate or spirit.
const CenterPalace = 5

// LoShuGrid is the square as drawn with south at the top.
var LoShuGrid = [3][3]int{
	{4, 9, 2},
	{3, 5, 7},
	{8, 1, 6},
}

// index 0 unused so palace numbers address the table directly
var palaceTable = [10]Palace{
	{},
	{1, "坎宮", "坎", North, Water,
		"Hidden depth, secret knowledge, mysterious resources",
		"Accessing hidden information, developing deep strategies, working with subconscious forces",
		"Deep meditation, accessing inner wisdom, patience development"},
	{2, "坤宮", "坤", SouthWest, Earth,
		"Supportive foundation, maternal nourishment, receptive power",
		"Building support networks, providing foundation for others, receptive leadership",
		"Earth connection, supportive practices, developing infinite patience"},
	{3, "震宮", "震", East, Wood,
		"Sudden breakthrough, initiating movement, shocking action",
		"Breakthrough moments, initiating new phases, overcoming stagnation",
		"Breakthrough meditation, sudden insight practices, dynamic action"},
	{4, "巽宮", "巽", SouthEast, Wood,
		"Gentle penetration, gradual influence, persistent pressure",
		"Long-term influence campaigns, subtle persuasion, gradual change",
		"Gentle persistence, subtle influence development, patient pressure"},
	{5, "中宮", "", Center, Earth,
		"Central command, integration point, cosmic axis",
		"Coordinating all other palaces, maintaining balance, central command",
		"Balance development, integration practices, central awareness"},
	{6, "乾宮", "乾", NorthWest, Metal,
		"Creative authority, leadership power, paternal strength",
		"Establishing authority, creative leadership, initiating major projects",
		"Leadership development, creative authority, paternal strength"},
	{7, "兌宮", "兌", West, Metal,
		"Joyful completion, harmonious communication, satisfying results",
		"Bringing projects to joyful completion, harmonious negotiations, celebration",
		"Joy development, harmonious communication, completion satisfaction"},
	{8, "艮宮", "艮", NorthEast, Earth,
		"Still meditation, strategic pause, firm boundaries",
		"Strategic pauses, establishing boundaries, deep reflection periods",
		"Stillness meditation, boundary development, reflective practices"},
	{9, "離宮", "離", South, Fire,
		"Brilliant manifestation, clear illumination, inspiring beauty",
		"Brilliant manifestation, clear communication, inspiring others",
		"Clarity development, brilliant manifestation, inspiring communication"},
}

// LookupPalace returns the palace numbered n (1..9).
func LookupPalace(n int) (Palace, error) {
	if n < 1 || n > 9 {
		return Palace{}, fmt.Errorf("palace number %d out of range 1-9", n)
	}
	return palaceTable[n], nil
}

// MustPalace is LookupPalace for numbers already known to be valid.
func MustPalace(n int) Palace {
	p, err := LookupPalace(n)
	if err != nil {
		panic(err)
	}
	return p
}

// Palaces returns all nine palaces in number order.
func Palaces() []Palace {
	out := make([]Palace, 0, 9)
	for n := 1; n <= 9; n++ {
		out = append(out, palaceTable[n])
	}
	return out
}

func (p Palace) String() string { return fmt.Sprintf("Palace %d (%s)", p.Number, p.Name) }
