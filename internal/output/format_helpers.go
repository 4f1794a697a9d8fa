package output

import (
	"strconv"

	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/internal/domain"
	"github.com/Maximilian-Winter/taiyi-qi-men-dunjia/pkg/decimal"
	"github.com/mattn/go-runewidth"
)

// FormatStrength renders a 0..1 strength with two fixed decimals.
func FormatStrength(v float64) string { return decimal.NewRatio(v).String() }

// FormatPercentage renders a 0..1 share as a percentage with two decimals.
func FormatPercentage(v float64) string { return decimal.NewRatio(v).Percent() }

// FormatScore renders a palace score with an explicit sign.
func FormatScore(score int) string {
	if score > 0 {
		return "+" + strconv.Itoa(score)
	}
	return strconv.Itoa(score)
}

// FormatDirection renders a direction as "北 (North)".
func FormatDirection(d domain.Direction) string { return d.String() + " (" + d.English() + ")" }

// padCell pads s with spaces to width terminal columns; CJK runes count double.
func padCell(s string, width int) string { return runewidth.FillRight(s, width) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func optionalName[T interface{ String() string }](v *T) string {
	if v == nil {
		return "-"
	}
	return (*v).String()
}
