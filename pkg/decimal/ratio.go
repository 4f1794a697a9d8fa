package decimal

import (
	"github.com/shopspring/decimal"
)

// Ratio is a strength or share in the closed interval [0, 1], held as a decimal
// so presentation never shows float noise.
type Ratio struct {
	decimal.Decimal
}

var one = decimal.NewFromInt(1)

// NewRatio creates a Ratio from a float64, clamping it into [0, 1].
func NewRatio(value float64) Ratio {
	return NewRatioFromDecimal(decimal.NewFromFloat(value))
}

// NewRatioFromDecimal creates a Ratio from a decimal.Decimal, clamping it into [0, 1].
func NewRatioFromDecimal(d decimal.Decimal) Ratio {
	if d.IsNegative() {
		return Ratio{decimal.Zero}
	}
	if d.GreaterThan(one) {
		return Ratio{one}
	}
	return Ratio{d}
}

// String returns the ratio with two fixed decimals.
func (r Ratio) String() string {
	return r.Decimal.StringFixed(2)
}

// Percent renders the ratio as a percentage with two decimals.
func (r Ratio) Percent() string {
	return r.Decimal.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// Bar renders the ratio as a bar of width cells.
func (r Ratio) Bar(width int) string {
	filled := int(r.Decimal.Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	out := make([]rune, width)
	for i := range out {
		if i < filled {
			out[i] = '█'
		} else {
			out[i] = '░'
		}
	}
	return string(out)
}
