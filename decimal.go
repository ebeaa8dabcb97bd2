package genrand

import "github.com/shopspring/decimal"

// DecimalPrecision is the number of fractional digits kept by Decimal.
const DecimalPrecision = 28

var decimalMax = decimal.NewFromInt32(MaxInt)

// Decimal returns draw / MaxInt in [0, 1), computed in decimal arithmetic.
func (g *Generator) Decimal() decimal.Decimal {
	return decimal.NewFromInt32(g.Next()).DivRound(decimalMax, DecimalPrecision)
}
