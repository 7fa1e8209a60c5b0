package portfel

import "github.com/shopspring/decimal"

// Quantization factors of the share token. Prices travel as integer
// minor units (2 decimals), percents as integer tenths (1 decimal),
// plain values as integers. Encode is lossy relative to arbitrary
// precision input, decode is exact given the encoded precision.
// Increasing these factors regresses the URL size budget the whole
// format serves.
const (
	priceFactor   = 100
	percentFactor = 10
)

// quantize converts a float into the integer wire representation,
// rounding half away from zero. Going through decimal avoids the usual
// float trap (285.45*100 is 28544.999... in binary).
func quantize(v float64, factor int64) int64 {
	return decimal.NewFromFloat(v).Mul(decimal.NewFromInt(factor)).Round(0).IntPart()
}

// dequantize restores a float from its integer wire representation.
func dequantize(units float64, factor int64) float64 {
	return decimal.NewFromFloat(units).Div(decimal.NewFromInt(factor)).InexactFloat64()
}
