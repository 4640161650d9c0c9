package calc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// fracDigits is the number of fractional digits kept by Format.
const fracDigits = 10

// snap is the distance to the nearest integer under which Format prints a
// value as that integer.
const snap = 1e-9

var fracScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(fracDigits), nil)

// Format renders v for the display. Integers and values within 1e-9 of an
// integer print without a fractional part. Other values are rounded half up to
// 10 fractional digits with trailing zeros removed. Exponential notation is
// never used.
func Format(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v == math.Trunc(v) || math.Abs(v-math.Round(v)) < snap {
		r := math.Round(v)
		if r == 0 {
			// Avoid "-0".
			return "0"
		}
		return strconv.FormatFloat(r, 'f', 0, 64)
	}

	// Round the exact binary value, so that ties like 0.00048828125 round up
	// instead of to even.
	neg := v < 0
	x := new(big.Rat).SetFloat64(math.Abs(v))
	x.Mul(x, new(big.Rat).SetInt(fracScale))
	q, m := new(big.Int).QuoRem(x.Num(), x.Denom(), new(big.Int))
	if m.Lsh(m, 1).Cmp(x.Denom()) >= 0 {
		q.Add(q, big.NewInt(1))
	}

	digits := q.String()
	if len(digits) <= fracDigits {
		digits = strings.Repeat("0", fracDigits-len(digits)+1) + digits
	}
	whole, frac := digits[:len(digits)-fracDigits], digits[len(digits)-fracDigits:]
	frac = strings.TrimRight(frac, "0")

	var b strings.Builder
	if neg && (whole != "0" || frac != "") {
		b.WriteByte('-')
	}
	b.WriteString(whole)
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
