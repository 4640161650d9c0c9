package calc

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{4, "4"},
		{-4, "-4"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1.0 / 3.0, "0.3333333333"},
		{2.0 / 3.0, "0.6666666667"},
		{-1e-11, "0"},
		{1e-10, "0"},
		{2.0000000001, "2"},
		{2.5, "2.5"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{123.456, "123.456"},
		{0.00048828125, "0.0004882813"},
		{-0.00048828125, "-0.0004882813"},
		{1e20, "100000000000000000000"},
		{math.Inf(1), "+Inf"},
	}
	for _, c := range cases {
		if got := Format(c.v); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}
