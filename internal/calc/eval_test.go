package calc_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjl/giocalc/internal/calc"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src  string
		text string
	}{
		{"3+4x2", "11"},
		{"2+3%", "2.03"},
		{"(1+2)", "3"},
		{"5!", "120"},
		{"2(3+4)", "14"},
		{"2^3^2", "64"},
		{"2^10", "1024"},
		{"7%3", "1"},
		{"7mod3", "1"},
		{"-7mod3", "-1"},
		{"50%", "0.5"},
		{"200x10%", "20"},
		{"sqrt(16)", "4"},
		{"ln(1)", "0"},
		{"exp(0)", "1"},
		{"sin(0)", "0"},
		{"sin(30)", "-0.9880316241"},
		{"2π", "6.2831853072"},
		{"π", "3.1415926536"},
		{"(-5)", "-5"},
		{"3x(-2)", "-6"},
		{"10-(-2)", "12"},
		{"-3+5", "2"},
		{"2x-3", "-6"},
		{"1÷3", "0.3333333333"},
		{"3!+1", "7"},
		{"2+3!", "8"},
		{"sqrt(2)^2", "2"},
		{"0.1+0.2", "0.3"},
		{"8-3-2", "3"},
		{"8÷4÷2", "1"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.src, func(t *testing.T) {
			t.Parallel()
			r, err := calc.Calculate(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.text, r.Text)
			assert.Equal(t, c.src, r.Source)
		})
	}
}

func TestCalculateErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src string
		err error
	}{
		{"5÷0", calc.ErrDivisionByZero},
		{"5%0", calc.ErrDivisionByZero},
		{"ln(0)", calc.ErrDomain},
		{"ln(-1)", calc.ErrDomain},
		{"sqrt(-4)", calc.ErrDomain},
		{"(-3)!", calc.ErrDomain},
		{"2.5!", calc.ErrDomain},
		{"asin(2)", calc.ErrDomain},
		{"171!", calc.ErrDomain},
		{"10^400", calc.ErrDomain},
		{"", calc.ErrEmptyExpression},
		{"abc", calc.ErrEmptyExpression},
		{"1+2)", calc.ErrUnbalancedParentheses},
		{"(1+2", calc.ErrUnbalancedParentheses},
		{"+", calc.ErrInvalidExpression},
		{"()", calc.ErrInvalidExpression},
		{"sin()", calc.ErrInvalidExpression},
		{"sin5", calc.ErrInvalidExpression},
		{"π%2", calc.ErrInvalidExpression},
		{"3%(2)", calc.ErrInvalidExpression},
		{"5%(-3)", calc.ErrInvalidExpression},
		{"50%π", calc.ErrInvalidExpression},
		{"5%sin(0)", calc.ErrInvalidExpression},
		{"5%%3", calc.ErrInvalidExpression},
		{"1 2", calc.ErrInvalidExpression},
		{strings.Repeat("9", 400), calc.ErrInvalidNumber},
	}
	for _, c := range cases {
		c := c
		t.Run(c.src, func(t *testing.T) {
			t.Parallel()
			_, err := calc.Calculate(c.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, c.err)
			var cerr *calc.Error
			require.True(t, errors.As(err, &cerr))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src string
		msg string
	}{
		{"5÷0", "division by zero"},
		{"5%0", "modulo by zero"},
		{"ln(0)", "0 outside domain of ln"},
		{"sqrt(-4)", "-4 outside domain of sqrt"},
		{"2.5!", "2.5 outside domain of !"},
		{"+", `not enough operands for "+"`},
		{"1 2", "invalid expression"},
		{"1+2)", "unbalanced parentheses"},
		{"10^400", "result is not a finite number"},
	}
	for _, c := range cases {
		_, err := calc.Calculate(c.src)
		require.Error(t, err, c.src)
		assert.Equal(t, c.msg, err.Error(), c.src)
	}
}

func TestEvalTokens(t *testing.T) {
	t.Parallel()

	ev := calc.NewEvaluator()

	pct := calc.Number(50)
	pct.Percent = true
	v, err := ev.Eval([]calc.Token{pct})
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	_, err = ev.Eval([]calc.Token{calc.Number(1), calc.Operator("?"), calc.Number(2)})
	assert.ErrorIs(t, err, calc.ErrUnsupportedOperator)

	_, err = ev.Eval([]calc.Token{{Kind: calc.KindConstant, Text: "e"}})
	assert.ErrorIs(t, err, calc.ErrUnsupportedOperator)

	_, err = ev.Eval(nil)
	assert.ErrorIs(t, err, calc.ErrEmptyExpression)
}

func TestPrecedenceOption(t *testing.T) {
	t.Parallel()

	ev := calc.NewEvaluator(calc.WithPrecedence(calc.OpAdd, 3))
	assert.Equal(t, 3, ev.Precedence(calc.OpAdd))
	assert.Equal(t, 1, calc.NewEvaluator().Precedence(calc.OpAdd))

	r, err := ev.Calculate("2x3+4")
	require.NoError(t, err)
	assert.Equal(t, "14", r.Text)

	r, err = calc.Calculate("2x3+4")
	require.NoError(t, err)
	assert.Equal(t, "10", r.Text)
}

func TestCalculateIdempotent(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"(1+2)x(3-4)", "sin(1)+cos(1)", "((2))^(1÷2)", "5!÷(3!)"} {
		a, err := calc.Calculate(src)
		require.NoError(t, err, src)
		b, err := calc.Calculate(a.Source)
		require.NoError(t, err, src)
		assert.Equal(t, a, b)
	}
}

func TestCalculateChained(t *testing.T) {
	t.Parallel()

	r, err := calc.Calculate("1÷4")
	require.NoError(t, err)
	r, err = calc.Calculate(r.Text + "x8")
	require.NoError(t, err)
	assert.Equal(t, "2", r.Text)

	r, err = calc.Calculate("2-5")
	require.NoError(t, err)
	r, err = calc.Calculate(r.Text + "x2")
	require.NoError(t, err)
	assert.Equal(t, -6.0, r.Value)
	assert.True(t, math.Signbit(r.Value))
}
