package calc

import (
	"math"
)

// unaryFunc computes a function of one operand.
type unaryFunc func(x float64) (float64, error)

// binaryFunc computes a OP b.
type binaryFunc func(a, b float64) (float64, error)

// monadic wraps a total function of one variable. A NaN result means x was
// outside the domain of the function.
func monadic(name string, f func(float64) float64) unaryFunc {
	return func(x float64) (float64, error) {
		r := f(x)
		if math.IsNaN(r) && !math.IsNaN(x) {
			return 0, &Error{Kind: DomainError, Op: name, Value: x}
		}
		return r, nil
	}
}

// unary contains the functions and postfix operators, which take one operand.
var unary = map[string]unaryFunc{
	"sin":  monadic("sin", math.Sin),
	"cos":  monadic("cos", math.Cos),
	"tan":  monadic("tan", math.Tan),
	"asin": monadic("asin", math.Asin),
	"acos": monadic("acos", math.Acos),
	"atan": monadic("atan", math.Atan),
	"exp":  monadic("exp", math.Exp),
	"ln": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, &Error{Kind: DomainError, Op: "ln", Value: x}
		}
		return math.Log(x), nil
	},
	"sqrt": func(x float64) (float64, error) {
		if x < 0 {
			return 0, &Error{Kind: DomainError, Op: "sqrt", Value: x}
		}
		return math.Sqrt(x), nil
	},
	OpFact: factorial,
}

// maxFactorial is the largest n for which n! is finite as a float64.
const maxFactorial = 170

func factorial(x float64) (float64, error) {
	if x < 0 || x != math.Trunc(x) {
		return 0, &Error{Kind: DomainError, Op: OpFact, Value: x}
	}
	if x > maxFactorial {
		return math.Inf(1), nil
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
	}
	return r, nil
}

// binary contains the infix operators.
var binary = map[string]binaryFunc{
	OpAdd: func(a, b float64) (float64, error) { return a + b, nil },
	OpSub: func(a, b float64) (float64, error) { return a - b, nil },
	OpMul: func(a, b float64) (float64, error) { return a * b, nil },
	OpDiv: func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, &Error{Kind: DivisionByZero, Op: OpDiv}
		}
		return a / b, nil
	},
	OpMod: func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, &Error{Kind: DivisionByZero, Op: OpMod}
		}
		return math.Mod(a, b), nil
	},
	OpPow: func(a, b float64) (float64, error) { return math.Pow(a, b), nil },
}

// constants maps constant names to their values.
var constants = map[string]float64{
	Pi: math.Pi,
}
