package calc

import (
	"strconv"
)

const (
	// InvalidNumber is a number literal that does not fit a float64.
	InvalidNumber ErrorKind = iota + 1
	// UnbalancedParentheses is a closing parenthesis without a matching
	// opening one, or an opening one left unclosed.
	UnbalancedParentheses
	// EmptyExpression is an expression without any token.
	EmptyExpression
	// InvalidExpression is an operator without enough operands, or operands
	// left over at the end.
	InvalidExpression
	// DivisionByZero is a ÷ or mod with a zero divisor.
	DivisionByZero
	// DomainError is an argument outside the domain of a function, or a
	// result that is not a finite number.
	DomainError
	// UnsupportedOperator is a token the evaluator cannot apply.
	UnsupportedOperator
)

// ErrorKind classifies evaluation errors.
type ErrorKind int8

func (k ErrorKind) String() string {
	switch k {
	case InvalidNumber:
		return "invalid number"
	case UnbalancedParentheses:
		return "unbalanced parentheses"
	case EmptyExpression:
		return "empty expression"
	case InvalidExpression:
		return "invalid expression"
	case DivisionByZero:
		return "division by zero"
	case DomainError:
		return "domain error"
	case UnsupportedOperator:
		return "unsupported operator"
	default:
		return "error " + strconv.Itoa(int(k))
	}
}

// Error is an error that occurred while evaluating an expression.
type Error struct {
	Kind ErrorKind
	// Op is the operator or function involved, if any.
	Op string
	// Value is the offending operand for DomainError and InvalidNumber.
	Value float64
}

// Sentinel errors for use with errors.Is. An *Error matches the sentinel of
// its kind regardless of Op and Value.
var (
	ErrInvalidNumber         = &Error{Kind: InvalidNumber}
	ErrUnbalancedParentheses = &Error{Kind: UnbalancedParentheses}
	ErrEmptyExpression       = &Error{Kind: EmptyExpression}
	ErrInvalidExpression     = &Error{Kind: InvalidExpression}
	ErrDivisionByZero        = &Error{Kind: DivisionByZero}
	ErrDomain                = &Error{Kind: DomainError}
	ErrUnsupportedOperator   = &Error{Kind: UnsupportedOperator}
)

func (err *Error) Error() string {
	switch err.Kind {
	case InvalidExpression:
		if err.Op != "" {
			return "not enough operands for " + strconv.Quote(err.Op)
		}
	case DivisionByZero:
		if err.Op == OpMod {
			return "modulo by zero"
		}
	case DomainError:
		if err.Op == "" {
			return "result is not a finite number"
		}
		return Format(err.Value) + " outside domain of " + err.Op
	case UnsupportedOperator:
		return "unsupported operator " + strconv.Quote(err.Op)
	}
	return err.Kind.String()
}

// Is reports whether target is an *Error of the same kind.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}
