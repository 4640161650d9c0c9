package calc

import (
	"strconv"
)

const (
	KindNone Kind = iota
	// KindNumber is a number literal. Its value is in Token.Value.
	KindNumber
	// KindOperator is a binary or postfix operator: + - x ÷ % mod ^ !.
	KindOperator
	// KindFunction is a unary function applied to the following group.
	KindFunction
	// KindOpen is an opening parenthesis.
	KindOpen
	// KindClose is a closing parenthesis.
	KindClose
	// KindConstant is a named constant, i.e. π.
	KindConstant
)

// Kind is the lexical class of a token.
type Kind int8

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNumber:
		return "number"
	case KindOperator:
		return "operator"
	case KindFunction:
		return "function"
	case KindOpen:
		return "open"
	case KindClose:
		return "close"
	case KindConstant:
		return "constant"
	default:
		panic("calc: unknown token kind " + strconv.Itoa(int(k)))
	}
}

// Operator and keyword spellings.
const (
	OpAdd     = "+"
	OpSub     = "-"
	OpMul     = "x"
	OpDiv     = "÷"
	OpPercent = "%"
	OpMod     = "mod"
	OpPow     = "^"
	OpFact    = "!"

	Pi = "π"
)

// Token is a lexical token of an expression.
type Token struct {
	Kind Kind
	// Value is the value of a number literal.
	Value float64
	// Percent marks a number that is a percentage. Its value is divided by
	// 100 when it is evaluated.
	Percent bool
	// Text is the operator symbol, function name or constant name.
	Text string
}

// Number returns a number token.
func Number(v float64) Token {
	return Token{Kind: KindNumber, Value: v}
}

// Operator returns an operator token.
func Operator(sym string) Token {
	return Token{Kind: KindOperator, Text: sym}
}

// Function returns a function token.
func Function(name string) Token {
	return Token{Kind: KindFunction, Text: name}
}

var (
	openToken  = Token{Kind: KindOpen, Text: "("}
	closeToken = Token{Kind: KindClose, Text: ")"}
	piToken    = Token{Kind: KindConstant, Text: Pi}
)

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		s := strconv.FormatFloat(t.Value, 'g', -1, 64)
		if t.Percent {
			s += "%"
		}
		return s
	case KindNone:
		return "<none>"
	default:
		return t.Text
	}
}

// isPercent tells whether t is the unary percent operator.
func (t Token) isPercent() bool {
	return t.Kind == KindOperator && t.Text == OpPercent
}

// Span is a token together with the byte range of the source text it was
// scanned from.
type Span struct {
	Token
	Start, End int
	// Group marks a parenthesized negative literal such as "(-5)", the form
	// produced by the sign toggle. Tokenize expands it into three tokens.
	Group bool
}

// Len returns the length of the source text of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}
