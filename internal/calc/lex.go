package calc

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Operators contains the runes which are single-rune operators or punctuation.
const Operators = "+-x÷%()^!"

// keywords are the multi-rune tokens. The inverse functions are listed before
// the plain ones so that a shared suffix never wins.
var keywords = []struct {
	text string
	tok  Token
}{
	{OpMod, Operator(OpMod)},
	{"asin", Function("asin")},
	{"acos", Function("acos")},
	{"atan", Function("atan")},
	{"sin", Function("sin")},
	{"cos", Function("cos")},
	{"tan", Function("tan")},
	{"ln", Function("ln")},
	{"exp", Function("exp")},
	{"sqrt", Function("sqrt")},
}

type lexer struct {
	src   string
	pos   int
	spans []Span
}

// Lex splits src into spans. It never fails: runes which do not start a token
// are skipped.
func Lex(src string) []Span {
	l := lexer{src: src}
	for l.pos < len(l.src) {
		l.next()
	}
	return l.spans
}

// next scans one token, or skips one rune if no token starts at the current
// position.
func (l *lexer) next() {
	rest := l.src[l.pos:]
	r, sz := utf8.DecodeRuneInString(rest)
	switch {
	case r == '(':
		if n := scanGroup(rest); n > 0 {
			l.emitNumber(n, true)
			return
		}
		l.emit(openToken, sz)
	case r == '-' && l.signAllowed() && scanNumber(rest[1:]) > 0:
		l.emitNumber(1+scanNumber(rest[1:]), false)
	case isDigit(r):
		l.emitNumber(scanNumber(rest), false)
	case r == ')':
		l.emit(closeToken, sz)
	case strings.ContainsRune(Operators, r):
		l.emit(Operator(rest[:sz]), sz)
	case r == 'π':
		l.emit(piToken, sz)
	default:
		for _, kw := range keywords {
			if strings.HasPrefix(rest, kw.text) {
				l.emit(kw.tok, len(kw.text))
				return
			}
		}
		l.pos += sz
	}
}

// signAllowed reports whether a '-' at the current position is the sign of a
// number rather than a subtraction. It is a subtraction only after an operand
// that can end a term: a number or a closing parenthesis.
func (l *lexer) signAllowed() bool {
	if len(l.spans) == 0 {
		return true
	}
	switch l.spans[len(l.spans)-1].Kind {
	case KindNumber, KindClose:
		return false
	default:
		return true
	}
}

func (l *lexer) emit(tok Token, n int) {
	l.spans = append(l.spans, Span{Token: tok, Start: l.pos, End: l.pos + n})
	l.pos += n
}

// emitNumber emits the n bytes at the current position as a number literal.
// A group literal "(-d)" is parsed without its parentheses.
func (l *lexer) emitNumber(n int, group bool) {
	text := l.src[l.pos : l.pos+n]
	if group {
		text = text[1 : len(text)-1]
	}
	// A literal too large for a float64 parses as ±Inf, which the evaluator
	// reports as an invalid number.
	v, _ := strconv.ParseFloat(text, 64)
	l.spans = append(l.spans, Span{Token: Number(v), Start: l.pos, End: l.pos + n, Group: group})
	l.pos += n
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// digits returns the length of the run of ASCII digits at the start of s.
func digits(s string) int {
	n := 0
	for n < len(s) && isDigit(rune(s[n])) {
		n++
	}
	return n
}

// scanNumber returns the length of the unsigned literal \d+(\.\d+)? at the
// start of s, or 0.
func scanNumber(s string) int {
	n := digits(s)
	if n == 0 {
		return 0
	}
	if n < len(s) && s[n] == '.' {
		if m := digits(s[n+1:]); m > 0 {
			n += 1 + m
		}
	}
	return n
}

// scanGroup returns the length of the literal (-\d+(\.\d+)?) at the start of
// s, or 0.
func scanGroup(s string) int {
	if !strings.HasPrefix(s, "(-") {
		return 0
	}
	n := scanNumber(s[2:])
	if n == 0 || 2+n >= len(s) || s[2+n] != ')' {
		return 0
	}
	return 2 + n + 1
}

// Tokenize scans src into the token sequence of an expression. Group literals
// are expanded into a parenthesized negative number, and each '%' is resolved
// to the modulo operator or the percent operator.
func Tokenize(src string) []Token {
	spans := Lex(src)
	toks := make([]Token, 0, len(spans))
	for _, s := range spans {
		if s.Group {
			toks = append(toks, openToken, s.Token, closeToken)
			continue
		}
		toks = append(toks, s.Token)
	}
	return resolvePercent(toks)
}

// resolvePercent relabels a '%' between two number literals as mod. Any other
// percent sign stays a unary operator on the value to its left.
func resolvePercent(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i, t := range toks {
		if t.isPercent() && i > 0 && i < len(toks)-1 && toks[i-1].Kind == KindNumber && toks[i+1].Kind == KindNumber {
			t = Operator(OpMod)
		}
		out = append(out, t)
	}
	return out
}
