// Package editor implements the input buffer of the calculator. The buffer is
// edited token by token, using the same grammar as the calc package.
package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/fjl/giocalc/internal/calc"
)

// State is the state of the AC/backspace key.
type State int8

const (
	// Empty means the buffer holds nothing. The key shows AC.
	Empty State = iota
	// Filled means the buffer holds user input. The key shows backspace.
	Filled
	// Evaluated means the buffer holds the result of the last evaluation. The
	// key shows AC and the next digit starts a new expression.
	Evaluated
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	case Evaluated:
		return "evaluated"
	default:
		return "unknown"
	}
}

// binaryOps are the operators that replace each other at the end of the buffer.
const binaryOps = calc.OpAdd + calc.OpSub + calc.OpMul + calc.OpDiv

// Calculator evaluates an expression.
type Calculator interface {
	Calculate(expr string) (calc.Result, error)
}

// Buffer holds the expression being typed. The zero value is an empty buffer.
type Buffer struct {
	text  string
	state State
}

// String returns the content of the buffer.
func (b *Buffer) String() string {
	return b.text
}

// State returns the state of the AC/backspace key.
func (b *Buffer) State() State {
	return b.state
}

// CanBackspace reports whether the AC/backspace key acts as backspace.
func (b *Buffer) CanBackspace() bool {
	return b.state == Filled
}

// touch records an edit.
func (b *Buffer) touch() {
	if b.text == "" {
		b.state = Empty
	} else {
		b.state = Filled
	}
}

// AppendDigit processes a digit or the decimal point. A second point in the
// same operand is ignored, and a point that starts an operand is written as
// "0.". Input other than a single digit or point is ignored.
func (b *Buffer) AppendDigit(in string) {
	if len(in) != 1 || !(in == "." || isDigit(in[0])) {
		return
	}
	if b.state == Evaluated {
		b.text = ""
	}
	if in == "." {
		op := currentOperand(b.text)
		if strings.Contains(op, ".") {
			return
		}
		if op == "" {
			in = "0."
		}
	}
	b.text += in
	b.touch()
}

// AppendOperator appends one of the binary operators + - x ÷. A trailing
// binary operator is replaced instead of doubled.
func (b *Buffer) AppendOperator(sym string) {
	if utf8.RuneCountInString(sym) != 1 || !strings.Contains(binaryOps, sym) {
		return
	}
	if r, sz := utf8.DecodeLastRuneInString(b.text); sz > 0 && strings.ContainsRune(binaryOps, r) {
		b.text = b.text[:len(b.text)-sz]
	}
	b.text += sym
	b.touch()
}

// AppendPercent appends a percent sign. Whether it means percent or modulo is
// decided when the expression is evaluated.
func (b *Buffer) AppendPercent() {
	b.text += calc.OpPercent
	b.touch()
}

// AppendText appends s verbatim. It is used for function names, constants,
// parentheses and the power and factorial operators.
func (b *Buffer) AppendText(s string) {
	if s == "" {
		return
	}
	b.text += s
	b.touch()
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.text = ""
	b.state = Empty
}

// Backspace removes the last token. A number literal loses only its last
// character, so "(-12)" becomes "(-12". A function name goes together with
// its opening parenthesis.
func (b *Buffer) Backspace() {
	if b.text == "" {
		return
	}
	b.text = b.text[:len(b.text)-tailLen(b.text)]
	b.touch()
}

// tailLen returns the number of bytes Backspace removes from s.
func tailLen(s string) int {
	spans := calc.Lex(s)
	if n := len(spans); n > 0 && spans[n-1].End == len(s) {
		last := spans[n-1]
		switch {
		case last.Kind == calc.KindNumber && last.Len() > 1:
			return 1
		case last.Kind == calc.KindOpen && n > 1 && spans[n-2].Kind == calc.KindFunction && spans[n-2].End == last.Start:
			return last.End - spans[n-2].Start
		default:
			return last.Len()
		}
	}
	// No token ends the buffer. Remove one user-perceived character.
	start := 0
	for g := uniseg.NewGraphemes(s); g.Next(); {
		start, _ = g.Positions()
	}
	return len(s) - start
}

// ToggleSign flips the sign of the last operand. A negative operand is
// written in parentheses, as in "3x(-5)". If the buffer starts with a minus
// sign, that sign is removed instead.
func (b *Buffer) ToggleSign() {
	if b.text == "" {
		return
	}
	if strings.HasPrefix(b.text, calc.OpSub) {
		b.text = b.text[1:]
		b.touch()
		return
	}
	start, num := lastOperand(b.text)
	if num == "" {
		return
	}
	if strings.HasPrefix(num, calc.OpSub) {
		num = num[1:]
	} else {
		num = "(" + calc.OpSub + num + ")"
	}
	b.text = b.text[:start] + num
	b.touch()
}

// lastOperand finds the number at the end of s, with its sign and optional
// parentheses. It returns the offset of the operand and the signed number
// without parentheses, or an empty string if s does not end in a number.
func lastOperand(s string) (int, string) {
	end := len(s)
	paren := strings.HasSuffix(s, ")")
	if paren {
		end--
	}
	start := end
	for start > 0 && isNumeric(s[start-1]) {
		start--
	}
	if start == end || !isDigit(s[start]) {
		return 0, ""
	}
	if paren {
		if start > 0 && s[start-1] == '-' {
			start--
		}
		if start == 0 || s[start-1] != '(' {
			return 0, ""
		}
		return start - 1, s[start:end]
	}
	if start > 0 && s[start-1] == '-' && signed(s[:end], start-1) {
		start--
	}
	return start, s[start:end]
}

// signed reports whether the minus sign at offset i of s is the sign of the
// number literal ending s, as the lexer reads it.
func signed(s string, i int) bool {
	spans := calc.Lex(s)
	if len(spans) == 0 {
		return false
	}
	last := spans[len(spans)-1]
	return last.Kind == calc.KindNumber && last.Start == i
}

// currentOperand returns the run of digits and points at the end of s.
func currentOperand(s string) string {
	i := len(s)
	for i > 0 && isNumeric(s[i-1]) {
		i--
	}
	return s[i:]
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isNumeric(c byte) bool {
	return isDigit(c) || c == '.'
}

// Balanced returns the buffer content with the missing closing parentheses
// appended. The buffer itself is not modified.
func (b *Buffer) Balanced() string {
	return Balance(b.text)
}

// Balance appends one ')' to expr for every unmatched '('.
func Balance(expr string) string {
	open := strings.Count(expr, "(") - strings.Count(expr, ")")
	if open <= 0 {
		return expr
	}
	return expr + strings.Repeat(")", open)
}

// Evaluate computes the balanced buffer content. On success the buffer is
// replaced by the formatted result, so that it can be used in a following
// expression. On failure the buffer is left as is.
func (b *Buffer) Evaluate(c Calculator) (calc.Result, error) {
	r, err := c.Calculate(b.Balanced())
	if err != nil {
		return calc.Result{}, err
	}
	b.text = r.Text
	b.state = Evaluated
	return r, nil
}
