package calc

import (
	"math"
)

// DefaultPrecedence is the precedence table used by NewEvaluator. Higher
// levels bind tighter. The parentheses are sentinels and never compared with
// real operators.
var DefaultPrecedence = map[string]int{
	"sin": 5, "cos": 5, "tan": 5,
	"asin": 5, "acos": 5, "atan": 5,
	"ln": 5, "exp": 5, "sqrt": 5,
	OpFact: 5, OpPow: 4,
	"(": 3, ")": 3,
	OpMul: 2, OpDiv: 2, OpMod: 2, OpPercent: 2,
	OpAdd: 1, OpSub: 1,
}

// Evaluator evaluates token sequences. It holds no state between evaluations
// other than its configuration, so one Evaluator can serve any number of
// calls.
type Evaluator struct {
	prec map[string]int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithPrecedence sets the precedence level of an operator or function.
func WithPrecedence(sym string, level int) Option {
	return func(ev *Evaluator) {
		ev.prec[sym] = level
	}
}

// NewEvaluator creates an evaluator using DefaultPrecedence modified by opts.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := &Evaluator{prec: make(map[string]int, len(DefaultPrecedence))}
	for k, v := range DefaultPrecedence {
		ev.prec[k] = v
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Precedence returns the precedence level of an operator or function name.
// Unknown symbols have level 0.
func (ev *Evaluator) Precedence(sym string) int {
	return ev.prec[sym]
}

// state is the pair of stacks used during one evaluation.
type state struct {
	vals []float64
	ops  []Token
}

func (s *state) push(v float64) {
	s.vals = append(s.vals, v)
}

// pop removes the top value. The second result is false if the stack is
// empty.
func (s *state) pop() (float64, bool) {
	if len(s.vals) == 0 {
		return 0, false
	}
	v := s.vals[len(s.vals)-1]
	s.vals = s.vals[:len(s.vals)-1]
	return v, true
}

func (s *state) pushOp(t Token) {
	s.ops = append(s.ops, t)
}

func (s *state) popOp() Token {
	t := s.ops[len(s.ops)-1]
	s.ops = s.ops[:len(s.ops)-1]
	return t
}

// topOp returns the top of the operator stack, or a KindNone token.
func (s *state) topOp() Token {
	if len(s.ops) == 0 {
		return Token{}
	}
	return s.ops[len(s.ops)-1]
}

// Eval evaluates a resolved token sequence.
func (ev *Evaluator) Eval(toks []Token) (float64, error) {
	if len(toks) == 0 {
		return 0, ErrEmptyExpression
	}
	var s state
	for _, t := range toks {
		if t.Kind == KindConstant {
			v, ok := constants[t.Text]
			if !ok {
				return 0, &Error{Kind: UnsupportedOperator, Op: t.Text}
			}
			t = Number(v)
		}
		switch {
		case t.Kind == KindNumber:
			if math.IsInf(t.Value, 0) || math.IsNaN(t.Value) {
				return 0, &Error{Kind: InvalidNumber, Value: t.Value}
			}
			v := t.Value
			if t.Percent {
				v /= 100
			}
			s.push(v)
		case t.isPercent():
			v, ok := s.pop()
			if !ok {
				return 0, &Error{Kind: InvalidExpression, Op: OpPercent}
			}
			s.push(v / 100)
		case t.Kind == KindFunction, t.Kind == KindOpen:
			s.pushOp(t)
		case t.Kind == KindClose:
			if err := ev.closeGroup(&s); err != nil {
				return 0, err
			}
		case t.Kind == KindOperator:
			for len(s.ops) > 0 {
				top := s.topOp()
				if top.Kind == KindOpen || ev.prec[top.Text] < ev.prec[t.Text] {
					break
				}
				if err := ev.apply(&s, s.popOp()); err != nil {
					return 0, err
				}
			}
			s.pushOp(t)
		default:
			return 0, &Error{Kind: UnsupportedOperator, Op: t.String()}
		}
	}
	for len(s.ops) > 0 {
		if err := ev.apply(&s, s.popOp()); err != nil {
			return 0, err
		}
	}
	if len(s.vals) != 1 {
		return 0, ErrInvalidExpression
	}
	r := s.vals[0]
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, &Error{Kind: DomainError, Value: r}
	}
	return r, nil
}

// closeGroup reduces the operators up to the matching open parenthesis. A
// function waiting in front of the group is applied to its value.
func (ev *Evaluator) closeGroup(s *state) error {
	for len(s.ops) > 0 && s.topOp().Kind != KindOpen {
		if err := ev.apply(s, s.popOp()); err != nil {
			return err
		}
	}
	if len(s.ops) == 0 {
		return ErrUnbalancedParentheses
	}
	s.popOp()
	if s.topOp().Kind == KindFunction {
		return ev.apply(s, s.popOp())
	}
	return nil
}

// apply pops the operands of op from the value stack and pushes the result.
func (ev *Evaluator) apply(s *state, op Token) error {
	if op.Kind == KindOpen {
		return ErrUnbalancedParentheses
	}
	if f, ok := unary[op.Text]; ok {
		x, ok := s.pop()
		if !ok {
			return &Error{Kind: InvalidExpression, Op: op.Text}
		}
		r, err := f(x)
		if err != nil {
			return err
		}
		s.push(r)
		return nil
	}
	f, ok := binary[op.Text]
	if !ok {
		return &Error{Kind: UnsupportedOperator, Op: op.Text}
	}
	if len(s.vals) < 2 {
		return &Error{Kind: InvalidExpression, Op: op.Text}
	}
	b, _ := s.pop()
	a, _ := s.pop()
	r, err := f(a, b)
	if err != nil {
		return err
	}
	s.push(r)
	return nil
}

// Result is the outcome of a successful calculation.
type Result struct {
	// Value is the numeric result.
	Value float64
	// Text is Value as the display shows it.
	Text string
	// Source is the expression that was evaluated.
	Source string
}

// Calculate runs the whole pipeline on expr: tokenize, resolve implicit
// multiplications, evaluate and format.
func (ev *Evaluator) Calculate(expr string) (Result, error) {
	v, err := ev.Eval(Resolve(Tokenize(expr)))
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, Text: Format(v), Source: expr}, nil
}

var defaultEvaluator = NewEvaluator()

// Calculate is a shortcut to evaluate expr with the default precedence.
func Calculate(expr string) (Result, error) {
	return defaultEvaluator.Calculate(expr)
}
