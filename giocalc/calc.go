package main

import (
	"strings"

	"github.com/fjl/giocalc/internal/calc"
	"github.com/fjl/giocalc/internal/session"
)

// calculator holds the state shown in the window. It is the display of a
// calculator session.
type calculator struct {
	sess      *session.Session
	result    string
	expr      string
	backspace bool
}

func newCalculator(view session.View, opts ...session.Option) *calculator {
	c := new(calculator)
	c.sess = session.New(c, view, opts...)
	return c
}

func (c *calculator) SetDisplay(text string) { c.result = text }
func (c *calculator) SetExpression(text string) { c.expr = text }
func (c *calculator) SetBackspace(on bool) { c.backspace = on }

// input runs a command.
func (c *calculator) input(cmd string) bool {
	return c.sess.Handle(cmd)
}

// text gives the current output of the calculator.
func (c *calculator) text() string {
	return c.result
}

// clearLabel is the label of the AC/backspace key.
func (c *calculator) clearLabel() string {
	if c.backspace {
		return session.CmdBackspace
	}
	return session.CmdClear
}

// pendingOp returns the operator at the end of the input, if any. The key of
// that operator is highlighted.
func (c *calculator) pendingOp() string {
	in := c.sess.Input()
	for _, op := range []string{calc.OpAdd, calc.OpSub, calc.OpMul, calc.OpDiv} {
		if strings.HasSuffix(in, op) {
			return op
		}
	}
	return ""
}

// pasteReplacer maps common spellings of the operators to the calculator's.
var pasteReplacer = strings.NewReplacer(
	"*", calc.OpMul,
	"×", calc.OpMul,
	"/", calc.OpDiv,
	"pi", calc.Pi,
	",", ".",
)

// paste enters text as a sequence of commands. It returns the number of
// commands that were accepted.
func (c *calculator) paste(text string) int {
	text = pasteReplacer.Replace(strings.TrimSpace(text))
	n := 0
	for _, cmd := range pasteCommands(text) {
		if c.input(cmd) {
			n++
		}
	}
	return n
}

// pasteCommands splits text into commands using the expression grammar.
func pasteCommands(text string) []string {
	var cmds []string
	spans := calc.Lex(text)
	for i := 0; i < len(spans); i++ {
		sp := spans[i]
		src := text[sp.Start:sp.End]
		switch sp.Kind {
		case calc.KindNumber:
			for _, r := range src {
				cmds = append(cmds, string(r))
			}
		case calc.KindFunction:
			// The command inserts the opening parenthesis.
			if i+1 < len(spans) && spans[i+1].Kind == calc.KindOpen {
				i++
			}
			if src == "sqrt" {
				src = session.CmdSqrt
			}
			cmds = append(cmds, src)
		case calc.KindOperator:
			switch src {
			case calc.OpPow:
				src = session.CmdPower
			case calc.OpFact:
				src = session.CmdFactorial
			case calc.OpMod:
				src = session.CmdPercent
			}
			cmds = append(cmds, src)
		default:
			cmds = append(cmds, src)
		}
	}
	return cmds
}
