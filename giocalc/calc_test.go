package main

import (
	"image"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/fjl/giocalc/internal/config"
	"github.com/fjl/giocalc/internal/session"
)

func TestCalcInput(t *testing.T) {
	c := newCalculator(session.BasicView)
	check(t, c, "0")
	// input integer
	c.input("1")
	c.input("2")
	c.input("3")
	check(t, c, "123")
	// redo last digit
	c.input("←")
	c.input("4")
	check(t, c, "124")
	// decimal point
	c.input(".")
	check(t, c, "124.")
	c.input(".")
	check(t, c, "124.")
	c.input("6")
	c.input("7")
	check(t, c, "124.67")
	// rubout decimals
	c.input("←")
	check(t, c, "124.6")
	c.input("←")
	check(t, c, "124.")
	c.input("←")
	check(t, c, "124")
}

func TestCalcClearLabel(t *testing.T) {
	c := newCalculator(session.BasicView)
	if c.clearLabel() != "AC" {
		t.Fatalf("wrong label %q", c.clearLabel())
	}
	c.input("5")
	if c.clearLabel() != "←" {
		t.Fatalf("wrong label %q after input", c.clearLabel())
	}
	c.input("=")
	if c.clearLabel() != "AC" {
		t.Fatalf("wrong label %q after result", c.clearLabel())
	}
}

func TestCalcEvaluate(t *testing.T) {
	c := newCalculator(session.BasicView)
	for _, cmd := range []string{"1", "3", "4", ".", "2", "÷", "2"} {
		c.input(cmd)
	}
	check(t, c, "134.2÷2")
	c.input("=")
	check(t, c, "67.1")
	if c.expr != "134.2÷2" {
		t.Fatalf("wrong expression %q", c.expr)
	}
	c.input("AC")
	check(t, c, "0")
	if c.expr != "" {
		t.Fatalf("expression not cleared: %q", c.expr)
	}
}

func TestCalcOpTwice(t *testing.T) {
	c := newCalculator(session.BasicView)
	c.input("1")
	c.input("÷")
	c.input("÷")
	c.input("x")
	check(t, c, "1x")
	if op := c.pendingOp(); op != "x" {
		t.Fatalf("wrong pending op %q", op)
	}
	c.input("2")
	if op := c.pendingOp(); op != "" {
		t.Fatalf("wrong pending op %q", op)
	}
}

func TestCalcError(t *testing.T) {
	c := newCalculator(session.BasicView, session.WithErrorPrefix("E: "))
	c.paste("ln(0)")
	check(t, c, "0")
	c.input("AC")
	c.paste("1/0")
	c.input("=")
	check(t, c, "E: division by zero")
}

func TestCalcPaste(t *testing.T) {
	c := newCalculator(session.ScientificView)
	if n := c.paste(" 2*(3+4) "); n != 7 {
		t.Fatalf("wrong number of commands accepted: %d", n)
	}
	check(t, c, "2x(3+4)")
	c.input("=")
	check(t, c, "14")

	c.input("AC")
	c.paste("sqrt(16)+2^3+3!+pi")
	check(t, c, "sqrt(16)+2^3+3!+π")

	c.input("AC")
	c.paste("7 mod 2")
	check(t, c, "7%2")
	c.input("=")
	check(t, c, "1")
}

func TestCalcScientificView(t *testing.T) {
	c := newCalculator(session.BasicView)
	if c.input("sin") || c.input("Sci") {
		t.Fatal("basic view accepted scientific command")
	}
	c = newCalculator(session.ScientificView)
	c.input("Sci")
	if !c.sess.PanelOpen() {
		t.Fatal("panel not open")
	}
	c.input("sin")
	c.input("0")
	c.input("=")
	check(t, c, "0")
	if c.expr != "sin(0)" {
		t.Fatalf("wrong expression %q", c.expr)
	}
}

// frame lays out ui once, the way the window loop does.
func frame(ui *calcUI) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(270, 345)),
	}
	ui.Layout(gtx)
}

func TestCalcUIClick(t *testing.T) {
	c := newCalculator(session.ScientificView)
	ui := newUI(newCalcTheme(config.Default().Colors), c)
	frame(ui)
	check(t, c, "0")

	// digit 7, then x, then 6
	ui.buttons[1][0].clicker.Click()
	frame(ui)
	ui.buttons[1][3].clicker.Click()
	frame(ui)
	ui.buttons[2][2].clicker.Click()
	frame(ui)
	check(t, c, "7x6")
	if l := ui.buttons[0][0].command(); l != session.CmdBackspace {
		t.Fatalf("wrong clear label %q", l)
	}

	// equals
	ui.buttons[4][3].clicker.Click()
	frame(ui)
	check(t, c, "42")

	// open the panel and use it
	ui.buttons[4][1].clicker.Click()
	frame(ui)
	if !c.sess.PanelOpen() {
		t.Fatal("panel not open")
	}
	ui.buttons[0][0].clicker.Click()
	frame(ui)
	ui.panel[0][3].clicker.Click()
	frame(ui)
	check(t, c, "π")
}

func check(t *testing.T, c *calculator, text string) {
	t.Helper()
	if c.text() != text {
		t.Fatalf("wrong text\n  got: %q\n want: %q\nstate: %+v", c.text(), text, *c)
	}
}
