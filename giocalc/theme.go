package main

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/fjl/giocalc/internal/config"
)

// buttonKind selects the color of a button.
type buttonKind int

const (
	digitButton buttonKind = iota
	controlButton
	operatorButton
	scientificButton
)

// calcTheme defines the look of the calculator.
type calcTheme struct {
	*material.Theme

	Color struct {
		Background       color.NRGBA
		ResultBackground color.NRGBA
		Result           color.NRGBA
		Expression       color.NRGBA
		Digit            color.NRGBA
		Control          color.NRGBA
		Operator         color.NRGBA
		ActiveOperator   color.NRGBA
		Scientific       color.NRGBA
	}
	Size struct {
		DesignWidth  unit.Dp
		DesignHeight unit.Dp
		PanelHeight  unit.Dp
		Inset        unit.Dp
		CornerRadius unit.Dp
	}
}

func newCalcTheme(colors config.Colors) *calcTheme {
	th := &calcTheme{Theme: material.NewTheme()}
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	// Colors.
	th.Color.Background = colors.Background.NRGBA()
	th.Color.ResultBackground = colors.Display.NRGBA()
	th.Color.Result = colors.Text.NRGBA()
	th.Color.Expression = colors.Expression.NRGBA()
	th.Color.Digit = colors.Digit.NRGBA()
	th.Color.Control = colors.Control.NRGBA()
	th.Color.Operator = colors.Operator.NRGBA()
	th.Color.ActiveOperator = colors.Active.NRGBA()
	th.Color.Scientific = colors.Scientific.NRGBA()
	th.Palette.Fg = th.Color.Result
	th.Palette.Bg = th.Color.Background

	// Sizes.
	th.Size.DesignWidth = 270
	th.Size.DesignHeight = 345
	th.Size.PanelHeight = 150
	th.Size.Inset = 6
	th.Size.CornerRadius = 3.5
	return th
}

// buttonColor returns the background of a button.
func (th *calcTheme) buttonColor(kind buttonKind, active bool) color.NRGBA {
	switch {
	case active:
		return th.Color.ActiveOperator
	case kind == controlButton:
		return th.Color.Control
	case kind == operatorButton:
		return th.Color.Operator
	case kind == scientificButton:
		return th.Color.Scientific
	default:
		return th.Color.Digit
	}
}

// Button makes a calculator key. Its text scales with the height of the key.
func (th *calcTheme) Button(gtx layout.Context, c *widget.Clickable, label string, bg color.NRGBA, radius int) material.ButtonStyle {
	textSizePx := float32(gtx.Constraints.Max.Y) / 2.2
	style := material.Button(th.Theme, c, label)
	style.Background = bg
	style.Color = th.Color.Result
	style.Inset = layout.Inset{}
	style.TextSize = unit.Sp(textSizePx / gtx.Metric.PxPerSp)
	style.CornerRadius = unit.Dp(float32(radius) / gtx.Metric.PxPerDp)
	return style
}

// ResultLabel makes the label of the primary display. The font is scaled to
// the available height. The label is left-aligned, shrinkToFit moves it to
// the right edge.
func (th *calcTheme) ResultLabel(gtx layout.Context, txt string) material.LabelStyle {
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.1
	l := material.Label(th.Theme, unit.Sp(fontSizePx/gtx.Metric.PxPerSp), txt)
	l.Color = th.Color.Result
	l.Alignment = text.Start
	l.MaxLines = 1
	return l
}

// ExpressionLabel makes the label of the expression line.
func (th *calcTheme) ExpressionLabel(gtx layout.Context, txt string) material.LabelStyle {
	l := th.ResultLabel(gtx, txt)
	l.Color = th.Color.Expression
	return l
}
