package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/io/clipboard"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/fjl/giocalc/internal/calc"
	"github.com/fjl/giocalc/internal/config"
	"github.com/fjl/giocalc/internal/session"
)

// calcUI is the user interface of the calculator.
type calcUI struct {
	calc    *calculator
	theme   *calcTheme
	buttons [5][4]*button
	panel   [3][5]*button

	cornerRadius int
	gridSpacing  int
}

func newUI(theme *calcTheme, c *calculator) *calcUI {
	ui := &calcUI{theme: theme, calc: c}
	reset := ui.control(session.CmdClear)
	reset.label = c.clearLabel
	var sci *button
	if c.sess.View() == session.ScientificView {
		sci = ui.control(session.CmdScientific)
	}
	ui.buttons = [5][4]*button{
		{reset, ui.control(session.CmdToggleSign), ui.control(session.CmdPercent), ui.op("÷")},
		{ui.digit("7"), ui.digit("8"), ui.digit("9"), ui.op("x")},
		{ui.digit("4"), ui.digit("5"), ui.digit("6"), ui.op("-")},
		{ui.digit("1"), ui.digit("2"), ui.digit("3"), ui.op("+")},
		{ui.digit("0"), sci, ui.control("."), ui.op(session.CmdEquals)},
	}
	ui.panel = [3][5]*button{
		{ui.sci("sin"), ui.sci("cos"), ui.sci("tan"), ui.sci("π"), ui.sci(session.CmdFactorial)},
		{ui.sci("asin"), ui.sci("acos"), ui.sci("atan"), ui.sci("("), ui.sci(")")},
		{ui.sci("ln"), ui.sci("exp"), ui.sci(session.CmdSqrt), ui.sci(session.CmdSquare), ui.sci(session.CmdPower)},
	}
	return ui
}

// digit creates a digit button.
func (ui *calcUI) digit(cmd string) *button {
	return newButton(cmd, digitButton)
}

// op creates an operation button.
func (ui *calcUI) op(cmd string) *button {
	return newButton(cmd, operatorButton)
}

// control creates a control button.
func (ui *calcUI) control(cmd string) *button {
	return newButton(cmd, controlButton)
}

// sci creates a button of the scientific panel.
func (ui *calcUI) sci(cmd string) *button {
	return newButton(cmd, scientificButton)
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx layout.Context) layout.Dimensions {
	// Adapt design for screen size.
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(ui.theme.Size.DesignWidth))
	ui.cornerRadius = gtx.Dp(ui.theme.Size.CornerRadius * unit.Dp(scaleFactor))
	ui.gridSpacing = gtx.Dp(ui.theme.Size.Inset * unit.Dp(scaleFactor))

	// Handle key events.
	ui.layoutInput(gtx)

	inset := layout.UniformInset(ui.theme.Size.Inset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		children := []layout.FlexChild{
			layout.Flexed(20, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutResult)
			}),
		}
		if ui.calc.sess.PanelOpen() {
			children = append(children, layout.Flexed(30, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutPanel)
			}))
		}
		children = append(children, layout.Flexed(70, func(gtx layout.Context) layout.Dimensions {
			return inset.Layout(gtx, ui.layoutButtons)
		}))
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx, children...)
	})
}

func (ui *calcUI) layoutResult(gtx layout.Context) layout.Dimensions {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, ui.cornerRadius)
	paint.FillShape(gtx.Ops, ui.theme.Color.ResultBackground, rr.Op(gtx.Ops))

	inset := layout.UniformInset(ui.theme.Size.Inset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical}
		return flex.Layout(gtx,
			layout.Flexed(30, func(gtx layout.Context) layout.Dimensions {
				l := ui.theme.ExpressionLabel(gtx, ui.calc.expr)
				return shrinkToFit(gtx, l.Layout)
			}),
			layout.Flexed(70, func(gtx layout.Context) layout.Dimensions {
				l := ui.theme.ResultLabel(gtx, ui.calc.text())
				return shrinkToFit(gtx, l.Layout)
			}),
		)
	})
}

func (ui *calcUI) layoutButtons(gtx layout.Context) layout.Dimensions {
	g := grid{
		rows:    len(ui.buttons),
		cols:    len(ui.buttons[0]),
		spacing: ui.gridSpacing,
	}
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		if b := ui.buttons[row][col]; b != nil {
			return ui.layoutButton(gtx, b)
		}
		return layout.Dimensions{}
	})
}

func (ui *calcUI) layoutPanel(gtx layout.Context) layout.Dimensions {
	g := grid{
		rows:    len(ui.panel),
		cols:    len(ui.panel[0]),
		spacing: ui.gridSpacing,
	}
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		return ui.layoutButton(gtx, ui.panel[row][col])
	})
}

func (ui *calcUI) layoutButton(gtx layout.Context, b *button) layout.Dimensions {
	for b.clicker.Clicked(gtx) {
		ui.calc.input(b.command())
	}

	return b.clicker.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		active := b.kind == operatorButton && b.cmd == ui.calc.pendingOp()
		bg := ui.theme.buttonColor(b.kind, active)
		style := ui.theme.Button(gtx, &b.clicker, b.command(), bg, ui.cornerRadius)
		return style.Layout(gtx)
	})
}

// layoutInput registers the global key handler.
func (ui *calcUI) layoutInput(gtx layout.Context) {
	// Register handler for key events.
	input := key.InputOp{
		Tag:  ui,
		Hint: key.HintNumeric,
		Keys: "Short-[C,V]|(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,*,/,%,^,(,),!,=,⌤,⏎,⌫,⌦,⎋]|(Alt)-(Shift)-[-]",
	}
	input.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: ui}.Add(gtx.Ops)

	for _, ev := range gtx.Events(ui) {
		switch ev := ev.(type) {
		case key.Event:
			switch {
			case isCopy(ev):
				op := clipboard.WriteOp{Text: ui.calc.text()}
				op.Add(gtx.Ops)
			case isPaste(ev):
				op := clipboard.ReadOp{Tag: ui}
				op.Add(gtx.Ops)
			default:
				ui.handleKey(ev)
			}

		case clipboard.Event:
			ui.calc.paste(ev.Text)
		}
	}
}

func isCopy(e key.Event) bool {
	return e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}

func isPaste(e key.Event) bool {
	return e.Name == "V" && e.Modifiers.Contain(key.ModShortcut)
}

// keyCommands maps key names to calculator commands.
var keyCommands = map[string]string{
	"+":                    calc.OpAdd,
	"*":                    calc.OpMul,
	"/":                    calc.OpDiv,
	"%":                    session.CmdPercent,
	"^":                    session.CmdPower,
	"(":                    "(",
	")":                    ")",
	"!":                    session.CmdFactorial,
	"=":                    session.CmdEquals,
	key.NameEnter:          session.CmdEquals,
	key.NameReturn:         session.CmdEquals,
	key.NameDeleteBackward: session.CmdBackspace,
	key.NameDeleteForward:  session.CmdBackspace,
	key.NameEscape:         session.CmdClear,
}

// handleKey handles a key event.
func (ui *calcUI) handleKey(e key.Event) {
	if e.State == key.Release {
		return
	}

	switch e.Name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".":
		ui.calc.input(e.Name)
	case "-":
		if e.Modifiers.Contain(key.ModAlt) {
			ui.calc.input(session.CmdToggleSign)
		} else {
			ui.calc.input(calc.OpSub)
		}
	default:
		if cmd, ok := keyCommands[e.Name]; ok {
			ui.calc.input(cmd)
		}
	}
}

// button is a clickable button.
type button struct {
	cmd   string
	kind  buttonKind
	label func() string

	clicker widget.Clickable
}

func newButton(cmd string, kind buttonKind) *button {
	return &button{cmd: cmd, kind: kind}
}

// command returns the command sent by the button, which is also its label.
func (b *button) command() string {
	if b.label != nil {
		return b.label()
	}
	return b.cmd
}

// loadConfig reads config.yaml from the application data directory.
func loadConfig() config.Config {
	dir, err := app.DataDir()
	if err != nil {
		log.Printf("no data directory: %v", err)
		return config.Default()
	}
	path := filepath.Join(dir, "giocalc", "config.yaml")
	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("using default config (err: %v)", err)
		return config.Default()
	}
	log.Printf("config loaded: %s (%s view)", path, cfg.View)
	return cfg
}

func main() {
	cfg := loadConfig()
	th := newCalcTheme(cfg.Colors)
	var (
		size     = app.Size(th.Size.DesignWidth, th.Size.DesignHeight)
		statusBg = app.StatusColor(th.Color.Background)
		sysBg    = app.NavigationColor(th.Color.Background)
		title    = app.Title("GioCalc")
		portrait = app.PortraitOrientation.Option()
	)
	go func() {
		w := app.NewWindow(statusBg, sysBg, size, title, portrait)
		w.Option(app.MinSize(th.Size.DesignWidth, th.Size.DesignHeight))

		if err := loop(w, th, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop is the main loop of the app.
func loop(w *app.Window, th *calcTheme, cfg config.Config) error {
	opts := append(cfg.SessionOptions(), session.WithLogger(log.Default()))
	var (
		c     = newCalculator(cfg.SessionView(), opts...)
		ui    = newUI(th, c)
		panel = c.sess.PanelOpen()
		ops   op.Ops
	)

	for {
		switch e := w.NextEvent().(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, th.Color.Background)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)

			// Give the scientific panel room when it is toggled.
			if open := c.sess.PanelOpen(); open != panel {
				panel = open
				height := th.Size.DesignHeight
				if open {
					height += th.Size.PanelHeight
				}
				w.Option(app.MinSize(th.Size.DesignWidth, height))
			}
		}
	}
}
