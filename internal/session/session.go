// Package session connects a calculator display to the input buffer and the
// expression evaluator. A display sends command tokens to Handle and receives
// the texts to show through the Display interface.
package session

import (
	"io"
	"log"

	"github.com/fjl/giocalc/internal/calc"
	"github.com/fjl/giocalc/internal/editor"
)

// Display is the presentation side of a session.
type Display interface {
	// SetDisplay sets the primary display: the input, a result or an error.
	SetDisplay(text string)
	// SetExpression sets the secondary display, which shows the expression
	// that was last evaluated.
	SetExpression(text string)
	// SetBackspace switches the AC key between AC (false) and backspace (true).
	SetBackspace(on bool)
}

// View is the capability of a display.
type View int8

const (
	// BasicView has the digit, operator and control keys only.
	BasicView View = iota
	// ScientificView also has the scientific panel.
	ScientificView
)

func (v View) String() string {
	switch v {
	case BasicView:
		return "basic"
	case ScientificView:
		return "scientific"
	default:
		return "unknown"
	}
}

// Control commands.
const (
	CmdClear      = "AC"
	CmdBackspace  = "←"
	CmdToggleSign = "±"
	CmdPercent    = "%"
	CmdEquals     = "="
	CmdScientific = "Sci"
)

// Scientific commands which are not the text they insert.
const (
	CmdSqrt      = "√"
	CmdSquare    = "x²"
	CmdPower     = "xʸ"
	CmdFactorial = "n!"
)

// DefaultErrorPrefix is put in front of error messages on the display.
const DefaultErrorPrefix = "Erreur: "

// insertions maps the scientific commands to the text they append.
var insertions = map[string]string{
	"sin": "sin(", "cos": "cos(", "tan": "tan(",
	"asin": "asin(", "acos": "acos(", "atan": "atan(",
	"ln": "ln(", "exp": "exp(",
	CmdSqrt:      "sqrt(",
	CmdSquare:    "^2",
	CmdPower:     "^",
	CmdFactorial: "!",
	calc.Pi:      calc.Pi,
	"(":          "(",
	")":          ")",
}

// Scientific reports whether cmd belongs to the scientific panel.
func Scientific(cmd string) bool {
	_, ok := insertions[cmd]
	return ok || cmd == CmdScientific
}

// Session is a calculator session. It is not safe for concurrent use.
type Session struct {
	disp      Display
	view      View
	panel     bool
	buf       editor.Buffer
	calc      editor.Calculator
	errPrefix string
	log       *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger makes the session log failed evaluations to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithErrorPrefix replaces DefaultErrorPrefix.
func WithErrorPrefix(prefix string) Option {
	return func(s *Session) { s.errPrefix = prefix }
}

// WithEvaluator sets the calculator used by the '=' command. The default is
// calc.NewEvaluator().
func WithEvaluator(c editor.Calculator) Option {
	return func(s *Session) { s.calc = c }
}

// New creates a session and resets d.
func New(d Display, view View, opts ...Option) *Session {
	s := &Session{
		disp:      d,
		view:      view,
		errPrefix: DefaultErrorPrefix,
		log:       log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.calc == nil {
		s.calc = calc.NewEvaluator()
	}
	s.clear()
	return s
}

// View returns the view the session was created with.
func (s *Session) View() View {
	return s.view
}

// PanelOpen reports whether the scientific panel is shown.
func (s *Session) PanelOpen() bool {
	return s.panel
}

// Input returns the content of the input buffer.
func (s *Session) Input() string {
	return s.buf.String()
}

// Handle processes a command token. It returns false if the command was
// ignored, either because it is unknown or because the view does not support
// it.
func (s *Session) Handle(cmd string) bool {
	switch {
	case cmd == ".", len(cmd) == 1 && '0' <= cmd[0] && cmd[0] <= '9':
		s.buf.AppendDigit(cmd)
	case cmd == calc.OpAdd, cmd == calc.OpSub, cmd == calc.OpMul, cmd == calc.OpDiv:
		s.buf.AppendOperator(cmd)
	case cmd == CmdClear:
		s.clear()
		return true
	case cmd == CmdBackspace:
		s.buf.Backspace()
	case cmd == CmdToggleSign:
		s.buf.ToggleSign()
	case cmd == CmdPercent:
		s.buf.AppendPercent()
	case cmd == CmdEquals:
		return s.evaluate()
	case cmd == CmdScientific:
		return s.TogglePanel()
	default:
		text, ok := insertions[cmd]
		if !ok || s.view != ScientificView {
			return false
		}
		s.buf.AppendText(text)
	}
	s.refresh()
	return true
}

// TogglePanel shows or hides the scientific panel. It does nothing in a basic
// view.
func (s *Session) TogglePanel() bool {
	if s.view != ScientificView {
		return false
	}
	s.panel = !s.panel
	return true
}

func (s *Session) clear() {
	s.buf.Clear()
	s.disp.SetDisplay("0")
	s.disp.SetExpression("")
	s.disp.SetBackspace(false)
}

// refresh shows the input buffer.
func (s *Session) refresh() {
	text := s.buf.String()
	if text == "" {
		text = "0"
	}
	s.disp.SetDisplay(text)
	s.disp.SetBackspace(s.buf.CanBackspace())
}

func (s *Session) evaluate() bool {
	if s.buf.String() == "" {
		return false
	}
	expr := s.buf.Balanced()
	r, err := s.buf.Evaluate(s.calc)
	if err != nil {
		s.log.Printf("evaluate %q: %v", expr, err)
		s.disp.SetDisplay(s.errPrefix + err.Error())
		return true
	}
	s.disp.SetExpression(r.Source)
	s.disp.SetDisplay(r.Text)
	s.disp.SetBackspace(false)
	return true
}
