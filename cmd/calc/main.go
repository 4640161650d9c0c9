// Command calc evaluates calculator expressions in the terminal.
//
// By default every input line or argument is an expression, e.g.
//
//	calc '2(3+4)' 'sqrt(2'
//
// With -keys, input lines are sequences of keys separated by spaces, which are
// replayed into a calculator session as if typed on the keypad:
//
//	echo '1 2 ± x 3 =' | calc -keys
package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/fjl/giocalc/internal/calc"
	"github.com/fjl/giocalc/internal/config"
	"github.com/fjl/giocalc/internal/editor"
	"github.com/fjl/giocalc/internal/session"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname, view string
		keys, echo, verbose   bool
		dump                  bool
		width                 int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&cfgname, "config", "", "configuration file")
	flag.StringVar(&view, "view", "", "calculator view, basic or scientific (overrides the configuration)")
	flag.BoolVar(&keys, "keys", false, "replay input lines as key sequences")
	flag.BoolVar(&echo, "echo", false, "print the evaluated expressions")
	flag.BoolVar(&verbose, "v", false, "log failed evaluations")
	flag.BoolVar(&dump, "dump-config", false, "print the configuration and exit")
	flag.IntVar(&width, "width", 0, "right-align results to this many columns")
	flag.Parse()
	if width < 0 {
		log.Fatalf("width (%d) must not be negative", width)
	}

	cfg := config.Default()
	if cfgname != "" {
		var err error
		if cfg, err = config.Load(cfgname); err != nil {
			log.Fatal(err)
		}
	}
	if view != "" {
		cfg.View = view
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
	}
	if dump {
		out, err := cfg.Marshal()
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(out)
		return
	}

	var ins []io.Reader
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		defer f.Close()
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	p := printer{w: bufio.NewWriter(os.Stdout), width: width, echo: echo}
	defer p.w.Flush()
	opts := cfg.SessionOptions()
	if verbose {
		opts = append(opts, session.WithLogger(log.New(os.Stderr, "calc: ", 0)))
	}
	for _, in := range ins {
		if keys {
			err = p.replay(in, cfg.SessionView(), opts...)
		} else {
			err = p.evaluate(in, calc.NewEvaluator(cfg.EvaluatorOptions()...), cfg.ErrorPrefix)
		}
		if err != nil {
			log.Fatal(err)
		}
	}
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}

// printer writes results.
type printer struct {
	w     *bufio.Writer
	width int
	echo  bool
}

// line writes s, padded on the left to the configured width.
func (p *printer) line(s string) {
	if w := uniseg.StringWidth(s); w < p.width {
		s = strings.Repeat(" ", p.width-w) + s
	}
	p.w.WriteString(s)
	p.w.WriteByte('\n')
}

// evaluate computes every non-empty line of in as an expression.
func (p *printer) evaluate(in io.Reader, c editor.Calculator, errPrefix string) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		expr := strings.TrimSpace(sc.Text())
		if expr == "" {
			continue
		}
		r, err := c.Calculate(editor.Balance(expr))
		if p.echo {
			p.line(editor.Balance(expr))
		}
		if err != nil {
			p.line(errPrefix + err.Error())
			continue
		}
		p.line(r.Text)
	}
	return sc.Err()
}

// replay feeds every line of in as a key sequence into a new session, and
// prints the display after each line.
func (p *printer) replay(in io.Reader, view session.View, opts ...session.Option) error {
	var d textDisplay
	s := session.New(&d, view, opts...)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		for _, key := range fields {
			if !s.Handle(key) {
				log.Printf("ignored key %q", key)
			}
		}
		if p.echo && d.expr != "" {
			p.line(d.expr)
		}
		p.line(d.text)
	}
	return sc.Err()
}

// textDisplay keeps the state of a session display.
type textDisplay struct {
	text, expr string
	backspace  bool
}

func (d *textDisplay) SetDisplay(text string) { d.text = text }
func (d *textDisplay) SetExpression(text string) { d.expr = text }
func (d *textDisplay) SetBackspace(on bool) { d.backspace = on }
