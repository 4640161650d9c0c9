// Package config reads the calculator configuration file.
//
// The file is YAML. All keys are optional:
//
//	view: scientific          # or basic
//	error_prefix: "Erreur: "
//	precedence:               # operator or function name -> level
//	  "+": 1
//	colors:
//	  background: "#323232"
//	  digit: "#5a5a5a"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fjl/giocalc/internal/calc"
	"github.com/fjl/giocalc/internal/session"
)

// Config is the calculator configuration.
type Config struct {
	View        string         `yaml:"view"`
	ErrorPrefix string         `yaml:"error_prefix"`
	Precedence  map[string]int `yaml:"precedence,omitempty"`
	Colors      Colors         `yaml:"colors"`
}

// Colors is the color scheme of the calculator window.
type Colors struct {
	Background Color `yaml:"background"`
	Display    Color `yaml:"display"`
	Text       Color `yaml:"text"`
	Expression Color `yaml:"expression"`
	Digit      Color `yaml:"digit"`
	Control    Color `yaml:"control"`
	Operator   Color `yaml:"operator"`
	Active     Color `yaml:"active"`
	Scientific Color `yaml:"scientific"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		View:        session.ScientificView.String(),
		ErrorPrefix: session.DefaultErrorPrefix,
		Colors: Colors{
			Background: Color{50, 50, 50, 255},
			Display:    Color{35, 35, 35, 255},
			Text:       Color{255, 255, 255, 255},
			Expression: Color{160, 160, 160, 255},
			Digit:      Color{90, 90, 90, 255},
			Control:    Color{70, 70, 70, 255},
			Operator:   Color{122, 90, 90, 255},
			Active:     Color{160, 90, 90, 255},
			Scientific: Color{60, 70, 80, 255},
		},
	}
}

// Load reads the configuration file at path. If the file does not exist, the
// default configuration is returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration file. Keys missing from data keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks the view name and the precedence table.
func (c Config) Validate() error {
	if _, err := parseView(c.View); err != nil {
		return err
	}
	for sym, level := range c.Precedence {
		if _, ok := calc.DefaultPrecedence[sym]; !ok || sym == "(" || sym == ")" {
			return fmt.Errorf("precedence: unknown operator %q", sym)
		}
		if level < 1 {
			return fmt.Errorf("precedence: level %d of %q is not positive", level, sym)
		}
	}
	return nil
}

func parseView(name string) (session.View, error) {
	switch name {
	case session.BasicView.String():
		return session.BasicView, nil
	case session.ScientificView.String():
		return session.ScientificView, nil
	default:
		return 0, fmt.Errorf("unknown view %q", name)
	}
}

// SessionView returns the configured view. It must only be called on a
// validated configuration.
func (c Config) SessionView() session.View {
	v, err := parseView(c.View)
	if err != nil {
		panic(err)
	}
	return v
}

// EvaluatorOptions returns the precedence overrides as evaluator options.
func (c Config) EvaluatorOptions() []calc.Option {
	syms := make([]string, 0, len(c.Precedence))
	for sym := range c.Precedence {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	opts := make([]calc.Option, len(syms))
	for i, sym := range syms {
		opts[i] = calc.WithPrecedence(sym, c.Precedence[sym])
	}
	return opts
}

// SessionOptions returns the options for a session using this configuration.
func (c Config) SessionOptions() []session.Option {
	return []session.Option{
		session.WithErrorPrefix(c.ErrorPrefix),
		session.WithEvaluator(calc.NewEvaluator(c.EvaluatorOptions()...)),
	}
}

// Color is a color written as "#rrggbb" or "#rrggbbaa".
type Color color.NRGBA

// ParseColor parses a hex color.
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// NRGBA returns c as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
