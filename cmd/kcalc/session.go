package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"fortio.org/log"

	"github.com/zephyrtronium/kcalc"
)

const (
	banner = "kcalc version 0.2\n"
	usage  = "Enter \"help\" for instructions, \"quit\" to exit.\n"
)

const help = banner +
	"Enter mathematical expressions at the prompt (or on the command line).\n" +
	"Enter \"name = expression\" to set a variable. ANS is the last result.\n" +
	"Enter \"list\" for a list of functions, constants, and commands.\n" +
	"Enter \"keys\" for information about line editing keys.\n" +
	"Enter \"status\" for current settings.\n"

const keys = "" +
	"ctrl+a, home        start of line\n" +
	"ctrl+e, end         end of line\n" +
	"ctrl+b, left        left one character\n" +
	"ctrl+f, right       right one character\n" +
	"alt+b, ctrl+left    left one word\n" +
	"alt+f, ctrl+right   right one word\n" +
	"ctrl+h, backspace   erase character left\n" +
	"ctrl+d, delete      erase character right, or exit on an empty line\n" +
	"ctrl+w              erase word left\n" +
	"ctrl+k              erase to end of line\n" +
	"ctrl+u              erase to start of line\n" +
	"ctrl+t              transpose characters\n" +
	"ctrl+p, up          previous history entry\n" +
	"ctrl+n, down        next history entry\n" +
	"ctrl+r              search history\n" +
	"ctrl+l              clear screen\n" +
	"ctrl+c              abandon line\n" +
	"tab                 complete name\n"

// commands are matched by prefix in this order.
var commands = []string{"LIST", "DEG", "HELP", "STATUS", "KEYS", "RAD", "DEC", "HEX", "QUIT"}

// session processes lines of calculator input and writes responses to out.
type session struct {
	out      io.Writer
	syms     *kcalc.Table
	settings *kcalc.Settings
	// ans is the cell of the ANS variable.
	ans *float64
	// echo prints compiled expressions before their results.
	echo bool
}

// newSession creates a session with the built-in symbols, ANS, and the
// variables from c.
func newSession(out io.Writer, c *config) (*session, error) {
	s := session{
		out:      out,
		syms:     kcalc.NewTable(c.Symbols),
		settings: c.settings(),
		ans:      new(float64),
	}
	if err := s.syms.AddBuiltins(s.settings); err != nil {
		return nil, fmt.Errorf("adding built-in symbols: %w", err)
	}
	if err := s.syms.Add(kcalc.Variable("ANS", s.ans)); err != nil {
		return nil, fmt.Errorf("adding ANS: %w", err)
	}
	for _, name := range c.variableNames() {
		v := c.Variables[name]
		name = strings.ToUpper(name)
		s.assign(name, v)
		log.LogVf("preset %s = %g", name, v)
	}
	return &s, nil
}

// do processes one line of input. The result is true if the line asks to
// quit.
func (s *session) do(line string) bool {
	line = strings.ToUpper(strings.TrimSpace(line))
	if line == "" {
		return false
	}
	for _, cmd := range commands {
		if strings.HasPrefix(line, cmd) {
			return s.command(cmd)
		}
	}
	if k := strings.IndexByte(line, '='); k >= 0 {
		s.assignment(strings.TrimSpace(line[:k]), strings.TrimSpace(line[k+1:]))
		return false
	}
	r := s.eval(line)
	if r.Kind != kcalc.ErrNone {
		s.fail(line, r)
		return false
	}
	*s.ans = r.Value
	fmt.Fprintln(s.out, s.format(r.Value))
	return false
}

func (s *session) command(cmd string) bool {
	switch cmd {
	case "LIST":
		s.list()
	case "DEG":
		s.settings.Angle = kcalc.Degrees
	case "RAD":
		s.settings.Angle = kcalc.Radians
	case "DEC":
		s.settings.Base = kcalc.Decimal
	case "HEX":
		s.settings.Base = kcalc.Hex
	case "HELP":
		io.WriteString(s.out, help)
	case "STATUS":
		s.status()
	case "KEYS":
		io.WriteString(s.out, keys)
	case "QUIT":
		return true
	}
	log.LogVf("command %s", cmd)
	return false
}

// assignment handles NAME = EXPR.
func (s *session) assignment(name, src string) {
	if name == "" || !kcalc.IsName(name) {
		fmt.Fprintln(s.out, kcalc.ErrMissingIdentifier)
		return
	}
	if src == "" {
		fmt.Fprintln(s.out, kcalc.ErrMissingExpression)
		return
	}
	r := s.eval(src)
	if r.Kind != kcalc.ErrNone {
		s.fail(src, r)
		return
	}
	s.assign(name, r.Value)
}

// assign binds a variable, reporting a full table to the user.
func (s *session) assign(name string, v float64) {
	if sym, ok := s.syms.Lookup(name); ok && sym.Kind() != kcalc.SymbolVariable {
		log.Warnf("%s is a %s and cannot be assigned", name, strings.ToLower(sym.Kind().String()))
		return
	}
	if err := s.syms.BindVariable(name, v); err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	log.LogVf("%s = %g", name, v)
}

func (s *session) eval(src string) kcalc.Result {
	e, err := kcalc.Compile(src, s.syms)
	if err != nil {
		return kcalc.ResultOf(math.NaN(), err)
	}
	log.LogVf("compiled %q to %v", src, e)
	if s.echo {
		fmt.Fprintf(s.out, "%v : ", e)
	}
	return kcalc.ResultOf(e.Eval())
}

// fail reports an unsuccessful result for src.
func (s *session) fail(src string, r kcalc.Result) {
	if r.Kind != kcalc.ErrSyntax {
		fmt.Fprintln(s.out, r.Kind)
		return
	}
	if r.Pos >= utf8.RuneCountInString(src) {
		fmt.Fprintf(s.out, "%v at end of line\n", r.Kind)
		return
	}
	fmt.Fprintf(s.out, "%v at position %d\n", r.Kind, r.Pos)
}

// format renders a result in the current output base. Hexadecimal shows the
// integer part; values with no int64 integer part are shown in decimal.
func (s *session) format(v float64) string {
	if s.settings.Base == kcalc.Hex && !math.IsNaN(v) && math.Abs(v) < 1<<63 {
		sign := ""
		if v < 0 {
			sign = "-"
			v = -v
		}
		return sign + "#" + strconv.FormatInt(int64(v), 16)
	}
	return fmt.Sprintf("%.9g", v)
}

func (s *session) list() {
	var consts, funcs []string
	for _, sym := range s.syms.Symbols() {
		switch sym.Kind() {
		case kcalc.SymbolConstant, kcalc.SymbolVariable:
			consts = append(consts, sym.Name())
		case kcalc.SymbolFunction:
			if sym.Arity() == 1 {
				funcs = append(funcs, sym.Name()+"(x)")
			} else {
				funcs = append(funcs, sym.Name()+"(x,y)")
			}
		}
	}
	fmt.Fprintf(s.out, "Constants/variables:\n%s\n\n", strings.Join(consts, "\n"))
	fmt.Fprintf(s.out, "Functions:\n%s\n\n", strings.Join(funcs, "\n"))
	fmt.Fprintf(s.out, "Commands:\n%s\n", strings.Join(commands, "\n"))
}

func (s *session) status() {
	if s.settings.Angle == kcalc.Degrees {
		io.WriteString(s.out, "Angle mode is degrees. Use RAD to set it to radians.\n")
	} else {
		io.WriteString(s.out, "Angle mode is radians. Use DEG to set it to degrees.\n")
	}
	if s.settings.Base == kcalc.Hex {
		io.WriteString(s.out, "Output base is hexadecimal. Use DEC to set it to decimal.\n")
	} else {
		io.WriteString(s.out, "Output base is decimal. Use HEX to set it to hexadecimal.\n")
	}
	fmt.Fprintf(s.out, "%d symbols defined.\n", len(s.syms.Symbols()))
}

// complete suggests completions of the name at the end of line.
func (s *session) complete(line string) []string {
	k := len(line)
	for k > 0 && (kcalc.IsName(line[k-1:k]) || line[k-1] >= '0' && line[k-1] <= '9' || line[k-1] == '_') {
		k--
	}
	head, word := line[:k], strings.ToUpper(line[k:])
	if word == "" {
		return nil
	}
	var r []string
	if strings.TrimSpace(head) == "" {
		for _, cmd := range commands {
			if strings.HasPrefix(cmd, word) {
				r = append(r, head+cmd)
			}
		}
	}
	for _, sym := range s.syms.Symbols() {
		if strings.HasPrefix(sym.Name(), word) {
			r = append(r, head+sym.Name())
		}
	}
	return r
}
