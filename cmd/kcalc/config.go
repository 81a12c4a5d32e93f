package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/kcalc"
)

// defaultSymbols is the symbol table capacity when the config gives none.
const defaultSymbols = 30

// config is the contents of the configuration file.
type config struct {
	Angle     string             `yaml:"angle"`
	Base      string             `yaml:"base"`
	Symbols   int                `yaml:"symbols"`
	History   string             `yaml:"history"`
	Variables map[string]float64 `yaml:"variables"`
	Verbose   bool               `yaml:"verbose"`
}

// configError lists every problem found in a configuration file.
type configError struct {
	Path   string
	Issues []string
}

func (e *configError) Error() string {
	var b strings.Builder
	b.WriteString("config: ")
	b.WriteString(e.Path)
	b.WriteString(" is invalid:")
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue)
	}
	return b.String()
}

func defaultConfig(home string) *config {
	c := config{
		Angle:   "rad",
		Base:    "dec",
		Symbols: defaultSymbols,
	}
	if home != "" {
		c.History = filepath.Join(home, ".kcalc_history")
	}
	return &c
}

// loadConfig reads the configuration file at path. If path is empty, the
// file is .kcalc.yaml in the user's home directory, and it is not an error
// for it to be missing.
func loadConfig(path string) (*config, error) {
	home, _ := os.UserHomeDir()
	c := defaultConfig(home)
	optional := path == ""
	if optional {
		if home == "" {
			return c, nil
		}
		path = filepath.Join(home, ".kcalc.yaml")
	}
	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	if err := c.decode(f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if issues := c.validate(); len(issues) != 0 {
		return nil, &configError{Path: path, Issues: issues}
	}
	return c, nil
}

// decode reads YAML into c, keeping defaults for absent keys. An empty
// document is allowed.
func (c *config) decode(r io.Reader) error {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// validate returns a description of each problem with c.
func (c *config) validate() []string {
	var issues []string
	switch c.Angle {
	case "rad", "deg":
	default:
		issues = append(issues, fmt.Sprintf("angle must be rad or deg, not %q", c.Angle))
	}
	switch c.Base {
	case "dec", "hex":
	default:
		issues = append(issues, fmt.Sprintf("base must be dec or hex, not %q", c.Base))
	}
	// Room for the built-ins and ANS.
	least := kcalc.NumBuiltins + 1
	if c.Symbols < least {
		issues = append(issues, fmt.Sprintf("symbols must be at least %d, not %d", least, c.Symbols))
	} else if n := least + len(c.Variables); c.Symbols < n {
		issues = append(issues, fmt.Sprintf("symbols must be at least %d to hold the variables, not %d", n, c.Symbols))
	}
	for _, name := range c.variableNames() {
		if !kcalc.IsName(name) {
			issues = append(issues, fmt.Sprintf("variable name %q is not an identifier", name))
		}
	}
	return issues
}

// variableNames returns the names of preset variables in sorted order.
func (c *config) variableNames() []string {
	r := make([]string, 0, len(c.Variables))
	for name := range c.Variables {
		r = append(r, name)
	}
	sort.Strings(r)
	return r
}

func (c *config) settings() *kcalc.Settings {
	s := kcalc.Settings{}
	if c.Angle == "deg" {
		s.Angle = kcalc.Degrees
	}
	if c.Base == "hex" {
		s.Base = kcalc.Hex
	}
	return &s
}
