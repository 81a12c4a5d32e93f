package main

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/peterh/liner"
)

func main() {
	var (
		cfgname                 string
		deg, hex, verbose, echo bool
	)
	flag.StringVar(&cfgname, "config", "", "configuration file (default $HOME/.kcalc.yaml)")
	flag.BoolVar(&deg, "deg", false, "start with angles in degrees")
	flag.BoolVar(&hex, "hex", false, "start with results in hexadecimal")
	flag.BoolVar(&verbose, "v", false, "log compiled expressions and assignments")
	flag.BoolVar(&echo, "echo", false, "print compiled expressions before results")
	flag.Parse()
	log.SetLogLevel(log.Info)

	cfg, err := loadConfig(cfgname)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if deg {
		cfg.Angle = "deg"
	}
	if hex {
		cfg.Base = "hex"
	}
	if verbose || cfg.Verbose {
		log.SetLogLevel(log.Verbose)
	}

	s, err := newSession(os.Stdout, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	s.echo = echo
	if flag.NArg() > 0 {
		s.do(strings.Join(flag.Args(), " "))
		return
	}
	repl(s, cfg.History)
}

// repl reads lines from the terminal until QUIT or end of input.
func repl(s *session, history string) {
	io.WriteString(s.out, banner+usage+"\n")
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(s.complete)

	if history != "" {
		if f, err := os.Open(history); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				log.Warnf("reading history from %s: %v", history, err)
			}
			f.Close()
		} else if !errors.Is(err, fs.ErrNotExist) {
			log.Warnf("opening history: %v", err)
		}
		defer saveHistory(ln, history)
	}

	for {
		line, err := ln.Prompt("kcalc> ")
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			if err != io.EOF {
				log.Warnf("reading input: %v", err)
			}
			io.WriteString(s.out, "\n")
			return
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if s.do(line) {
			return
		}
	}
}

func saveHistory(ln *liner.State, history string) {
	f, err := os.Create(history)
	if err != nil {
		log.Warnf("saving history: %v", err)
		return
	}
	if _, err := ln.WriteHistory(f); err != nil {
		log.Warnf("writing history to %s: %v", history, err)
	}
	if err := f.Close(); err != nil {
		log.Warnf("closing history: %v", err)
	}
}
