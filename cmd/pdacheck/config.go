package main

import (
	"errors"
	"flag"
	"io"
)

var errUsage = errors.New("usage error")

type cliConfig struct {
	Infix     string
	Postfix   string
	Convert   bool
	Trace     bool
	SuitePath string
	Output    string
	Record    bool
	Verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("pdacheck", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.Infix, "infix", "", "Infix expression to validate (convert then check)")
	fs.StringVar(&cfg.Postfix, "postfix", "", "Postfix expression to validate")
	fs.BoolVar(&cfg.Convert, "convert", false, "Only convert the -infix expression to postfix")
	fs.BoolVar(&cfg.Trace, "trace", false, "Print every automaton transition")
	fs.StringVar(&cfg.SuitePath, "suite", "", "Path to a YAML case suite")
	fs.StringVar(&cfg.Output, "output", "", "Output path for the suite report (JSON)")
	fs.BoolVar(&cfg.Record, "record", false, "Record checks in the history store selected by STORAGE_TYPE")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, errUsage
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return cfg, errUsage
	}
	if err := cfg.validate(); err != nil {
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return cfg, errUsage
	}
	return cfg, nil
}

func (c cliConfig) validate() error {
	modes := 0
	for _, set := range []bool{c.Infix != "", c.Postfix != "", c.SuitePath != ""} {
		if set {
			modes++
		}
	}

	switch {
	case modes == 0 && c.Convert:
		return errors.New(`-convert requires -infix "EXPR"`)
	case modes == 0:
		return errors.New("one of -infix, -postfix or -suite is required")
	case modes > 1:
		return errors.New("-infix, -postfix and -suite are mutually exclusive")
	case c.Convert && c.Infix == "":
		return errors.New(`-convert requires -infix "EXPR"`)
	case c.Output != "" && c.SuitePath == "":
		return errors.New("-output is only valid with -suite")
	}
	return nil
}
