package main

import (
	"flag"
	"fmt"
	"io"
	"maps"
	"strconv"
	"strings"

	"github.com/zalgonoise/walk/configs"
)

// varsFlag collects repeated -var name=value flags
type varsFlag map[string]float64

func (v varsFlag) String() string {
	var parts []string
	for name, value := range v {
		parts = append(parts, name+"="+strconv.FormatFloat(value, 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}

func (v varsFlag) Set(str string) error {
	name, value, ok := strings.Cut(str, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", str)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("variable %s: %w", name, err)
	}
	v[name] = f
	return nil
}

type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(str string) error {
	*l = append(*l, str)
	return nil
}

type settings struct {
	Grammar  string
	Mode     string
	Script   string
	Vars     map[string]float64
	Hidden   bool
	LogLevel string
	Configs  []string
	Input    string
}

type flags struct {
	fs  *flag.FlagSet
	cfg settings
}

func parseFlags(args []string, output io.Writer) (*flags, error) {
	f := &flags{
		fs: flag.NewFlagSet("walk", flag.ContinueOnError),
		cfg: settings{
			Vars: map[string]float64{},
		},
	}
	fs := f.fs
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "usage: walk [flags] [file]")
		fs.PrintDefaults()
	}

	fs.StringVar(&f.cfg.Grammar, "grammar", "arith", "grammar: arith or threading")
	fs.StringVar(&f.cfg.Mode, "mode", "eval", "mode: tokens, tree, eval or script; threading eval reads one input per blank-line separated block")
	fs.StringVar(&f.cfg.Script, "script", "", "starlark listener for script mode")
	fs.Var(varsFlag(f.cfg.Vars), "var", "arith variable as name=value, repeatable")
	fs.Var((*listFlag)(&f.cfg.Configs), "config", "cue config file, repeatable")
	fs.BoolVar(&f.cfg.Hidden, "hidden", false, "include hidden channel tokens in tokens mode")
	fs.StringVar(&f.cfg.LogLevel, "log-level", "warn", "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		f.cfg.Input = fs.Arg(0)
	default:
		return nil, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}
	return f, nil
}

// merge lays the flags explicitly set on the command line over the config file values,
// which in turn override the flag defaults. Variables merge by name
func (f *flags) merge(cfg configs.Config) settings {
	set := make(map[string]bool)
	f.fs.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})

	ret := f.cfg
	ret.Vars = make(map[string]float64, len(cfg.Vars)+len(f.cfg.Vars))
	maps.Copy(ret.Vars, cfg.Vars)
	maps.Copy(ret.Vars, f.cfg.Vars)

	if cfg.Grammar != "" && !set["grammar"] {
		ret.Grammar = cfg.Grammar
	}
	if cfg.Mode != "" && !set["mode"] {
		ret.Mode = cfg.Mode
	}
	if cfg.Script != "" && !set["script"] {
		ret.Script = cfg.Script
	}
	if cfg.LogLevel != "" && !set["log-level"] {
		ret.LogLevel = cfg.LogLevel
	}
	if cfg.Hidden && !set["hidden"] {
		ret.Hidden = true
	}
	return ret
}
