// Command walk tokenizes, parses, evaluates or runs a Starlark listener over arithmetic
// and threading grammar inputs.
//
//	walk [flags] [file]
//
// The input is read from `file`, or from stdin when no file is given.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/reusee/dscope"
	"github.com/zalgonoise/walk"
	"github.com/zalgonoise/walk/arith"
	"github.com/zalgonoise/walk/configs"
	"github.com/zalgonoise/walk/logs"
	"github.com/zalgonoise/walk/scripts"
	"github.com/zalgonoise/walk/threading"
)

var (
	errUnknownGrammar = errors.New("unknown grammar")
	errUnknownMode    = errors.New("unknown mode")
	errNoScript       = errors.New("script mode requires -script")
)

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "walk:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	dscope.New(new(Module)).Fork(
		dscope.Provide(configs.NewLoader(f.cfg.Configs, configs.Schema)),
		func() logs.Writer {
			return stderr
		},
	).Call(func(
		getConfig configs.GetConfig,
		logger logs.Logger,
		level logs.Level,
	) {
		err = func() error {
			cfg, err := getConfig()
			if err != nil {
				return err
			}
			s := f.merge(cfg)

			l, err := logs.ParseLevel(s.LogLevel)
			if err != nil {
				return err
			}
			level.Set(l)

			logger.DebugContext(ctx, "settings",
				"grammar", s.Grammar,
				"mode", s.Mode,
				"configs", s.Configs,
				"input", s.Input,
			)

			src, err := readInput(s.Input, stdin)
			if err != nil {
				return err
			}

			switch s.Grammar {
			case "arith":
				return runArith(ctx, stdout, logger, s, src)
			case "threading":
				return runThreading(ctx, stdout, logger, s, src)
			default:
				return fmt.Errorf("%w %q", errUnknownGrammar, s.Grammar)
			}
		}()
	})

	return err
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		content, err := io.ReadAll(stdin)
		return string(content), err
	}
	content, err := os.ReadFile(path)
	return string(content), err
}

func runArith(ctx context.Context, w io.Writer, logger logs.Logger, s settings, src string) error {
	kinds := slices.Concat(arith.Rules, arith.Tokens)

	switch s.Mode {
	case "tokens":
		return printTokens[arith.Kind](w, arith.NewLexer(src), s.Hidden)

	case "tree":
		tree, err := arith.Parse(src)
		if err != nil {
			return err
		}
		return printTree[arith.Kind](w, tree.Root, kinds)

	case "eval":
		values, err := arith.EvaluateAll(src, s.Vars)
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "evaluated", "statements", len(values))
		for _, v := range values {
			if _, err := fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return err
			}
		}
		return nil

	case "script":
		tree, err := arith.Parse(src)
		if err != nil {
			return err
		}
		return runScript[arith.Kind](ctx, w, logger, s.Script, tree.Root, kinds)

	default:
		return fmt.Errorf("%w %q", errUnknownMode, s.Mode)
	}
}

func runThreading(ctx context.Context, w io.Writer, logger logs.Logger, s settings, src string) error {
	kinds := slices.Concat(threading.Rules, threading.Tokens)

	switch s.Mode {
	case "tokens":
		return printTokens[threading.Kind](w, threading.NewLexer(src), s.Hidden)

	case "tree":
		tree, err := threading.Parse(src)
		if err != nil {
			return err
		}
		return printTree[threading.Kind](w, tree.Root, kinds)

	case "eval":
		inputs := paragraphs(src)
		if len(inputs) == 0 {
			inputs = []string{src}
		}

		values, err := threading.EvaluateAll(ctx, inputs, runtime.GOMAXPROCS(0))
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "evaluated", "inputs", len(values))
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil

	case "script":
		tree, err := threading.Parse(src)
		if err != nil {
			return err
		}
		return runScript[threading.Kind](ctx, w, logger, s.Script, tree.Root, kinds)

	default:
		return fmt.Errorf("%w %q", errUnknownMode, s.Mode)
	}
}

// paragraphs splits `src` on blank lines. An expression may span several lines as long as
// none of them is blank
func paragraphs(src string) []string {
	var (
		ret []string
		sb  strings.Builder
	)
	flush := func() {
		if strings.TrimSpace(sb.String()) != "" {
			ret = append(ret, sb.String())
		}
		sb.Reset()
	}
	for line := range strings.Lines(src) {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		sb.WriteString(line)
	}
	flush()
	return ret
}

func runScript[C kind](ctx context.Context, w io.Writer, logger logs.Logger, path string, root *walk.Node[C, rune], kinds []C) error {
	if path == "" {
		return errNoScript
	}
	script, err := scripts.Load(path, nil, scripts.Options{
		Output: w,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "script loaded",
		"path", script.Name(),
		"hooks", script.Hooks(),
	)
	return scripts.Walk[C, rune](script, root, kinds)
}
