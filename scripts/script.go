// Package scripts drives a parse tree walk from a Starlark file.
//
// A script defines hooks as top-level functions named enter_<kind> and exit_<kind>, where
// <kind> is the String() of a rule or token kind (enter_expression, exit_NUMBER). Each hook
// receives one frozen dict describing the node:
//
//	{"kind": "expression", "text": "1+2", "pos": 0, "children": [...]}
//
// Module globals are frozen once the file has run, so hooks report through print and the
// log builtin rather than by mutating global state.
package scripts

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/reusee/starlarkutil"
	"github.com/zalgonoise/walk/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var (
	ErrUnknownHook = errors.New("hook for unknown kind")
	ErrNotCallable = errors.New("hook is not callable")
)

const (
	enterPrefix = "enter_"
	exitPrefix  = "exit_"
)

type Options struct {
	// Output receives the script's print calls, discarded when nil
	Output io.Writer
	// Logger backs the log builtin, slog.Default() when nil
	Logger logs.Logger
}

type Script struct {
	name    string
	thread  *starlark.Thread
	globals starlark.StringDict
}

// Load executes the Starlark file once. `src` is passed to the Starlark loader as is: nil
// reads `filename` from disk, a string or []byte is used as the source
func Load(filename string, src any, options Options) (*Script, error) {
	output := options.Output
	if output == nil {
		output = io.Discard
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(output, msg)
		},
	}

	predeclared := starlark.StringDict{
		"log": starlarkutil.MakeFunc("log", func(msg string) {
			logger.Info(msg, "script", filename)
		}),
	}

	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
	}, thread, filename, src, predeclared)
	if err != nil {
		return nil, err
	}

	return &Script{
		name:    filename,
		thread:  thread,
		globals: globals,
	}, nil
}

func (s *Script) Name() string {
	return s.name
}

// Hooks lists the names of the script's enter_ and exit_ globals, sorted
func (s *Script) Hooks() []string {
	var names []string
	for name := range s.globals {
		if strings.HasPrefix(name, enterPrefix) || strings.HasPrefix(name, exitPrefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (s *Script) call(fn starlark.Callable, node starlark.Value) error {
	_, err := starlark.Call(s.thread, fn, starlark.Tuple{node}, nil)
	return err
}
