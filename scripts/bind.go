package scripts

import (
	"fmt"
	"strings"

	"github.com/zalgonoise/walk"
	"go.starlark.net/starlark"
)

// Bind maps the script's hooks onto a walk.Listener over `kinds`. A hook naming a kind
// outside `kinds` is an ErrUnknownHook, a hook global that is not a function is an
// ErrNotCallable. Errors raised by a hook are returned by walk.Walk unchanged
func Bind[C interface {
	comparable
	fmt.Stringer
}, T any](s *Script, kinds []C) (walk.Listener[C, T], error) {
	l := walk.NewListener[C, T]()

	byName := make(map[string]C, len(kinds))
	for _, k := range kinds {
		byName[k.String()] = k
	}

	nodes := newNodeCache[C, T]()
	hook := func(fn starlark.Callable) walk.Hook[C, T] {
		return func(n *walk.Node[C, T]) error {
			return s.call(fn, nodes.value(n))
		}
	}

	for _, name := range s.Hooks() {
		kindName, enter := strings.CutPrefix(name, enterPrefix)
		if !enter {
			kindName = strings.TrimPrefix(name, exitPrefix)
		}

		k, ok := byName[kindName]
		if !ok {
			return walk.Listener[C, T]{}, fmt.Errorf("%w: %s", ErrUnknownHook, name)
		}
		fn, ok := s.globals[name].(starlark.Callable)
		if !ok {
			return walk.Listener[C, T]{}, fmt.Errorf("%w: %s is a %s", ErrNotCallable, name, s.globals[name].Type())
		}

		if enter {
			l.Enter[k] = hook(fn)
		} else {
			l.Exit[k] = hook(fn)
		}
	}

	return l, nil
}

// Walk binds the script over `kinds` and walks the tree under `root` with it
func Walk[C interface {
	comparable
	fmt.Stringer
}, T any](s *Script, root *walk.Node[C, T], kinds []C) error {
	l, err := Bind[C, T](s, kinds)
	if err != nil {
		return err
	}
	return walk.Walk(root, l)
}
