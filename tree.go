package walk

import (
	"errors"

	"github.com/zalgonoise/lex"
)

const (
	maxBackup = 5
)

var (
	// ErrNotFound is a preset error for nodes that are not part of the Tree
	ErrNotFound = errors.New("node was not found")
	// ErrEmptySlot is a preset error for loading a BackupSlot that holds no node
	ErrEmptySlot = errors.New("backup slot is empty")
	// ErrSyntax is a preset error wrapped by every SyntaxError
	ErrSyntax = errors.New("syntax error")
)

// BackupSlot is an enum type to create defined containers for nodes, so they can be
// reused or referenced while the parser moves around the Tree
type BackupSlot uint8

const (
	Slot0 BackupSlot = iota
	Slot1
	Slot2
	Slot3
	Slot4
)

// Emitter is the source of lex Items that a Tree consumes. A lexer that reaches the end
// of its input keeps returning an end-of-input Item
//
// If the Emitter also implements `Err() error`, the Tree reports that error from Parse
// in place of any error raised by the ParseFns
type Emitter[C comparable, T any] interface {
	NextItem() lex.Item[C, T]
}

type errEmitter interface {
	Err() error
}

// Tree is a generic tree data structure to represent a parse tree
//
// The Tree will buffer tokens of type T from an Emitter, identified by the same
// type of comparable tokens. The parser runs in tandem with a lexer -- as the
// parser advances to the next token, it is actually consuming a token from the lexer
// by calling its `NextItem()` method.
//
// A Tree exposes methods for creating and moving around Nodes, and to consume, buffer and
// backup lex Items as it converts them into nodes in the Tree.
//
// A Tree will store every node it contains, nested within the Root node. To navigate through
// the nodes in a Tree, the Tree stores (and exports) a Root element, pointing to this Root node.
//
// The Root node is typed with the grammar's start rule, and contains all top-level items in
// lexical order, which may or may not have edges themselves.
type Tree[C comparable, T any] struct {
	Root *Node[C, T]

	node    *Node[C, T]
	items   []lex.Item[C, T]
	lex     Emitter[C, T]
	peek    int
	backup  map[BackupSlot]*Node[C, T]
	parseFn ParseFn[C, T]
	err     error
}

// New creates a Tree with the input Emitter `l` and ParseFn `initParse`,
// initialized with a root node with type C `typ` and values T `values`, on position `-1`.
func New[C comparable, T any](
	l Emitter[C, T],
	initParse ParseFn[C, T],
	typ C,
	values ...T,
) *Tree[C, T] {
	t := &Tree[C, T]{
		items:   make([]lex.Item[C, T], maxBackup),
		lex:     l,
		peek:    0,
		backup:  map[BackupSlot]*Node[C, T]{},
		parseFn: initParse,
	}
	t.Root = t.Node(lex.NewItem(-1, typ, values...))
	t.node = t.Root
	return t
}

// Next consumes and returns the next Item from the lexer
func (t *Tree[C, T]) Next() lex.Item[C, T] {
	if t.peek > 0 {
		t.peek--
	} else {
		t.items[0] = t.lex.NextItem()
	}
	return t.items[t.peek]
}

// Peek returns but does not consume the next Item from the lexer
func (t *Tree[C, T]) Peek() lex.Item[C, T] {
	if t.peek > 0 {
		return t.items[t.peek-1]
	}
	t.peek = 1

	t.items[0] = t.lex.NextItem()
	return t.items[0]
}

// Backup backs the stream up by the last consumed Item plus the input `items`, which are
// the Items consumed before it
//
// The zeroth Item is already there. Order must be most recent -> oldest
func (t *Tree[C, T]) Backup(items ...lex.Item[C, T]) {
	n := 0
	for idx, item := range items {
		if idx+1 >= maxBackup {
			break
		}
		t.items[idx+1] = item
		n++
	}
	t.peek = n + 1
}

// Fail records `err` as the outcome of the parse and returns a nil ParseFn, so that a
// ParseFn can stop the parser with `return t.Fail(err)`
//
// Only the first recorded error is kept
func (t *Tree[C, T]) Fail(err error) ParseFn[C, T] {
	if t.err == nil {
		t.err = err
	}
	return nil
}

// Parse iterates through the incoming lex Items, by calling its `ParseFn`s, until all tokens
// are consumed and parsed into the Tree
//
// A lexical error reported by the Emitter takes precedence over the parser's own error,
// since the parser only sees an early end of input in that case
func (t *Tree[C, T]) Parse() error {
	for t.parseFn != nil {
		t.parseFn = t.parseFn(t)
	}
	if e, ok := t.lex.(errEmitter); ok {
		if err := e.Err(); err != nil {
			return err
		}
	}
	return t.err
}
