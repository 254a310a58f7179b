package walk

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/zalgonoise/lex"
)

// sampleTree builds: list(item(a), ',', item(b, c))
func sampleTree() *Tree[testKind, rune] {
	tree := New[testKind, rune](words(), nil, kindList)
	tree.Node(lex.NewItem[testKind, rune](0, kindItem))
	tree.Leaf(lex.NewItem(0, kindWord, 'a'))
	tree.Up()
	tree.Leaf(lex.NewItem(1, kindComma, ','))
	tree.Node(lex.NewItem[testKind, rune](2, kindItem))
	tree.Leaf(lex.NewItem(2, kindWord, 'b'))
	tree.Leaf(lex.NewItem(3, kindWord, 'c'))
	tree.Up()
	return tree
}

func label(n *Node[testKind, rune]) string {
	switch n.Type {
	case kindList:
		return "list"
	case kindItem:
		return fmt.Sprintf("item@%d", n.Pos)
	default:
		return string(n.Value)
	}
}

func TestWalkOrder(t *testing.T) {
	tree := sampleTree()

	var events []string
	record := func(prefix string) Hook[testKind, rune] {
		return func(n *Node[testKind, rune]) error {
			events = append(events, prefix+label(n))
			return nil
		}
	}

	l := NewListener[testKind, rune]()
	for _, k := range []testKind{kindList, kindItem, kindWord, kindComma} {
		l.On(k, record("enter "), record("exit "))
	}

	if err := Walk(tree.Root, l); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"enter list",
		"enter item@0", "enter a", "exit a", "exit item@0",
		"enter ,", "exit ,",
		"enter item@2", "enter b", "exit b", "enter c", "exit c", "exit item@2",
		"exit list",
	}
	if !slices.Equal(events, want) {
		t.Fatalf("unexpected order:\nwant %v\ngot  %v", want, events)
	}
}

func TestWalkPairing(t *testing.T) {
	tree := sampleTree()

	var (
		depth    int
		enters   = map[*Node[testKind, rune]]int{}
		exits    = map[*Node[testKind, rune]]int{}
		maxDepth int
	)
	l := NewListener[testKind, rune]()
	for _, k := range []testKind{kindList, kindItem, kindWord, kindComma} {
		l.On(k,
			func(n *Node[testKind, rune]) error {
				enters[n]++
				depth++
				maxDepth = max(maxDepth, depth)
				return nil
			},
			func(n *Node[testKind, rune]) error {
				// every edge was exited before its parent
				for _, edge := range n.Edges {
					if exits[edge] != 1 {
						return fmt.Errorf("%s exited before %s", label(n), label(edge))
					}
				}
				exits[n]++
				depth--
				return nil
			},
		)
	}

	if err := Walk(tree.Root, l); err != nil {
		t.Fatal(err)
	}
	if len(enters) != 7 || len(exits) != 7 {
		t.Fatalf("expected 7 nodes entered and exited, got %d and %d", len(enters), len(exits))
	}
	for n, c := range enters {
		if c != 1 || exits[n] != 1 {
			t.Errorf("%s: entered %d times, exited %d times", label(n), c, exits[n])
		}
	}
	if depth != 0 || maxDepth != 3 {
		t.Errorf("unexpected depth %d / max depth %d", depth, maxDepth)
	}
}

func TestWalkPartialAndErrors(t *testing.T) {
	tree := sampleTree()

	t.Run("OnlyRegisteredKinds", func(t *testing.T) {
		var got []string
		l := NewListener[testKind, rune]().On(kindWord, nil, func(n *Node[testKind, rune]) error {
			got = append(got, string(n.Value))
			return nil
		})
		if err := Walk(tree.Root, l); err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, []string{"a", "b", "c"}) {
			t.Fatalf("unexpected words %v", got)
		}
	})

	t.Run("ErrorStopsWalk", func(t *testing.T) {
		stop := errors.New("stop")
		var seen []string
		l := NewListener[testKind, rune]().On(kindWord, func(n *Node[testKind, rune]) error {
			seen = append(seen, string(n.Value))
			if string(n.Value) == "b" {
				return stop
			}
			return nil
		}, nil)

		err := Walk(tree.Root, l)
		if err != stop {
			t.Fatalf("expected the hook's error unmodified, got %v", err)
		}
		if !slices.Equal(seen, []string{"a", "b"}) {
			t.Fatalf("expected the walk to stop at b, saw %v", seen)
		}
	})

	t.Run("ZeroListener", func(t *testing.T) {
		if err := Walk(tree.Root, Listener[testKind, rune]{}); err != nil {
			t.Fatal(err)
		}
		if err := Walk[testKind, rune](nil, Listener[testKind, rune]{}); err != nil {
			t.Fatal(err)
		}
	})
}
