package walk

import (
	"errors"
	"strings"
	"testing"
)

func TestVisit(t *testing.T) {
	tree := sampleTree()

	t.Run("DefaultReturnsLastChild", func(t *testing.T) {
		v := Visitor[testKind, rune, string]{
			kindWord: func(n *Node[testKind, rune]) (string, error) {
				return strings.ToUpper(string(n.Value)), nil
			},
		}
		res, err := Visit(tree.Root, v)
		if err != nil {
			t.Fatal(err)
		}
		// list -> last item -> last word
		if res != "C" {
			t.Fatalf("expected C, got %q", res)
		}
	})

	t.Run("SpecificOverridesDefault", func(t *testing.T) {
		var v Visitor[testKind, rune, string]
		v = Visitor[testKind, rune, string]{
			kindItem: func(n *Node[testKind, rune]) (string, error) {
				var sb strings.Builder
				for _, edge := range n.Edges {
					s, err := Visit(edge, v)
					if err != nil {
						return "", err
					}
					sb.WriteString(s)
				}
				return "[" + sb.String() + "]", nil
			},
			kindWord: func(n *Node[testKind, rune]) (string, error) {
				return string(n.Value), nil
			},
		}
		res, err := Visit(tree.List()[0], v)
		if err != nil {
			t.Fatal(err)
		}
		if res != "[a]" {
			t.Fatalf("expected [a], got %q", res)
		}
		res, err = Visit(tree.Root, v)
		if err != nil {
			t.Fatal(err)
		}
		if res != "[bc]" {
			t.Fatalf("expected [bc], got %q", res)
		}
	})

	t.Run("NoEdgesYieldsZero", func(t *testing.T) {
		res, err := Visit(tree.List()[1], Visitor[testKind, rune, int]{})
		if err != nil {
			t.Fatal(err)
		}
		if res != 0 {
			t.Fatalf("expected zero value, got %d", res)
		}
	})

	t.Run("NilNode", func(t *testing.T) {
		called := false
		v := Visitor[testKind, rune, int]{
			kindList: func(n *Node[testKind, rune]) (int, error) {
				called = true
				return 1, nil
			},
		}
		res, err := Visit[testKind, rune, int](nil, v)
		if err != nil {
			t.Fatal(err)
		}
		if res != 0 || called {
			t.Fatalf("expected zero value without calls, got %d", res)
		}
		if err := Walk[testKind, rune](nil, NewListener[testKind, rune]()); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("ErrorPropagates", func(t *testing.T) {
		boom := errors.New("boom")
		v := Visitor[testKind, rune, int]{
			kindComma: func(n *Node[testKind, rune]) (int, error) {
				return 0, boom
			},
			kindWord: func(n *Node[testKind, rune]) (int, error) {
				return 1, nil
			},
		}
		if _, err := Visit(tree.Root, v); err != boom {
			t.Fatalf("expected the visitor's error unmodified, got %v", err)
		}
	})
}

func TestVisitChildren(t *testing.T) {
	tree := sampleTree()

	var n int
	res, err := VisitChildren[testKind, rune, int](tree.List()[2], func(edge *Node[testKind, rune]) (int, error) {
		n++
		return n * 10, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || res != 20 {
		t.Fatalf("expected 2 visits returning 20, got %d visits returning %d", n, res)
	}
}
