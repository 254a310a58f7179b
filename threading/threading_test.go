package threading

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/zalgonoise/walk"
	"github.com/zalgonoise/walk/scan"
)

func sexpr(n *Node) string {
	if !n.Type.IsRule() {
		return string(n.Value)
	}
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(n.Type.String())
	for _, edge := range n.Edges {
		sb.WriteString(" ")
		sb.WriteString(sexpr(edge))
	}
	sb.WriteString(")")
	return sb.String()
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("12 +3*\n4")
	if err != nil {
		t.Fatal(err)
	}

	type tokenInfo struct {
		Kind Kind
		Text string
	}
	want := []tokenInfo{
		{TokenInt, "12"},
		{TokenWhitespace, " "},
		{TokenPlus, "+"},
		{TokenInt, "3"},
		{TokenTimes, "*"},
		{TokenWhitespace, "\n"},
		{TokenInt, "4"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	var sb strings.Builder
	for idx, tok := range tokens {
		if got := (tokenInfo{tok.Type, tok.Text()}); got != want[idx] {
			t.Errorf("token %d: expected %v, got %v", idx, want[idx], got)
		}
		sb.WriteString(tok.Text())
	}
	if sb.String() != "12 +3*\n4" {
		t.Errorf("round trip failed: %q", sb.String())
	}

	_, err = Tokenize("1 - 2")
	var lexErr *scan.Error
	if !errors.As(err, &lexErr) || lexErr.Pos != 2 || lexErr.Char != '-' {
		t.Fatalf("expected a lexical error at offset 2, got %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		tree  string
	}{
		{"7", "(s (number 7))"},
		{"1+2", "(s (add (number 1) + (number 2)))"},
		{"1*2", "(s (multiply (number 1) * (number 2)))"},
		{"1+2*3", "(s (add (number 1) + (multiply (number 2) * (number 3))))"},
		{"1*2+3", "(s (add (multiply (number 1) * (number 2)) + (number 3)))"},
		{"1+2+3", "(s (add (add (number 1) + (number 2)) + (number 3)))"},
		{"1*2*3", "(s (multiply (multiply (number 1) * (number 2)) * (number 3)))"},
		{" 4 * 5 + 6 * 7 ", "(s (add (multiply (number 4) * (number 5)) + (multiply (number 6) * (number 7))))"},
	}

	for _, test := range tests {
		tree, err := Parse(test.input)
		if err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		if got := sexpr(tree.Root); got != test.tree {
			t.Errorf("%q:\nwant %s\ngot  %s", test.input, test.tree, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		found string
	}{
		{"", 0, "EOF"},
		{"1+", 2, "EOF"},
		{"+1", 0, `PLUS "+"`},
		{"1 2", 2, `INT "2"`},
		{"1**2", 2, `TIMES "*"`},
	}

	for _, test := range tests {
		_, err := Parse(test.input)
		var synErr *walk.SyntaxError
		if !errors.As(err, &synErr) || !errors.Is(err, walk.ErrSyntax) {
			t.Fatalf("%q: expected a syntax error, got %v", test.input, err)
		}
		if synErr.Pos != test.pos || synErr.Found != test.found {
			t.Errorf("%q: expected %s at %d, got %s at %d", test.input, test.found, test.pos, synErr.Found, synErr.Pos)
		}
	}

	if _, err := Parse("1 + x"); !errors.Is(err, scan.ErrUnexpectedChar) {
		t.Fatalf("expected a lexical error, got %v", err)
	}
}

func TestVisitorLabelledDispatch(t *testing.T) {
	// the tree mixes all three labelled alternatives of expr
	tree, err := Parse("2*3 + 4+5")
	if err != nil {
		t.Fatal(err)
	}
	if got := sexpr(tree.Root); got != "(s (add (add (multiply (number 2) * (number 3)) + (number 4)) + (number 5)))" {
		t.Fatalf("unexpected tree %s", got)
	}

	inner := tree.Root.Edges[0].Edges[0]
	alternatives := []*Node{inner.Edges[0], inner, inner.Edges[2]}

	var calls []string
	v := &Visitor[string]{
		Add: func(n *Node) (string, error) {
			calls = append(calls, "add")
			return "add", nil
		},
		Number: func(n *Node) (string, error) {
			calls = append(calls, "number")
			return "number", nil
		},
		Multiply: func(n *Node) (string, error) {
			calls = append(calls, "multiply")
			return "multiply", nil
		},
		Terminal: func(n *Node) (string, error) {
			return "", fmt.Errorf("unexpected fallback for %s", n.Type)
		},
	}
	for idx, n := range alternatives {
		got, err := v.Visit(n)
		if err != nil {
			t.Fatal(err)
		}
		if got != n.Type.String() {
			t.Errorf("node %d: expected the %s function, got %s", idx, n.Type, got)
		}
	}
	if !slices.Equal(calls, []string{"multiply", "add", "number"}) {
		t.Fatalf("unexpected calls %v", calls)
	}

	res, err := v.Visit(tree.Root)
	if err != nil {
		t.Fatal(err)
	}
	if res != "add" {
		t.Fatalf("expected s to fall back to its only child, got %q", res)
	}
}

func TestListener(t *testing.T) {
	tree, err := Parse("1+2*3")
	if err != nil {
		t.Fatal(err)
	}

	var events []string
	hook := func(event string) func(n *Node) error {
		return func(n *Node) error {
			events = append(events, event)
			return nil
		}
	}
	err = Walk(tree.Root, Listener{
		EnterS:        hook("enter s"),
		ExitS:         hook("exit s"),
		EnterAdd:      hook("enter add"),
		ExitAdd:       hook("exit add"),
		EnterNumber:   hook("enter number"),
		ExitNumber:    hook("exit number"),
		EnterMultiply: hook("enter multiply"),
		ExitMultiply:  hook("exit multiply"),
		VisitTerminal: func(n *Node) error {
			events = append(events, string(n.Value))
			return nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"enter s", "enter add",
		"enter number", "1", "exit number",
		"+",
		"enter multiply",
		"enter number", "2", "exit number",
		"*",
		"enter number", "3", "exit number",
		"exit multiply",
		"exit add", "exit s",
	}
	if !slices.Equal(events, want) {
		t.Fatalf("unexpected events:\nwant %v\ngot  %v", want, events)
	}

	stop := errors.New("stop")
	err = Walk(tree.Root, Listener{
		EnterMultiply: func(n *Node) error { return stop },
	})
	if err != stop {
		t.Fatalf("expected the hook's error unmodified, got %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"7", 7},
		{"1+2*3", 7},
		{"1*2+3", 5},
		{"2*3*4+1", 25},
		{" 10 + 20 + 30 ", 60},
		{"0*99999999999", 0},
	}
	for _, test := range tests {
		got, err := Evaluate(test.input)
		if err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		if got != test.want {
			t.Errorf("%q: expected %d, got %d", test.input, test.want, got)
		}
	}

	for _, input := range []string{
		"99999999999999999999",
		"9223372036854775807+1",
		"4294967296*4294967296",
	} {
		if _, err := Evaluate(input); !errors.Is(err, ErrOverflow) {
			t.Errorf("%q: expected overflow, got %v", input, err)
		}
	}
}

func TestEvaluateAll(t *testing.T) {
	srcs := make([]string, 64)
	want := make([]int64, 64)
	for i := range srcs {
		srcs[i] = fmt.Sprintf("%d*%d+%d", i, i, i)
		want[i] = int64(i*i + i)
	}

	for _, limit := range []int{0, 1, 4} {
		got, err := EvaluateAll(context.Background(), srcs, limit)
		if err != nil {
			t.Fatalf("limit %d: %v", limit, err)
		}
		if !slices.Equal(got, want) {
			t.Fatalf("limit %d: unexpected results %v", limit, got)
		}
	}

	t.Run("Failure", func(t *testing.T) {
		_, err := EvaluateAll(context.Background(), []string{"1", "2+", "3"}, 0)
		if !errors.Is(err, walk.ErrSyntax) {
			t.Fatalf("expected a syntax error, got %v", err)
		}
		if !strings.HasPrefix(err.Error(), "input 1: ") {
			t.Fatalf("expected the failing index in the error, got %q", err.Error())
		}
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := EvaluateAll(ctx, srcs, 2); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
