package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/zalgonoise/walk"
	"github.com/zalgonoise/walk/scan"
)

type kind interface {
	comparable
	fmt.Stringer
	IsRule() bool
}

// printTokens writes one token per line as KIND<TAB>start:end<TAB>"text", skipping the
// hidden channel unless `hidden` is set. Tokens read before a lexical error are printed
func printTokens[C kind](w io.Writer, s *scan.Scanner[C], hidden bool) error {
	for tok, err := range s.Tokens() {
		if err != nil {
			return err
		}
		if tok.Channel == scan.Hidden && !hidden {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%d:%d\t%q\n", tok.Type, tok.Start(), tok.End(), tok.Text()); err != nil {
			return err
		}
	}
	return nil
}

// printTree writes the tree under `n`, one node per line, indented two spaces per level.
// Rule nodes show their name, terminals their kind and text
func printTree[C kind](w io.Writer, n *walk.Node[C, rune], kinds []C) error {
	depth := 0

	enter := func(n *walk.Node[C, rune]) error {
		indent := strings.Repeat("  ", depth)
		if !n.Type.IsRule() {
			_, err := fmt.Fprintf(w, "%s%s %q\n", indent, n.Type, string(n.Value))
			return err
		}
		depth++
		_, err := fmt.Fprintf(w, "%s%s\n", indent, n.Type)
		return err
	}
	exit := func(n *walk.Node[C, rune]) error {
		depth--
		return nil
	}

	l := walk.NewListener[C, rune]()
	for _, k := range kinds {
		if k.IsRule() {
			l.On(k, enter, exit)
		} else {
			l.On(k, enter, nil)
		}
	}
	return walk.Walk(n, l)
}
