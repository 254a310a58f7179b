// Package calc rewrites arithmetic statements into postfix notation with a parse tree
// listener.
package calc

import (
	"strings"

	"github.com/zalgonoise/walk"
	"github.com/zalgonoise/walk/arith"
)

// Postfix parses `src` and returns its statements in postfix notation, separated by " ; ".
// Unary minus is written as "neg", unary plus is dropped
func Postfix(src string) (string, error) {
	return walk.Run[arith.Kind, rune, string](arith.NewLexer(src), arith.ParseFile, arith.RuleFile, postfix)
}

func postfix(t *arith.Tree) (string, error) {
	var out []string

	err := arith.Walk(t.Root, arith.Listener{
		ExitScientific: func(n *arith.Node) error {
			out = append(out, string(n.Edges[0].Value))
			return nil
		},
		ExitVariable: func(n *arith.Node) error {
			out = append(out, string(n.Edges[0].Value))
			return nil
		},
		ExitExpression: func(n *arith.Node) error {
			switch {
			case n.Edges[0].Type == arith.RuleExpression:
				out = append(out, string(n.Edges[1].Value))
			case n.Edges[0].Type == arith.TokenLParen:
			default:
				for _, edge := range n.Edges {
					if edge.Type == arith.TokenMinus {
						out = append(out, "neg")
					}
				}
			}
			return nil
		},
		VisitTerminal: func(n *arith.Node) error {
			if n.Type == arith.TokenSemi {
				out = append(out, ";")
			}
			return nil
		},
	})
	if err != nil {
		return "", err
	}

	return strings.Join(out, " "), nil
}
