package arith

import (
	"github.com/zalgonoise/walk"
)

// Visitor holds one function per rule of the grammar, each returning a result of type R,
// plus one for terminal nodes
//
// Visit dispatches a node to the function for its kind; a nil function falls back to
// visiting the node's children and returning the result of the last one. Functions
// needing their children's results call Visit on them
type Visitor[R any] struct {
	File       walk.NodeFn[Kind, rune, R]
	Expression walk.NodeFn[Kind, rune, R]
	Atom       walk.NodeFn[Kind, rune, R]
	Scientific walk.NodeFn[Kind, rune, R]
	Variable   walk.NodeFn[Kind, rune, R]
	Terminal   walk.NodeFn[Kind, rune, R]
}

func (v *Visitor[R]) Visit(n *Node) (R, error) {
	var fn walk.NodeFn[Kind, rune, R]
	switch n.Type {
	case RuleFile:
		fn = v.File
	case RuleExpression:
		fn = v.Expression
	case RuleAtom:
		fn = v.Atom
	case RuleScientific:
		fn = v.Scientific
	case RuleVariable:
		fn = v.Variable
	default:
		fn = v.Terminal
	}
	if fn != nil {
		return fn(n)
	}
	return v.VisitChildren(n)
}

// VisitChildren visits the children of `n` in order and returns the last result
func (v *Visitor[R]) VisitChildren(n *Node) (R, error) {
	return walk.VisitChildren[Kind, rune, R](n, v.Visit)
}
