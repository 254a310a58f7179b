package threading

import (
	"github.com/zalgonoise/walk"
)

// Visitor holds one function per rule and labelled alternative, each returning a result
// of type R, plus one for terminal nodes. A nil function falls back to visiting the
// node's children and returning the result of the last one
type Visitor[R any] struct {
	S        walk.NodeFn[Kind, rune, R]
	Add      walk.NodeFn[Kind, rune, R]
	Number   walk.NodeFn[Kind, rune, R]
	Multiply walk.NodeFn[Kind, rune, R]
	Terminal walk.NodeFn[Kind, rune, R]
}

func (v *Visitor[R]) Visit(n *Node) (R, error) {
	var fn walk.NodeFn[Kind, rune, R]
	switch n.Type {
	case RuleS:
		fn = v.S
	case RuleAdd:
		fn = v.Add
	case RuleNumber:
		fn = v.Number
	case RuleMultiply:
		fn = v.Multiply
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
