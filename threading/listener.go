package threading

import (
	"github.com/zalgonoise/walk"
)

// Listener holds the enter and exit hooks for the start rule and for each labelled
// alternative of expr, plus a hook for terminal nodes. Nil hooks are skipped
type Listener struct {
	EnterS        func(n *Node) error
	ExitS         func(n *Node) error
	EnterAdd      func(n *Node) error
	ExitAdd       func(n *Node) error
	EnterNumber   func(n *Node) error
	ExitNumber    func(n *Node) error
	EnterMultiply func(n *Node) error
	ExitMultiply  func(n *Node) error

	VisitTerminal func(n *Node) error
}

// Table converts the Listener into the handler tables walk.Walk dispatches on
func (l Listener) Table() walk.Listener[Kind, rune] {
	table := walk.NewListener[Kind, rune]().
		On(RuleS, l.EnterS, l.ExitS).
		On(RuleAdd, l.EnterAdd, l.ExitAdd).
		On(RuleNumber, l.EnterNumber, l.ExitNumber).
		On(RuleMultiply, l.EnterMultiply, l.ExitMultiply)

	if l.VisitTerminal != nil {
		for _, k := range Tokens {
			table.On(k, l.VisitTerminal, nil)
		}
	}
	return table
}

// Walk traverses the tree under `n` with the Listener's hooks
func Walk(n *Node, l Listener) error {
	return walk.Walk(n, l.Table())
}
