package arith

import (
	"github.com/zalgonoise/walk"
)

// Listener holds the enter and exit hooks for each rule of the grammar, plus a hook for
// terminal nodes. Nil hooks are skipped
type Listener struct {
	EnterFile       func(n *Node) error
	ExitFile        func(n *Node) error
	EnterExpression func(n *Node) error
	ExitExpression  func(n *Node) error
	EnterAtom       func(n *Node) error
	ExitAtom        func(n *Node) error
	EnterScientific func(n *Node) error
	ExitScientific  func(n *Node) error
	EnterVariable   func(n *Node) error
	ExitVariable    func(n *Node) error

	VisitTerminal func(n *Node) error
}

// Table converts the Listener into the handler tables walk.Walk dispatches on
func (l Listener) Table() walk.Listener[Kind, rune] {
	table := walk.NewListener[Kind, rune]().
		On(RuleFile, l.EnterFile, l.ExitFile).
		On(RuleExpression, l.EnterExpression, l.ExitExpression).
		On(RuleAtom, l.EnterAtom, l.ExitAtom).
		On(RuleScientific, l.EnterScientific, l.ExitScientific).
		On(RuleVariable, l.EnterVariable, l.ExitVariable)

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
