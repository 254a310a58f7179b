package threading

import (
	"fmt"

	"github.com/zalgonoise/lex"
	"github.com/zalgonoise/walk"
)

// Parse tokenizes and parses `src` into a Tree rooted on a RuleS node
func Parse(src string) (*Tree, error) {
	t := NewTree(NewLexer(src))
	if err := t.Parse(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTree returns an unparsed Tree reading from `l`
func NewTree(l walk.Emitter[Kind, rune]) *Tree {
	return walk.New(l, ParseS, RuleS)
}

// ParseS is the initial ParseFn of the threading grammar
//
// s : expr EOF
func ParseS(t *Tree) walk.ParseFn[Kind, rune] {
	if err := expr(t, 1); err != nil {
		return t.Fail(err)
	}
	if item := t.Next(); item.Type != TokenEOF {
		return t.Fail(syntaxError(item, "'+', '*' or EOF"))
	}
	return nil
}

// alternative maps an operator to the labelled alternative it builds and its precedence;
// multiply binds tighter than add, both are left-associative
func alternative(k Kind) (Kind, int, bool) {
	switch k {
	case TokenPlus:
		return RuleAdd, 1, true
	case TokenTimes:
		return RuleMultiply, 2, true
	default:
		return 0, 0, false
	}
}

func expr(t *Tree, minPrec int) error {
	parent := t.Cur()

	item := t.Next()
	if item.Type != TokenInt {
		return syntaxError(item, "INT")
	}
	lhs := t.Node(lex.NewItem[Kind, rune](item.Pos, RuleNumber))
	t.Leaf(item)
	t.Up()

	for {
		op := t.Peek()
		rule, prec, ok := alternative(op.Type)
		if !ok || prec < minPrec {
			return nil
		}
		t.Next()

		n, err := t.Wrap(lhs, lex.NewItem[Kind, rune](lhs.Pos, rule))
		if err != nil {
			return err
		}
		t.Leaf(op)
		if err := expr(t, prec+1); err != nil {
			return err
		}
		if err := t.Set(parent); err != nil {
			return err
		}
		lhs = n
	}
}

func syntaxError(item lex.Item[Kind, rune], expected string) error {
	found := item.Type.String()
	if item.Type != TokenEOF {
		found = fmt.Sprintf("%s %q", item.Type, string(item.Value))
	}
	return &walk.SyntaxError{
		Pos:      item.Pos,
		Found:    found,
		Expected: expected,
	}
}
