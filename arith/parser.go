package arith

import (
	"fmt"

	"github.com/zalgonoise/lex"
	"github.com/zalgonoise/walk"
)

// Parse tokenizes and parses `src` into a Tree rooted on a RuleFile node
//
// A lexical error is returned as the scanner's *scan.Error; a misplaced token as a
// *walk.SyntaxError
func Parse(src string) (*Tree, error) {
	t := NewTree(NewLexer(src))
	if err := t.Parse(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTree returns an unparsed Tree reading from `l`
func NewTree(l walk.Emitter[Kind, rune]) *Tree {
	return walk.New(l, ParseFile, RuleFile)
}

// ParseFile is the initial ParseFn of the arithmetic grammar, for use with walk.New and
// walk.Run
//
// file : (expression (SEMI expression)*)? SEMI? EOF
func ParseFile(t *Tree) walk.ParseFn[Kind, rune] {
	item := t.Next()
	switch {
	case item.Type == TokenEOF:
		return nil
	case item.Type == TokenSemi && len(t.Root.Edges) == 0:
		// a file with no expressions holds at most one ';'
		t.Leaf(item)
		if end := t.Next(); end.Type != TokenEOF {
			return t.Fail(syntaxError(end, "EOF"))
		}
		return nil
	default:
		t.Backup()
		return parseStatement
	}
}

func parseStatement(t *Tree) walk.ParseFn[Kind, rune] {
	t.Store(walk.Slot0)
	if err := expression(t, precCompare); err != nil {
		return t.Fail(err)
	}
	if err := t.Set(t.Load(walk.Slot0)); err != nil {
		return t.Fail(err)
	}

	item := t.Next()
	switch item.Type {
	case TokenEOF:
		return nil
	case TokenSemi:
		t.Leaf(item)
		return ParseFile
	default:
		return t.Fail(syntaxError(item, "operator, ';' or EOF"))
	}
}

const (
	precCompare = iota + 1
	precSum
	precProduct
	precPow
)

func binary(k Kind) (prec int, rightAssoc bool, ok bool) {
	switch k {
	case TokenGT, TokenLT, TokenEQ:
		return precCompare, false, true
	case TokenPlus, TokenMinus:
		return precSum, false, true
	case TokenTimes, TokenDiv:
		return precProduct, false, true
	case TokenPow:
		return precPow, true, true
	default:
		return 0, false, false
	}
}

// expression parses an expression under the current node by precedence climbing. Each
// binary operator wraps the left operand into a new expression node. The tree's position
// is the same on return as on entry
func expression(t *Tree, minPrec int) error {
	parent := t.Cur()

	lhs, err := primary(t)
	if err != nil {
		return err
	}

	for {
		op := t.Peek()
		prec, rightAssoc, ok := binary(op.Type)
		if !ok || prec < minPrec {
			return nil
		}
		t.Next()

		n, err := t.Wrap(lhs, lex.NewItem[Kind, rune](lhs.Pos, RuleExpression))
		if err != nil {
			return err
		}
		t.Leaf(op)

		next := prec + 1
		if rightAssoc {
			next = prec
		}
		if err := expression(t, next); err != nil {
			return err
		}

		if err := t.Set(parent); err != nil {
			return err
		}
		lhs = n
	}
}

// primary : LPAREN expression RPAREN | (PLUS|MINUS)* atom
func primary(t *Tree) (*Node, error) {
	first := t.Peek()
	n := t.Node(lex.NewItem[Kind, rune](first.Pos, RuleExpression))
	defer t.Up()

	if first.Type == TokenLParen {
		t.Leaf(t.Next())
		if err := expression(t, precCompare); err != nil {
			return nil, err
		}
		closing := t.Next()
		if closing.Type != TokenRParen {
			return nil, syntaxError(closing, "')'")
		}
		t.Leaf(closing)
		return n, nil
	}

	for {
		sign := t.Peek()
		if sign.Type != TokenPlus && sign.Type != TokenMinus {
			break
		}
		t.Leaf(t.Next())
	}
	if err := atom(t); err != nil {
		return nil, err
	}
	return n, nil
}

// atom : scientific | variable
func atom(t *Tree) error {
	item := t.Next()

	var rule Kind
	switch item.Type {
	case TokenNumber:
		rule = RuleScientific
	case TokenVariable:
		rule = RuleVariable
	default:
		return syntaxError(item, "number, variable or '('")
	}

	t.Node(lex.NewItem[Kind, rune](item.Pos, RuleAtom))
	t.Node(lex.NewItem[Kind, rune](item.Pos, rule))
	t.Leaf(item)
	t.Up()
	t.Up()
	return nil
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
