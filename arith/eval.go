package arith

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/zalgonoise/walk"
)

var (
	// ErrUndefinedVariable is returned when an expression reads a variable with no value
	ErrUndefinedVariable = errors.New("undefined variable")
	// ErrInvalidNumber is returned for a number literal that does not fit a float64
	ErrInvalidNumber = errors.New("invalid number")
)

// Evaluator returns a Visitor computing the value of expressions, reading variables from
// `vars`. Comparisons yield 1 or 0; a file yields the value of its last statement
func Evaluator(vars map[string]float64) *Visitor[float64] {
	v := &Visitor[float64]{}

	v.File = func(n *Node) (float64, error) {
		var res float64
		for _, edge := range n.Edges {
			if edge.Type != RuleExpression {
				continue
			}
			r, err := v.Visit(edge)
			if err != nil {
				return 0, err
			}
			res = r
		}
		return res, nil
	}

	v.Expression = func(n *Node) (float64, error) {
		edges := n.Edges
		switch {
		case len(edges) == 3 && edges[0].Type == RuleExpression:
			lhs, err := v.Visit(edges[0])
			if err != nil {
				return 0, err
			}
			rhs, err := v.Visit(edges[2])
			if err != nil {
				return 0, err
			}
			return apply(edges[1].Type, lhs, rhs)

		case len(edges) == 3 && edges[0].Type == TokenLParen:
			return v.Visit(edges[1])
		}

		// (PLUS|MINUS)* atom
		sign := 1.0
		for _, edge := range edges[:len(edges)-1] {
			if edge.Type == TokenMinus {
				sign = -sign
			}
		}
		res, err := v.Visit(edges[len(edges)-1])
		if err != nil {
			return 0, err
		}
		return sign * res, nil
	}

	v.Scientific = func(n *Node) (float64, error) {
		text := string(n.Edges[0].Value)
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, fmt.Errorf("%w %q at offset %d", ErrInvalidNumber, text, n.Pos)
		}
		return f, nil
	}

	v.Variable = func(n *Node) (float64, error) {
		name := string(n.Edges[0].Value)
		f, ok := vars[name]
		if !ok {
			return 0, fmt.Errorf("%w %q at offset %d", ErrUndefinedVariable, name, n.Pos)
		}
		return f, nil
	}

	return v
}

func apply(op Kind, lhs, rhs float64) (float64, error) {
	switch op {
	case TokenPlus:
		return lhs + rhs, nil
	case TokenMinus:
		return lhs - rhs, nil
	case TokenTimes:
		return lhs * rhs, nil
	case TokenDiv:
		return lhs / rhs, nil
	case TokenPow:
		return math.Pow(lhs, rhs), nil
	case TokenGT:
		return truth(lhs > rhs), nil
	case TokenLT:
		return truth(lhs < rhs), nil
	case TokenEQ:
		return truth(lhs == rhs), nil
	default:
		return 0, fmt.Errorf("%w: unknown operator %s", walk.ErrSyntax, op)
	}
}

func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Evaluate parses `src` and returns the value of its last statement
func Evaluate(src string, vars map[string]float64) (float64, error) {
	return walk.Run[Kind, rune, float64](NewLexer(src), ParseFile, RuleFile, func(t *Tree) (float64, error) {
		return Evaluator(vars).Visit(t.Root)
	})
}

// EvaluateAll parses `src` and returns the value of each of its statements
func EvaluateAll(src string, vars map[string]float64) ([]float64, error) {
	t, err := Parse(src)
	if err != nil {
		return nil, err
	}

	v := Evaluator(vars)
	var res []float64
	for _, n := range t.List() {
		if n.Type != RuleExpression {
			continue
		}
		r, err := v.Visit(n)
		if err != nil {
			return res, err
		}
		res = append(res, r)
	}
	return res, nil
}
