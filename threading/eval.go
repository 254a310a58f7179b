package threading

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/zalgonoise/walk"
	"golang.org/x/sync/errgroup"
)

// ErrOverflow is returned when a literal or an intermediate result does not fit an int64
var ErrOverflow = errors.New("integer overflow")

// Evaluator returns a Visitor computing the int64 value of a tree
func Evaluator() *Visitor[int64] {
	v := &Visitor[int64]{}

	operands := func(n *Node) (int64, int64, error) {
		lhs, err := v.Visit(n.Edges[0])
		if err != nil {
			return 0, 0, err
		}
		rhs, err := v.Visit(n.Edges[2])
		if err != nil {
			return 0, 0, err
		}
		return lhs, rhs, nil
	}

	v.Add = func(n *Node) (int64, error) {
		lhs, rhs, err := operands(n)
		if err != nil {
			return 0, err
		}
		sum := lhs + rhs
		if (lhs^sum)&(rhs^sum) < 0 {
			return 0, fmt.Errorf("%w: %d + %d at offset %d", ErrOverflow, lhs, rhs, n.Pos)
		}
		return sum, nil
	}

	v.Multiply = func(n *Node) (int64, error) {
		lhs, rhs, err := operands(n)
		if err != nil {
			return 0, err
		}
		if lhs == 0 || rhs == 0 {
			return 0, nil
		}
		prod := lhs * rhs
		if prod/rhs != lhs || (lhs == -1 && rhs == math.MinInt64) || (rhs == -1 && lhs == math.MinInt64) {
			return 0, fmt.Errorf("%w: %d * %d at offset %d", ErrOverflow, lhs, rhs, n.Pos)
		}
		return prod, nil
	}

	v.Number = func(n *Node) (int64, error) {
		text := string(n.Edges[0].Value)
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s at offset %d", ErrOverflow, text, n.Pos)
		}
		return i, nil
	}

	return v
}

// Evaluate parses `src` and returns its value
func Evaluate(src string) (int64, error) {
	return walk.Run[Kind, rune, int64](NewLexer(src), ParseS, RuleS, func(t *Tree) (int64, error) {
		return Evaluator().Visit(t.Root)
	})
}

// EvaluateAll evaluates each of `srcs` in its own goroutine, running at most `limit` at a
// time (no limit when `limit` is not positive). Results are in input order
//
// The first failure cancels the evaluations that have not started yet and is returned,
// annotated with the index of the failing input
func EvaluateAll(ctx context.Context, srcs []string, limit int) ([]int64, error) {
	res := make([]int64, len(srcs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for idx, src := range srcs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := Evaluate(src)
			if err != nil {
				return fmt.Errorf("input %d: %w", idx, err)
			}
			res[idx] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
