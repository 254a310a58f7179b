package walk

// Visitor is a table of NodeFns indexed by node type, each computing a result of type R
// for the nodes of that type
type Visitor[C comparable, T any, R any] map[C]NodeFn[C, T, R]

// Visit dispatches the node `n` to the Visitor's NodeFn for its type. When the Visitor has
// no entry for that type, the edges of `n` are visited instead and the result of the
// last one is returned
//
// NodeFns that need their children's results call Visit on them with the same Visitor.
// A nil node yields R's zero value
func Visit[C comparable, T any, R any](n *Node[C, T], v Visitor[C, T, R]) (R, error) {
	if n == nil {
		var zero R
		return zero, nil
	}
	if fn, ok := v[n.Type]; ok {
		return fn(n)
	}
	return VisitChildren[C, T, R](n, func(edge *Node[C, T]) (R, error) {
		return Visit(edge, v)
	})
}

// VisitChildren applies `fn` to each edge of `n`, left to right, and returns the result of
// the last edge, or R's zero value if `n` has no edges
//
// The first error stops the iteration and is returned as-is
func VisitChildren[C comparable, T any, R any](n *Node[C, T], fn NodeFn[C, T, R]) (R, error) {
	var res R
	for _, edge := range n.Edges {
		r, err := fn(edge)
		if err != nil {
			var zero R
			return zero, err
		}
		res = r
	}
	return res, nil
}
