package walk

// Hook is a callback invoked by Walk for a single node
type Hook[C comparable, T any] func(n *Node[C, T]) error

// Listener is a pair of handler tables indexed by node type. Enter hooks run when the
// traversal of a node begins, before any of its edges; Exit hooks run after all of its
// edges were walked
//
// A node type with no hook is walked through silently. A Listener holds no state of its
// own and may be reused across walks
type Listener[C comparable, T any] struct {
	Enter map[C]Hook[C, T]
	Exit  map[C]Hook[C, T]
}

// NewListener creates an empty Listener, ready to have hooks registered with On
func NewListener[C comparable, T any]() Listener[C, T] {
	return Listener[C, T]{
		Enter: map[C]Hook[C, T]{},
		Exit:  map[C]Hook[C, T]{},
	}
}

// On registers the enter and exit hooks for the node type `typ`. Either may be nil
func (l Listener[C, T]) On(typ C, enter, exit Hook[C, T]) Listener[C, T] {
	if enter != nil {
		l.Enter[typ] = enter
	}
	if exit != nil {
		l.Exit[typ] = exit
	}
	return l
}

// Walk traverses the tree under `n` depth-first, calling the Listener's Enter hook for each
// node in pre-order and its Exit hook in post-order, visiting edges left to right
//
// The first error returned by a hook stops the traversal and is returned as-is
func Walk[C comparable, T any](n *Node[C, T], l Listener[C, T]) error {
	if n == nil {
		return nil
	}
	if fn, ok := l.Enter[n.Type]; ok {
		if err := fn(n); err != nil {
			return err
		}
	}
	for _, edge := range n.Edges {
		if err := Walk(edge, l); err != nil {
			return err
		}
	}
	if fn, ok := l.Exit[n.Type]; ok {
		if err := fn(n); err != nil {
			return err
		}
	}
	return nil
}
