package scripts

import (
	"fmt"
	"strings"

	"github.com/zalgonoise/walk"
	"go.starlark.net/starlark"
)

// nodeCache builds each node's dict once per walk; the dicts are frozen so sharing them
// between hooks is safe
type nodeCache[C interface {
	comparable
	fmt.Stringer
}, T any] struct {
	dicts map[*walk.Node[C, T]]*starlark.Dict
	texts map[*walk.Node[C, T]]string
}

func newNodeCache[C interface {
	comparable
	fmt.Stringer
}, T any]() *nodeCache[C, T] {
	return &nodeCache[C, T]{
		dicts: make(map[*walk.Node[C, T]]*starlark.Dict),
		texts: make(map[*walk.Node[C, T]]string),
	}
}

func (c *nodeCache[C, T]) value(n *walk.Node[C, T]) starlark.Value {
	if d, ok := c.dicts[n]; ok {
		return d
	}

	children := make([]starlark.Value, 0, len(n.Edges))
	for _, edge := range n.Edges {
		children = append(children, c.value(edge))
	}

	d := starlark.NewDict(4)
	_ = d.SetKey(starlark.String("kind"), starlark.String(n.Type.String()))
	_ = d.SetKey(starlark.String("text"), starlark.String(c.text(n)))
	_ = d.SetKey(starlark.String("pos"), starlark.MakeInt(n.Pos))
	_ = d.SetKey(starlark.String("children"), starlark.NewList(children))
	d.Freeze()

	c.dicts[n] = d
	return d
}

// text is the node's own value for terminals, and the concatenated text of its
// descendants for rule nodes
func (c *nodeCache[C, T]) text(n *walk.Node[C, T]) string {
	if text, ok := c.texts[n]; ok {
		return text
	}

	var text string
	if len(n.Edges) == 0 {
		text = valueText(n.Value)
	} else {
		var sb strings.Builder
		for _, edge := range n.Edges {
			sb.WriteString(c.text(edge))
		}
		text = sb.String()
	}

	c.texts[n] = text
	return text
}

func valueText[T any](value []T) string {
	switch v := any(value).(type) {
	case []rune:
		return string(v)
	case []byte:
		return string(v)
	case []string:
		return strings.Join(v, "")
	}
	var sb strings.Builder
	for _, elem := range value {
		fmt.Fprint(&sb, elem)
	}
	return sb.String()
}
