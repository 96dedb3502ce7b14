package coerce

import (
	"fmt"
	"reflect"
	"strings"
)

// Node is a tagged structural description of a type or transform, built
// for inspection and printing rather than round-trip reconstruction.
// Args holds child Nodes and leaf values (step names, primitive tags,
// metadata maps).
type Node struct {
	Tag  string
	Args []any
}

func N(tag string, args ...any) Node {
	return Node{Tag: tag, Args: args}
}

// Equal compares two nodes structurally.
func (n Node) Equal(other Node) bool {
	return n.Tag == other.Tag && reflect.DeepEqual(n.Args, other.Args)
}

func (n Node) String() string {
	parts := make([]string, 0, len(n.Args))
	for _, a := range n.Args {
		switch v := a.(type) {
		case Node:
			parts = append(parts, v.String())
		case string:
			parts = append(parts, v)
		default:
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	}
	if len(parts) == 0 {
		return "[" + n.Tag + "]"
	}
	return "[" + n.Tag + " " + strings.Join(parts, " ") + "]"
}
