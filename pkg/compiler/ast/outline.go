package ast

import "github.com/agenthands/letlang/pkg/compiler/location"

// Node is a tagged, serialisable view of an expression tree.
type Node struct {
	Kind     string       `json:"kind" yaml:"kind"`
	Start    location.Pos `json:"start" yaml:"start"`
	End      location.Pos `json:"end" yaml:"end"`
	Op       string       `json:"op,omitempty" yaml:"op,omitempty"`
	Name     string       `json:"name,omitempty" yaml:"name,omitempty"`
	Value    *uint64      `json:"value,omitempty" yaml:"value,omitempty"`
	Children []*Node      `json:"children,omitempty" yaml:"children,omitempty"`
}

// Outline converts e into a Node tree for encoding.
func Outline(e *Expr) *Node {
	n := &Node{Start: e.Span.Start, End: e.Span.End}
	switch k := e.Data.(type) {
	case *Int:
		n.Kind = "Int"
		v := k.Value
		n.Value = &v
	case *Ident:
		n.Kind = "Ident"
		n.Name = k.Name
	case *Let:
		n.Kind = "Let"
		n.Name = k.Name
	case *Binary:
		n.Kind = "Binary"
		n.Op = k.Operation.Name()
	case *Unary:
		n.Kind = "Unary"
		n.Op = k.Operation.Name()
	}
	for _, c := range Children(e) {
		n.Children = append(n.Children, Outline(c))
	}
	return n
}
