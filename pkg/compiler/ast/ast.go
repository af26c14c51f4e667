package ast

import "github.com/agenthands/letlang/pkg/compiler/location"

// Operation is an arithmetic operator. Unary nodes only ever carry OpMinus.
type Operation uint8

const (
	OpAdd   Operation = iota // +
	OpMinus                  // -
	OpMult                   // *
	OpSlash                  // /
)

var opSymbols = [...]string{OpAdd: "+", OpMinus: "-", OpMult: "*", OpSlash: "/"}
var opNames = [...]string{OpAdd: "Add", OpMinus: "Minus", OpMult: "Mult", OpSlash: "Slash"}

// String returns the operator as written in source.
func (o Operation) String() string {
	if int(o) < len(opSymbols) {
		return opSymbols[o]
	}
	return "?"
}

// Name returns the operator's variant name.
func (o Operation) Name() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Expr is an expression node together with the source range it covers.
type Expr = location.Spanned[ExprKind]

// ExprKind is implemented by every expression node shape.
type ExprKind interface {
	exprKind()
}

// Int is an unsigned integer literal.
type Int struct {
	Value uint64
}

// Ident is a reference to a bound name.
type Ident struct {
	Name string
}

// Let: let NAME = VALUE in NEXT
type Let struct {
	Name  string
	Value *Expr
	Next  *Expr
}

// Binary: LEFT OP RIGHT
type Binary struct {
	Operation Operation
	Left      *Expr
	Right     *Expr
}

// Unary: OP EXPR
type Unary struct {
	Operation Operation
	Expr      *Expr
}

func (*Int) exprKind()    {}
func (*Ident) exprKind()  {}
func (*Let) exprKind()    {}
func (*Binary) exprKind() {}
func (*Unary) exprKind()  {}

// Children returns the direct sub-expressions of e in source order.
func Children(e *Expr) []*Expr {
	switch k := e.Data.(type) {
	case *Let:
		return []*Expr{k.Value, k.Next}
	case *Binary:
		return []*Expr{k.Left, k.Right}
	case *Unary:
		return []*Expr{k.Expr}
	default:
		return nil
	}
}

// Walk visits e and its descendants in pre-order. Returning false from fn
// skips the children of the visited node.
func Walk(e *Expr, fn func(*Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, c := range Children(e) {
		Walk(c, fn)
	}
}
