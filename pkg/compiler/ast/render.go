package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Binding strength used when deciding where parentheses are required.
// let and unary minus extend as far right as possible, so they bind loosest.
const (
	precOpen = iota
	precAdd
	precMult
	precAtom
)

// Render prints e as source text with the fewest parentheses that still
// parse back to the same tree.
func Render(e *Expr) string {
	var b strings.Builder
	render(&b, e, precOpen)
	return b.String()
}

func precedence(e *Expr) int {
	switch k := e.Data.(type) {
	case *Binary:
		return opPrecedence(k.Operation)
	case *Let, *Unary:
		return precOpen
	default:
		return precAtom
	}
}

func opPrecedence(op Operation) int {
	if op == OpMult || op == OpSlash {
		return precMult
	}
	return precAdd
}

func render(b *strings.Builder, e *Expr, minPrec int) {
	if precedence(e) < minPrec {
		b.WriteByte('(')
		render(b, e, precOpen)
		b.WriteByte(')')
		return
	}

	switch k := e.Data.(type) {
	case *Int:
		b.WriteString(strconv.FormatUint(k.Value, 10))
	case *Ident:
		b.WriteString(k.Name)
	case *Let:
		b.WriteString("let ")
		b.WriteString(k.Name)
		b.WriteString(" = ")
		render(b, k.Value, precOpen)
		b.WriteString(" in ")
		render(b, k.Next, precOpen)
	case *Binary:
		p := opPrecedence(k.Operation)
		render(b, k.Left, p)
		b.WriteByte(' ')
		b.WriteString(k.Operation.String())
		b.WriteByte(' ')
		// Left-associative: an equal-precedence right operand needs parens.
		render(b, k.Right, p+1)
	case *Unary:
		b.WriteString(k.Operation.String())
		render(b, k.Expr, precOpen)
	default:
		panic(fmt.Sprintf("ast: unknown expression %T", e.Data))
	}
}

// SExpr prints e as a fully parenthesised prefix form, e.g.
// (let x 1 (+ x 2)).
func SExpr(e *Expr) string {
	var b strings.Builder
	sexpr(&b, e)
	return b.String()
}

func sexpr(b *strings.Builder, e *Expr) {
	switch k := e.Data.(type) {
	case *Int:
		b.WriteString(strconv.FormatUint(k.Value, 10))
	case *Ident:
		b.WriteString(k.Name)
	case *Let:
		b.WriteString("(let ")
		b.WriteString(k.Name)
		b.WriteByte(' ')
		sexpr(b, k.Value)
		b.WriteByte(' ')
		sexpr(b, k.Next)
		b.WriteByte(')')
	case *Binary:
		fmt.Fprintf(b, "(%s ", k.Operation)
		sexpr(b, k.Left)
		b.WriteByte(' ')
		sexpr(b, k.Right)
		b.WriteByte(')')
	case *Unary:
		fmt.Fprintf(b, "(%s ", k.Operation)
		sexpr(b, k.Expr)
		b.WriteByte(')')
	default:
		panic(fmt.Sprintf("ast: unknown expression %T", e.Data))
	}
}
