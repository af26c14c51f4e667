package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/letlang/pkg/compiler/ast"
	"github.com/agenthands/letlang/pkg/compiler/location"
)

func expr(start, end location.Pos, k ast.ExprKind) *ast.Expr {
	e := location.New[ast.ExprKind](start, end, k)
	return &e
}

// let x = 1 in (-x) * 2
func sample() *ast.Expr {
	x := expr(15, 16, &ast.Ident{Name: "x"})
	negX := expr(14, 16, &ast.Unary{Operation: ast.OpMinus, Expr: x})
	two := expr(20, 21, &ast.Int{Value: 2})
	return expr(0, 21, &ast.Let{
		Name:  "x",
		Value: expr(8, 9, &ast.Int{Value: 1}),
		Next:  expr(14, 21, &ast.Binary{Operation: ast.OpMult, Left: negX, Right: two}),
	})
}

func TestRender(t *testing.T) {
	one := expr(0, 0, &ast.Int{Value: 1})
	two := expr(0, 0, &ast.Int{Value: 2})
	three := expr(0, 0, &ast.Int{Value: 3})
	bin := func(op ast.Operation, l, r *ast.Expr) *ast.Expr {
		return expr(0, 0, &ast.Binary{Operation: op, Left: l, Right: r})
	}
	neg := func(e *ast.Expr) *ast.Expr {
		return expr(0, 0, &ast.Unary{Operation: ast.OpMinus, Expr: e})
	}

	tests := []struct {
		name string
		e    *ast.Expr
		want string
	}{
		{"Left Nested Sub", bin(ast.OpMinus, bin(ast.OpMinus, one, two), three), "1 - 2 - 3"},
		{"Right Nested Sub", bin(ast.OpMinus, one, bin(ast.OpMinus, two, three)), "1 - (2 - 3)"},
		{"Mult Of Sum", bin(ast.OpMult, bin(ast.OpAdd, one, two), three), "(1 + 2) * 3"},
		{"Sum Of Mult", bin(ast.OpAdd, one, bin(ast.OpMult, two, three)), "1 + 2 * 3"},
		{"Div Right", bin(ast.OpSlash, one, bin(ast.OpSlash, two, three)), "1 / (2 / 3)"},
		{"Negated Sum", neg(bin(ast.OpAdd, one, two)), "-1 + 2"},
		{"Negation As Operand", bin(ast.OpAdd, neg(one), two), "(-1) + 2"},
		{"Double Negation", neg(neg(one)), "--1"},
		{"Let", sample(), "let x = 1 in (-x) * 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ast.Render(tt.e))
		})
	}
}

func TestSExpr(t *testing.T) {
	assert.Equal(t, "(let x 1 (* (- x) 2))", ast.SExpr(sample()))
}

func TestWalk(t *testing.T) {
	var kinds []string
	ast.Walk(sample(), func(e *ast.Expr) bool {
		kinds = append(kinds, ast.Outline(e).Kind)
		return true
	})
	assert.Equal(t, []string{"Let", "Int", "Binary", "Unary", "Ident", "Int"}, kinds)

	var visited int
	ast.Walk(sample(), func(e *ast.Expr) bool {
		visited++
		_, isLet := e.Data.(*ast.Let)
		return !isLet
	})
	assert.Equal(t, 1, visited)
}

func TestOutlineJSON(t *testing.T) {
	b, err := json.Marshal(ast.Outline(sample()))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "Let", "start": 0, "end": 21, "name": "x",
		"children": [
			{"kind": "Int", "start": 8, "end": 9, "value": 1},
			{"kind": "Binary", "start": 14, "end": 21, "op": "Mult", "children": [
				{"kind": "Unary", "start": 14, "end": 16, "op": "Minus", "children": [
					{"kind": "Ident", "start": 15, "end": 16, "name": "x"}
				]},
				{"kind": "Int", "start": 20, "end": 21, "value": 2}
			]}
		]
	}`, string(b))
}

func TestOutlineZeroValue(t *testing.T) {
	n := ast.Outline(expr(0, 1, &ast.Int{Value: 0}))
	require.NotNil(t, n.Value)
	assert.Equal(t, uint64(0), *n.Value)
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "+", ast.OpAdd.String())
	assert.Equal(t, "/", ast.OpSlash.String())
	assert.Equal(t, "Mult", ast.OpMult.Name())
	assert.Equal(t, "Minus", ast.OpMinus.Name())
}
