package parser

import (
	"strings"

	"github.com/agenthands/letlang/pkg/compiler/ast"
	"github.com/agenthands/letlang/pkg/compiler/lexer"
	"github.com/agenthands/letlang/pkg/compiler/location"
)

// Operators accepted by each binary precedence level.
var (
	addOps = map[lexer.Kind]ast.Operation{
		lexer.KindPlus:  ast.OpAdd,
		lexer.KindMinus: ast.OpMinus,
	}
	multOps = map[lexer.Kind]ast.Operation{
		lexer.KindStar:  ast.OpMult,
		lexer.KindSlash: ast.OpSlash,
	}
)

// Parser is a recursive-descent parser over a Scanner with exactly one token
// of lookahead. It is not safe for concurrent use.
//
//	expr := "let" id "=" expr "in" expr | add
//	add  := mult (("+" | "-") mult)*
//	mult := atom (("*" | "/") atom)*
//	atom := int | id | "(" expr ")" | "-" expr
type Parser struct {
	scanner *lexer.Scanner
	peekTok location.Spanned[lexer.Token]
	hasPeek bool
}

func NewParser(s *lexer.Scanner) *Parser {
	return &Parser{scanner: s}
}

// Parse parses src as a single expression that must consume all input.
func Parse(src string) (*ast.Expr, error) {
	return NewParser(lexer.NewScanner(src)).ParseProgram()
}

// Peek returns the lookahead token without consuming it. After a failed
// parse it is the token that was rejected.
func (p *Parser) Peek() (location.Spanned[lexer.Token], bool) {
	if !p.hasPeek {
		p.peekTok, p.hasPeek = p.scanner.Next()
	}
	return p.peekTok, p.hasPeek
}

func (p *Parser) nextToken() {
	p.Peek()
	p.hasPeek = false
}

// ParseProgram parses one expression and rejects any tokens left after it.
func (p *Parser) ParseProgram() (*ast.Expr, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.Peek(); ok {
		return nil, unexpected(tok)
	}
	return expr, nil
}

// ParseExpr parses the longest expression at the head of the token stream.
// Tokens after it are left unconsumed.
func (p *Parser) ParseExpr() (*ast.Expr, error) {
	tok, ok := p.Peek()
	if !ok {
		return nil, unexpectedEOF()
	}

	if tok.Data.Kind == lexer.KindLet {
		return p.parseLet()
	}
	return p.parseAdd()
}

func (p *Parser) parseLet() (*ast.Expr, error) {
	start, err := p.eat(lexer.KindLet)
	if err != nil {
		return nil, err
	}
	name, err := p.parseID()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(lexer.KindEqual); err != nil {
		return nil, err
	}
	value, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(lexer.KindIn); err != nil {
		return nil, err
	}
	next, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.Expr{
		Span: location.NewSpan(start.Span.Start, next.Span.End),
		Data: &ast.Let{
			Name:  strings.Clone(name.Data),
			Value: value,
			Next:  next,
		},
	}, nil
}

func (p *Parser) parseAdd() (*ast.Expr, error) {
	return p.parseBinary(addOps, p.parseMult)
}

func (p *Parser) parseMult() (*ast.Expr, error) {
	return p.parseBinary(multOps, p.parseAtom)
}

// parseBinary folds operand (op operand)* to the left. Running out of tokens
// simply ends the loop.
func (p *Parser) parseBinary(ops map[lexer.Kind]ast.Operation, operand func() (*ast.Expr, error)) (*ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.Peek()
		if !ok {
			return left, nil
		}
		op, isOp := ops[tok.Data.Kind]
		if !isOp {
			return left, nil
		}
		p.nextToken()

		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.Expr{
			Span: location.NewSpan(left.Span.Start, right.Span.End),
			Data: &ast.Binary{
				Operation: op,
				Left:      left,
				Right:     right,
			},
		}
	}
}

func (p *Parser) parseAtom() (*ast.Expr, error) {
	tok, ok := p.Peek()
	if !ok {
		return nil, unexpectedEOF()
	}

	switch tok.Data.Kind {
	case lexer.KindInt:
		return p.parseInt()
	case lexer.KindIdent:
		return p.parseIdent()
	case lexer.KindLPar:
		return p.parseParens()
	case lexer.KindMinus:
		return p.parseMinus()
	default:
		return nil, unexpected(tok)
	}
}

// parseParens returns the inner expression with its own span; the parens
// leave no trace in the tree.
func (p *Parser) parseParens() (*ast.Expr, error) {
	if _, err := p.eat(lexer.KindLPar); err != nil {
		return nil, err
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(lexer.KindRPar); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseMinus takes a full expression as its operand, so "-1 + 2" negates
// the sum and "-let x = 1 in x" is accepted.
func (p *Parser) parseMinus() (*ast.Expr, error) {
	op, err := p.eat(lexer.KindMinus)
	if err != nil {
		return nil, err
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{
		Span: location.NewSpan(op.Span.Start, expr.Span.End),
		Data: &ast.Unary{
			Operation: ast.OpMinus,
			Expr:      expr,
		},
	}, nil
}

func (p *Parser) parseIdent() (*ast.Expr, error) {
	name, err := p.parseID()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{
		Span: name.Span,
		Data: &ast.Ident{Name: strings.Clone(name.Data)},
	}, nil
}

func (p *Parser) parseInt() (*ast.Expr, error) {
	v, err := eatMatch(p, func(t lexer.Token) (uint64, bool) {
		return t.Value, t.Kind == lexer.KindInt
	})
	if err != nil {
		return nil, err
	}
	return &ast.Expr{
		Span: v.Span,
		Data: &ast.Int{Value: v.Data},
	}, nil
}

func (p *Parser) parseID() (location.Spanned[string], error) {
	return eatMatch(p, func(t lexer.Token) (string, bool) {
		return t.Text, t.Kind == lexer.KindIdent
	})
}

func (p *Parser) eat(kind lexer.Kind) (location.Spanned[lexer.Token], error) {
	return eatMatch(p, func(t lexer.Token) (lexer.Token, bool) {
		return t, t.Kind == kind
	})
}

// eatMatch consumes the lookahead token if match accepts it and returns the
// projected value with the token's span. On mismatch nothing is consumed.
func eatMatch[T any](p *Parser, match func(lexer.Token) (T, bool)) (location.Spanned[T], error) {
	tok, ok := p.Peek()
	if !ok {
		return location.Spanned[T]{}, unexpectedEOF()
	}

	v, ok := match(tok.Data)
	if !ok {
		return location.Spanned[T]{}, unexpected(tok)
	}
	p.nextToken()
	return location.Wrap(tok.Span, v), nil
}
