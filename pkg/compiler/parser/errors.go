package parser

import (
	"fmt"

	"github.com/agenthands/letlang/pkg/compiler/lexer"
	"github.com/agenthands/letlang/pkg/compiler/location"
)

// ErrorKind classifies a SyntaxError.
type ErrorKind uint8

const (
	// UnexpectedToken: a token was seen that no expected production accepts.
	UnexpectedToken ErrorKind = iota
	// UnexpectedEOF: the input ended where another token was required.
	UnexpectedEOF
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// SyntaxError is the only error the parser returns.
type SyntaxError struct {
	Kind ErrorKind
	// Token is the rejected token. It is only meaningful for UnexpectedToken.
	Token location.Spanned[lexer.Token]
}

// Sentinels for errors.Is; matching compares Kind only.
var (
	ErrUnexpectedToken = &SyntaxError{Kind: UnexpectedToken}
	ErrUnexpectedEOF   = &SyntaxError{Kind: UnexpectedEOF}
)

func (e *SyntaxError) Error() string {
	if e.Kind == UnexpectedEOF {
		return "unexpected end of input"
	}
	return fmt.Sprintf("unexpected %s at %s", e.Token.Data, e.Token.Span)
}

// Is reports whether target is a *SyntaxError of the same kind.
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	return ok && t.Kind == e.Kind
}

func unexpected(tok location.Spanned[lexer.Token]) error {
	return &SyntaxError{Kind: UnexpectedToken, Token: tok}
}

func unexpectedEOF() error {
	return &SyntaxError{Kind: UnexpectedEOF}
}
