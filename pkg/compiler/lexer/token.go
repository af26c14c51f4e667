package lexer

import "fmt"

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindError  Kind = iota // any character the scanner does not recognise
	KindLet                // let
	KindIn                 // in
	KindIdent              // [A-Za-z_]+
	KindInt                // [0-9]+
	KindString             // "..."
	KindLPar               // (
	KindRPar               // )
	KindEqual              // =
	KindPlus               // +
	KindMinus              // -
	KindStar               // *
	KindSlash              // /
)

var kindNames = [...]string{
	KindError:  "Error",
	KindLet:    "Let",
	KindIn:     "In",
	KindIdent:  "Ident",
	KindInt:    "Int",
	KindString: "Str",
	KindLPar:   "LPar",
	KindRPar:   "RPar",
	KindEqual:  "Equal",
	KindPlus:   "Plus",
	KindMinus:  "Minus",
	KindStar:   "Star",
	KindSlash:  "Slash",
}

// kindText is the fixed source text of keyword and punctuation kinds.
var kindText = [...]string{
	KindLet:   "let",
	KindIn:    "in",
	KindLPar:  "(",
	KindRPar:  ")",
	KindEqual: "=",
	KindPlus:  "+",
	KindMinus: "-",
	KindStar:  "*",
	KindSlash: "/",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token is a lexical unit. Text is set for KindIdent and KindString and is a
// substring of the scanned source; Value is set for KindInt. Tokens compare
// structurally with ==.
type Token struct {
	Kind  Kind
	Text  string
	Value uint64
}

// Ident returns an identifier token.
func Ident(text string) Token { return Token{Kind: KindIdent, Text: text} }

// Int returns an integer literal token.
func Int(v uint64) Token { return Token{Kind: KindInt, Value: v} }

// Str returns a string literal token holding the text between the quotes.
func Str(text string) Token { return Token{Kind: KindString, Text: text} }

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// String describes the token the way diagnostics refer to it.
func (t Token) String() string {
	switch t.Kind {
	case KindIdent:
		return fmt.Sprintf("identifier %q", t.Text)
	case KindInt:
		return fmt.Sprintf("integer %d", t.Value)
	case KindString:
		return fmt.Sprintf("string %q", t.Text)
	case KindLet, KindIn:
		return fmt.Sprintf("keyword %q", kindText[t.Kind])
	case KindError:
		return "invalid token"
	default:
		if int(t.Kind) < len(kindText) && kindText[t.Kind] != "" {
			return fmt.Sprintf("'%s'", kindText[t.Kind])
		}
		return t.Kind.String()
	}
}
