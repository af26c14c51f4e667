package lexer

import (
	"iter"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/agenthands/letlang/pkg/compiler/location"
)

// Scanner performs lexical analysis on letlang source. Tokens are produced
// on demand; nothing is buffered.
type Scanner struct {
	source string
	start  int // first byte of the token being scanned
	cursor int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source string) {
	s.source = source
	s.start = 0
	s.cursor = 0
}

// Next returns the next token from the source. It returns false once the
// input is exhausted, and keeps returning false on later calls.
func (s *Scanner) Next() (location.Spanned[Token], bool) {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return location.Spanned[Token]{}, false
	}

	s.start = s.cursor
	ch := s.source[s.cursor]

	switch {
	case ch == '"':
		return s.scanString(), true
	case isDigit(ch):
		return s.scanNumber(), true
	case isIdent(ch):
		return s.scanIdentifier(), true
	}

	kind := KindError
	switch ch {
	case '=':
		kind = KindEqual
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindStar
	case '/':
		kind = KindSlash
	case '(':
		kind = KindLPar
	case ')':
		kind = KindRPar
	}

	if kind == KindError {
		// Never split a multi-byte character across error tokens.
		_, size := utf8.DecodeRuneInString(s.source[s.cursor:])
		s.cursor += size
	} else {
		s.cursor++
	}
	return s.emit(Token{Kind: kind}), true
}

// All returns the remaining tokens as a single-use sequence.
func (s *Scanner) All() iter.Seq[location.Spanned[Token]] {
	return func(yield func(location.Spanned[Token]) bool) {
		for {
			tok, ok := s.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize scans the whole source eagerly.
func Tokenize(source string) []location.Spanned[Token] {
	return slices.Collect(NewScanner(source).All())
}

func (s *Scanner) emit(tok Token) location.Spanned[Token] {
	return location.New(location.Pos(s.start), location.Pos(s.cursor), tok)
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		switch s.source[s.cursor] {
		case ' ', '\n', '\r':
			s.cursor++
		default:
			return
		}
	}
}

// scanString reads up to and including the closing quote. An unterminated
// literal runs to the end of input and keeps whatever was read.
func (s *Scanner) scanString() location.Spanned[Token] {
	s.cursor++ // Skip opening '"'
	textStart := s.cursor
	for s.cursor < len(s.source) && s.source[s.cursor] != '"' {
		s.cursor++
	}
	text := s.source[textStart:s.cursor]
	if s.cursor < len(s.source) {
		s.cursor++ // Skip closing '"'
	}
	return s.emit(Str(text))
}

// scanNumber reads a maximal digit run. A run that overflows uint64 becomes a
// single error token covering all of it.
func (s *Scanner) scanNumber() location.Spanned[Token] {
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}
	v, err := strconv.ParseUint(s.source[s.start:s.cursor], 10, 64)
	if err != nil {
		return s.emit(Token{Kind: KindError})
	}
	return s.emit(Int(v))
}

func (s *Scanner) scanIdentifier() location.Spanned[Token] {
	for s.cursor < len(s.source) && isIdent(s.source[s.cursor]) {
		s.cursor++
	}

	switch literal := s.source[s.start:s.cursor]; literal {
	case "let":
		return s.emit(Token{Kind: KindLet})
	case "in":
		return s.emit(Token{Kind: KindIn})
	default:
		return s.emit(Ident(literal))
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdent(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
