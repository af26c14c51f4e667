// Package diagnostic turns parser errors into messages a person can act on:
// it maps byte offsets to lines and columns, adds hints, and renders the
// offending source line with a caret underline.
package diagnostic

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	levenshtein "github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/agenthands/letlang/pkg/compiler/lexer"
	"github.com/agenthands/letlang/pkg/compiler/location"
	"github.com/agenthands/letlang/pkg/compiler/parser"
)

var keywords = []string{"let", "in"}

// LineIndex maps byte offsets to 1-based line and column numbers.
type LineIndex struct {
	starts []int
}

// NewLineIndex records where each line of src begins.
func NewLineIndex(src string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts}
}

// Position returns the line and column of pos. Columns count bytes.
func (ix *LineIndex) Position(pos location.Pos) (line, col int) {
	off := int(pos)
	i := sort.Search(len(ix.starts), func(i int) bool { return ix.starts[i] > off }) - 1
	return i + 1, off - ix.starts[i] + 1
}

// LineStart returns the offset of the first byte of the 1-based line.
func (ix *LineIndex) LineStart(line int) int {
	return ix.starts[line-1]
}

// Diagnostic is a located, human-readable error.
type Diagnostic struct {
	Span    location.Span
	Message string
	Hint    string
}

// FromError builds a Diagnostic from a *parser.SyntaxError found in err's
// chain. src must be the source the error came from.
func FromError(src string, err error) (Diagnostic, bool) {
	var synErr *parser.SyntaxError
	if !errors.As(err, &synErr) {
		return Diagnostic{}, false
	}

	if synErr.Kind == parser.UnexpectedEOF {
		end := location.Pos(len(src))
		return Diagnostic{
			Span:    location.NewSpan(end, end),
			Message: "unexpected end of input",
		}, true
	}

	tok := synErr.Token
	d := Diagnostic{
		Span:    tok.Span,
		Message: fmt.Sprintf("unexpected %s", tok.Data),
	}
	d.Hint = hint(src, tok)
	return d, true
}

func hint(src string, tok location.Spanned[lexer.Token]) string {
	text := ""
	if int(tok.Span.End) <= len(src) {
		text = src[tok.Span.Start:tok.Span.End]
	}

	switch tok.Data.Kind {
	case lexer.KindError:
		if text != "" && text[0] >= '0' && text[0] <= '9' {
			return "integer literal does not fit in 64 bits"
		}
		return fmt.Sprintf("unrecognized character %q", text)
	case lexer.KindString:
		if len(text) < 2 || text[len(text)-1] != '"' {
			return "string literal is not terminated"
		}
		return "string literals cannot be used in arithmetic expressions"
	case lexer.KindIdent:
		if kw := nearKeyword(tok.Data.Text); kw != "" {
			return fmt.Sprintf("did you mean %q?", kw)
		}
	}
	return ""
}

// nearKeyword returns the keyword within one edit of word, if any.
func nearKeyword(word string) string {
	for _, kw := range keywords {
		d := levenshtein.DistanceForStrings([]rune(word), []rune(kw), levenshtein.DefaultOptions)
		if d == 1 {
			return kw
		}
	}
	return ""
}

// Renderer writes diagnostics in the familiar "file:line:col: error:" form.
type Renderer struct {
	errorColor *color.Color
	hintColor  *color.Color
	caretColor *color.Color
}

// NewRenderer returns a Renderer; colored controls ANSI escapes.
func NewRenderer(colored bool) *Renderer {
	r := &Renderer{
		errorColor: color.New(color.FgRed, color.Bold),
		hintColor:  color.New(color.FgCyan),
		caretColor: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{r.errorColor, r.hintColor, r.caretColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Render writes d for the source src named name.
func (r *Renderer) Render(w io.Writer, name, src string, d Diagnostic) error {
	ix := NewLineIndex(src)
	line, col := ix.Position(d.Span.Start)

	start := ix.LineStart(line)
	end := strings.IndexByte(src[start:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += start
	}
	text := strings.TrimRight(src[start:end], "\r")

	width := int(d.Span.Len())
	if maxWidth := len(text) - (col - 1); width > maxWidth {
		width = maxWidth
	}
	width = max(width, 1)

	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: %s %s\n", name, line, col, r.errorColor.Sprint("error:"), d.Message)
	fmt.Fprintf(&b, "  %s\n", text)
	fmt.Fprintf(&b, "  %s%s\n", strings.Repeat(" ", col-1), r.caretColor.Sprint(strings.Repeat("^", width)))
	if d.Hint != "" {
		fmt.Fprintf(&b, "  %s %s\n", r.hintColor.Sprint("hint:"), d.Hint)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderError renders err if it is a syntax error, or writes it verbatim.
func (r *Renderer) RenderError(w io.Writer, name, src string, err error) error {
	if d, ok := FromError(src, err); ok {
		return r.Render(w, name, src, d)
	}
	_, werr := fmt.Fprintf(w, "%s: %s %v\n", name, r.errorColor.Sprint("error:"), err)
	return werr
}
