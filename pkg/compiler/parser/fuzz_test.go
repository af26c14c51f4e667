package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agenthands/letlang/pkg/compiler/ast"
	"github.com/agenthands/letlang/pkg/compiler/lexer"
	"github.com/agenthands/letlang/pkg/compiler/parser"
)

var fuzzSeeds = []string{
	"",
	"1 + 2 * 3",
	"let x = 10 in x / (2 - -x)",
	`x = "10"`,
	"let let",
	"((1)",
	"18446744073709551616",
	"é + 1",
	"-let a = 1 in a - 1",
}

func FuzzTokenize(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		var prevEnd uint
		for _, tok := range lexer.Tokenize(src) {
			start, end := uint(tok.Span.Start), uint(tok.Span.End)
			if start < prevEnd || end <= start || end > uint(len(src)) {
				t.Fatalf("bad span %s after %d in %q", tok.Span, prevEnd, src)
			}
			prevEnd = end
		}
	})
}

func FuzzParse(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		e, err := parser.Parse(src)
		if err != nil {
			return
		}

		ast.Walk(e, func(n *ast.Expr) bool {
			if uint(n.Span.End) > uint(len(src)) {
				t.Fatalf("span %s outside %q", n.Span, src)
			}
			return true
		})

		printed := ast.Render(e)
		again, err := parser.Parse(printed)
		if err != nil {
			t.Fatalf("Render(%q) = %q does not parse: %v", src, printed, err)
		}
		if diff := cmp.Diff(e, again, ignoreSpans); diff != "" {
			t.Fatalf("Render(%q) = %q changed the tree (-want +got):\n%s", src, printed, diff)
		}
	})
}
