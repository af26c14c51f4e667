package parser_test

import (
	"strings"
	"testing"

	"github.com/agenthands/letlang/pkg/compiler/lexer"
	"github.com/agenthands/letlang/pkg/compiler/parser"
)

// benchSource nests 200 lets, each with a mixed arithmetic body:
//
//	let v = 1 * (2 + v) / 3 - -v in ... in v
func benchSource() string {
	var b strings.Builder
	for range 200 {
		b.WriteString("let v = 1 * (2 + v) / 3 - -v in\n")
	}
	b.WriteString("v")
	return b.String()
}

func BenchmarkTokenize(b *testing.B) {
	src := benchSource()
	s := lexer.NewScanner(src)
	b.SetBytes(int64(len(src)))
	for b.Loop() {
		s.Reset(src)
		for {
			if _, ok := s.Next(); !ok {
				break
			}
		}
	}
}

func BenchmarkParse(b *testing.B) {
	src := benchSource()
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for b.Loop() {
		if _, err := parser.Parse(src); err != nil {
			b.Fatal(err)
		}
	}
}
