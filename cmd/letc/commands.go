package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/agenthands/letlang/pkg/check"
	"github.com/agenthands/letlang/pkg/compiler/ast"
	"github.com/agenthands/letlang/pkg/compiler/lexer"
	"github.com/agenthands/letlang/pkg/compiler/parser"
	"github.com/agenthands/letlang/pkg/config"
)

var exprFlag = &cli.StringFlag{
	Name:    exprFlagName,
	Aliases: []string{"e"},
	Usage:   "source text to use instead of a file",
}

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// source returns the name and text selected by -e, a file argument, or "-"
// for stdin.
func (e *env) source(c *cli.Context) (string, string, error) {
	if c.IsSet(exprFlagName) {
		return "<expr>", c.String(exprFlagName), nil
	}
	if c.NArg() != 1 {
		return "", "", cli.Exit("expected exactly one FILE argument or -e SOURCE", 2)
	}

	path := c.Args().First()
	if path == "-" {
		b, err := io.ReadAll(e.stdin)
		if err != nil {
			return "", "", errors.Wrap(err, "reading stdin")
		}
		return "<stdin>", string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", errors.Wrapf(err, "reading %s", path)
	}
	return path, string(b), nil
}

// parseSource parses src and renders a diagnostic on failure.
func (e *env) parseSource(name, src string) (*ast.Expr, error) {
	expr, err := parser.Parse(src)
	if err != nil {
		if rerr := e.renderer.RenderError(e.stderr, name, src, err); rerr != nil {
			return nil, errors.Wrap(rerr, "writing diagnostic")
		}
		return nil, cli.Exit("", 1)
	}
	return expr, nil
}

func (e *env) tokensCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "print the token stream as a table",
		ArgsUsage: "FILE",
		Flags:     []cli.Flag{exprFlag},
		Action: func(c *cli.Context) error {
			_, src, err := e.source(c)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(e.stdout)
			table.SetHeader([]string{"Span", "Kind", "Value"})
			table.SetAutoFormatHeaders(false)
			table.SetBorder(false)
			for tok := range lexer.NewScanner(src).All() {
				table.Append([]string{tok.Span.String(), tok.Data.Kind.String(), tokenValue(tok.Data)})
			}
			table.Render()
			return nil
		},
	}
}

func tokenValue(t lexer.Token) string {
	switch t.Kind {
	case lexer.KindIdent, lexer.KindString:
		return strconv.Quote(t.Text)
	case lexer.KindInt:
		return strconv.FormatUint(t.Value, 10)
	default:
		return ""
	}
}

func (e *env) parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse a source and print its syntax tree",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			exprFlag,
			&cli.StringFlag{
				Name:  formatFlagName,
				Usage: "output format: sexpr, json, yaml or spew (overrides config)",
			},
		},
		Action: func(c *cli.Context) error {
			format := e.cfg.Format
			if c.IsSet(formatFlagName) {
				format = c.String(formatFlagName)
			}

			name, src, err := e.source(c)
			if err != nil {
				return err
			}
			expr, err := e.parseSource(name, src)
			if err != nil {
				return err
			}
			return writeTree(e.stdout, expr, format)
		},
	}
}

func writeTree(w io.Writer, expr *ast.Expr, format string) error {
	var out []byte
	switch format {
	case config.FormatSExpr:
		out = []byte(ast.SExpr(expr) + "\n")
	case config.FormatJSON:
		b, err := json.MarshalIndent(ast.Outline(expr), "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
		out = append(b, '\n')
	case config.FormatYAML:
		b, err := yaml.Marshal(ast.Outline(expr))
		if err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		out = b
	case config.FormatSpew:
		out = []byte(spewConfig.Sdump(expr))
	default:
		return cli.Exit(fmt.Sprintf("unknown format %q", format), 2)
	}
	_, err := w.Write(out)
	return err
}

func (e *env) fmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "print a source in canonical form",
		ArgsUsage: "FILE",
		Flags:     []cli.Flag{exprFlag},
		Action: func(c *cli.Context) error {
			name, src, err := e.source(c)
			if err != nil {
				return err
			}
			expr, err := e.parseSource(name, src)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(e.stdout, ast.Render(expr))
			return err
		},
	}
}

func (e *env) checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "parse many files concurrently and report every syntax error",
		ArgsUsage: "FILE...",
		Action: func(c *cli.Context) error {
			paths := c.Args().Slice()
			if len(paths) == 0 {
				return cli.Exit("expected at least one FILE", 2)
			}

			checker := &check.Checker{Workers: e.cfg.Workers, Logger: e.log}
			results, err := checker.Run(c.Context, paths)
			if err == nil {
				fmt.Fprintf(e.stdout, "%d files ok\n", len(paths))
				return nil
			}

			failed := 0
			for _, r := range results {
				if r.Err == nil {
					continue
				}
				failed++
				if rerr := e.renderer.RenderError(e.stderr, r.Path, r.Source, r.Err); rerr != nil {
					return errors.Wrap(rerr, "writing diagnostic")
				}
			}
			if failed == 0 {
				// The run itself was cut short.
				return err
			}
			e.log.Warningf("%d of %d files failed", failed, len(paths))
			return cli.Exit(fmt.Sprintf("%d of %d files failed", failed, len(paths)), 1)
		},
	}
}
