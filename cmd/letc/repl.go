package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/agenthands/letlang/pkg/compiler/ast"
	"github.com/agenthands/letlang/pkg/compiler/parser"
)

const replPrompt = "let> "

// prompter is the part of *liner.State the REPL needs.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func (e *env) replCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "read expressions interactively and print their trees",
		Flags: []cli.Flag{
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

			line := liner.NewLiner()
			defer line.Close()
			line.SetCtrlCAborts(true)
			return e.runREPL(line, format)
		},
	}
}

// runREPL parses one expression per line until end of input. Syntax errors
// are reported and the loop continues.
func (e *env) runREPL(p prompter, format string) error {
	for {
		input, err := p.Prompt(replPrompt)
		if err == io.EOF || err == liner.ErrPromptAborted {
			fmt.Fprintln(e.stdout)
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		p.AppendHistory(input)

		expr, err := parser.Parse(input)
		if err != nil {
			if rerr := e.renderer.RenderError(e.stderr, "<repl>", input, err); rerr != nil {
				return errors.Wrap(rerr, "writing diagnostic")
			}
			continue
		}
		if err := writeTree(e.stdout, expr, format); err != nil {
			return err
		}
		e.log.Debugf("canonical form: %s", ast.Render(expr))
	}
}
