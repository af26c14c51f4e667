// Command letc tokenizes, parses, formats and checks letlang source.
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/agenthands/letlang/pkg/config"
	"github.com/agenthands/letlang/pkg/diagnostic"
)

// flag names
const (
	configFlagName   = "config"
	logLevelFlagName = "log-level"
	noColorFlagName  = "no-color"
	exprFlagName     = "expr"
	formatFlagName   = "format"
)

// env is the state shared by all commands once flags and config are read.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg      config.Config
	log      *levelLogger
	renderer *diagnostic.Renderer
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr}

	return &cli.App{
		Name:      "letc",
		Usage:     "letc works with letlang expressions.",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configFlagName,
				Value: config.DefaultPath,
				Usage: "JSON5 config file",
			},
			&cli.StringFlag{
				Name:  logLevelFlagName,
				Usage: "minimum log level: debug, info, warning or error (overrides config)",
			},
			&cli.BoolFlag{
				Name:  noColorFlagName,
				Usage: "disable colored diagnostics",
			},
		},
		Before: e.setup,
		Commands: []*cli.Command{
			e.tokensCommand(),
			e.parseCommand(),
			e.fmtCommand(),
			e.checkCommand(),
			e.replCommand(),
		},
	}
}

func (e *env) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String(configFlagName))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	if lvl := c.String(logLevelFlagName); lvl != "" {
		cfg.LogLevel = lvl
		if err := cfg.Validate(); err != nil {
			return cli.Exit(err.Error(), 2)
		}
	}
	e.cfg = cfg
	e.log = newLevelLogger(e.stderr, cfg.LogLevel)
	e.renderer = diagnostic.NewRenderer(cfg.Color && !color.NoColor && !c.Bool(noColorFlagName))
	e.log.Debugf("config: %+v", cfg)
	return nil
}

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	app.RunAndExitOnError()
}
