// Package check parses many source files concurrently and collects the
// results. Each file gets its own scanner and parser; nothing is shared.
package check

import (
	"context"
	"os"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/agenthands/letlang/pkg/compiler/ast"
	"github.com/agenthands/letlang/pkg/compiler/parser"
)

// Logger is the subset of github.com/jcgregorio/logger the checker uses.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// Result is the outcome for a single file.
type Result struct {
	Path   string
	Source string
	Expr   *ast.Expr
	Err    error
}

// FileError ties a failure to the file it came from.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *FileError) Unwrap() error { return e.Err }

// Checker parses files with bounded concurrency.
type Checker struct {
	// Workers bounds the number of files parsed at once; <= 0 is unbounded.
	Workers int

	// Logger receives per-file progress. May be nil.
	Logger Logger

	// ReadFile loads a path; defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)
}

// Run parses every path and returns one Result per path in input order. The
// error aggregates every failed file as a *multierror.Error of *FileError,
// or is ctx.Err() if the context ended before all files were scheduled.
func (c *Checker) Run(ctx context.Context, paths []string) ([]Result, error) {
	readFile := c.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	results := make([]Result, len(paths))
	var g errgroup.Group
	if c.Workers > 0 {
		g.SetLimit(c.Workers)
	}

	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Path: path, Err: err}
				return nil
			}
			results[i] = c.checkFile(path, readFile)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}

	var merr *multierror.Error
	for _, r := range results {
		if r.Err != nil {
			merr = multierror.Append(merr, &FileError{Path: r.Path, Err: r.Err})
		}
	}
	c.infof("checked %d files, %d failed", len(paths), countErrors(merr))
	return results, merr.ErrorOrNil()
}

func (c *Checker) checkFile(path string, readFile func(string) ([]byte, error)) Result {
	b, err := readFile(path)
	if err != nil {
		return Result{Path: path, Err: errors.Wrapf(err, "reading %s", path)}
	}

	src := string(b)
	expr, err := parser.Parse(src)
	c.debugf("parsed %s (%d bytes): err=%v", path, len(b), err)
	return Result{Path: path, Source: src, Expr: expr, Err: err}
}

func (c *Checker) debugf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Debugf(format, args...)
	}
}

func (c *Checker) infof(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Infof(format, args...)
	}
}

func countErrors(merr *multierror.Error) int {
	if merr == nil {
		return 0
	}
	return len(merr.Errors)
}
