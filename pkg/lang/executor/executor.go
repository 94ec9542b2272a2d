// File: executor.go
// Title: pwoli Program Executor
// Description: Tree-walking interpreter for parsed pwoli programs. Holds a
//              single flat variable environment, evaluates integer
//              expressions and writes output lines. Runtime failures are
//              reported as structured errors carrying the offending span.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-15 v0.2.0: Statement interpreter for pwoli programs

package executor

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"sync"

	pwerror "github.com/msto63/pwoli/pkg/core/error"
	pwlog "github.com/msto63/pwoli/pkg/core/log"
	pwast "github.com/msto63/pwoli/pkg/lang/ast"
)

// DefaultMaxLoopIterations bounds a single loop when no limit is configured
const DefaultMaxLoopIterations int64 = 1_000_000

// Executor runs pwoli programs. Variables persist across Execute calls until
// Reset is called, which lets a REPL build a program up statement by
// statement.
type Executor struct {
	logger  *pwlog.Logger
	out     io.Writer
	options Options

	mu   sync.Mutex
	vars map[string]int64
}

// Options configures executor behavior
type Options struct {
	Logger *pwlog.Logger
	Output io.Writer // defaults to os.Stdout

	// MaxLoopIterations limits the passes of one loop execution. Zero selects
	// DefaultMaxLoopIterations, a negative value disables the limit.
	MaxLoopIterations int64
}

// Variable is a named value in the environment
type Variable struct {
	Name  string
	Value int64
}

// New creates a new executor
func New(opts Options) *Executor {
	if opts.Logger == nil {
		opts.Logger = pwlog.GetDefault()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.MaxLoopIterations == 0 {
		opts.MaxLoopIterations = DefaultMaxLoopIterations
	}

	return &Executor{
		logger:  opts.Logger.WithField("component", "pwoli-executor"),
		out:     opts.Output,
		options: opts,
		vars:    make(map[string]int64),
	}
}

// Execute runs every statement of unit in order and stops at the first
// runtime error
func (e *Executor) Execute(ctx context.Context, unit *pwast.SourceUnit) error {
	if unit == nil {
		return pwerror.New("nothing to execute").
			WithCode(pwerror.CodeInvalidInput).
			WithOperation("executor.Execute")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	timer := e.logger.StartTimer("execute").WithLevel(pwlog.LevelDebug)
	if err := e.execUnit(ctx, unit); err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()
	return nil
}

// Variables returns a snapshot of the environment sorted by name
func (e *Executor) Variables() []Variable {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Variable, 0, len(e.vars))
	for name, value := range e.vars {
		out = append(out, Variable{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the value of a declared variable
func (e *Executor) Lookup(name string) (int64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.vars[name]
	return v, ok
}

// Reset forgets all variables
func (e *Executor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vars = make(map[string]int64)
}

func (e *Executor) execUnit(ctx context.Context, unit *pwast.SourceUnit) error {
	for _, stmt := range unit.Statements() {
		if err := e.execStatement(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) execStatement(ctx context.Context, stmt pwast.Statement) error {
	if err := ctx.Err(); err != nil {
		return cancelled(err, stmt.Pos())
	}

	switch s := stmt.(type) {
	case *pwast.Declaration:
		e.vars[s.Symbol.Name] = 0
		return nil

	case *pwast.Assignment:
		if _, ok := e.vars[s.Symbol.Name]; !ok {
			return undeclared(s.Symbol)
		}
		value, err := e.eval(s.Value)
		if err != nil {
			return err
		}
		e.vars[s.Symbol.Name] = value
		return nil

	case *pwast.Conditional:
		holds, err := e.test(s.Condition)
		if err != nil {
			return err
		}
		if holds {
			return e.execUnit(ctx, s.Then)
		}
		if s.Else != nil {
			return e.execUnit(ctx, s.Else)
		}
		return nil

	case *pwast.Loop:
		return e.execLoop(ctx, s)

	case *pwast.Write:
		value, err := e.eval(s.Value)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(e.out, strconv.FormatInt(value, 10)+"\n"); err != nil {
			return pwerror.Wrap(err, "write output failed").
				WithCode(pwerror.CodeInternal).
				WithOperation("executor.Write").
				WithSpan(s.Span.Start, s.Span.End)
		}
		return nil

	default:
		return pwerror.New(fmt.Sprintf("unsupported statement %T", stmt)).
			WithCode(pwerror.CodeInternal).
			WithOperation("executor.Execute")
	}
}

func (e *Executor) execLoop(ctx context.Context, loop *pwast.Loop) error {
	limit := e.options.MaxLoopIterations
	var passes int64
	for {
		holds, err := e.test(loop.Condition)
		if err != nil {
			return err
		}
		if !holds {
			e.logger.Trace("Loop finished", pwlog.Fields{"passes": passes, "span": loop.Span.String()})
			return nil
		}
		if limit > 0 && passes >= limit {
			return pwerror.New(fmt.Sprintf("loop exceeded %d iterations", limit)).
				WithCode(pwerror.CodeLoopLimit).
				WithOperation("executor.Loop").
				WithDetail("limit", limit).
				WithSpan(loop.Span.Start, loop.Span.End)
		}
		if err := ctx.Err(); err != nil {
			return cancelled(err, loop.Span)
		}
		if err := e.execUnit(ctx, loop.Body); err != nil {
			return err
		}
		passes++
	}
}

// test evaluates a loop or conditional guard
func (e *Executor) test(cond pwast.Expression) (bool, error) {
	ne, ok := cond.(*pwast.NotEquals)
	if !ok {
		value, err := e.eval(cond)
		return value != 0, err
	}
	left, err := e.eval(ne.Left)
	if err != nil {
		return false, err
	}
	right, err := e.eval(ne.Right)
	if err != nil {
		return false, err
	}
	return left != right, nil
}

// eval computes an expression. Arithmetic wraps around on int64 overflow.
func (e *Executor) eval(expr pwast.Expression) (int64, error) {
	switch x := expr.(type) {
	case *pwast.Integer:
		return x.Value, nil
	case *pwast.Symbol:
		value, ok := e.vars[x.Name]
		if !ok {
			return 0, undeclared(x)
		}
		return value, nil
	case *pwast.UnaryMinus:
		v, err := e.eval(x.Operand)
		return -v, err
	case *pwast.Subtract:
		left, err := e.eval(x.Left)
		if err != nil {
			return 0, err
		}
		right, err := e.eval(x.Right)
		if err != nil {
			return 0, err
		}
		return left - right, nil
	case *pwast.NotEquals:
		holds, err := e.test(x)
		if holds {
			return 1, err
		}
		return 0, err
	default:
		return 0, pwerror.New(fmt.Sprintf("unsupported expression %T", expr)).
			WithCode(pwerror.CodeInternal).
			WithOperation("executor.eval")
	}
}

func undeclared(sym *pwast.Symbol) *pwerror.Error {
	// Symbols are zero width; report the name itself.
	return pwerror.New(fmt.Sprintf("variable %q is not declared", sym.Name)).
		WithCode(pwerror.CodeUndeclaredVariable).
		WithOperation("executor.Execute").
		WithDetail("variable", sym.Name).
		WithSpan(sym.Span.Start, sym.Span.Start+len(sym.Name))
}

func cancelled(err error, span pwast.Span) *pwerror.Error {
	return pwerror.Wrap(err, "execution cancelled").
		WithCode(pwerror.CodeCancelled).
		WithOperation("executor.Execute").
		WithSpan(span.Start, span.End)
}
