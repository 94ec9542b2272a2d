// File: engine.go
// Title: pwoli Engine
// Description: High-level API that wires the parser and executor together
//              with shared logging and configuration. Front-end failures are
//              returned as structured errors that keep the underlying
//              *LexError or *ParseError reachable via errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine implementation
// - 2026-10-15 v0.2.0: Parse and run pwoli programs

package lang

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	pwconfig "github.com/msto63/pwoli/pkg/core/config"
	pwerror "github.com/msto63/pwoli/pkg/core/error"
	pwlog "github.com/msto63/pwoli/pkg/core/log"
	pwast "github.com/msto63/pwoli/pkg/lang/ast"
	pwexecutor "github.com/msto63/pwoli/pkg/lang/executor"
	pwparser "github.com/msto63/pwoli/pkg/lang/parser"
)

// Engine coordinates parsing and execution of pwoli programs
type Engine struct {
	parser   *pwparser.Parser
	executor *pwexecutor.Executor
	logger   *pwlog.Logger
	options  Options
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *pwlog.Logger

	// Config supplies parser and executor limits (optional, defaults to
	// pwconfig.Default())
	Config *pwconfig.Config

	// Output receives program output (optional, defaults to stdout)
	Output io.Writer
}

// Result describes one completed run
type Result struct {
	RunID         string
	Unit          *pwast.SourceUnit
	ExecutionTime time.Duration
}

// New creates a new engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = pwlog.GetDefault()
	}
	if opts.Config == nil {
		opts.Config = pwconfig.Default()
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger.WithField("component", "pwoli-engine")

	p, err := pwparser.New(pwparser.Options{
		Logger:          opts.Logger,
		MaxSourceLength: opts.Config.Parser.MaxSourceLength,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize parser: %w", err)
	}

	exec := pwexecutor.New(pwexecutor.Options{
		Logger:            opts.Logger,
		Output:            opts.Output,
		MaxLoopIterations: opts.Config.Executor.MaxLoopIterations,
	})

	logger.Debug("Engine initialized", pwlog.Fields{
		"maxSourceLength":   opts.Config.Parser.MaxSourceLength,
		"maxLoopIterations": opts.Config.Executor.MaxLoopIterations,
		"timeout":           opts.Config.Executor.Timeout.String(),
	})

	return &Engine{
		parser:   p,
		executor: exec,
		logger:   logger,
		options:  opts,
	}, nil
}

// NewFromConfig creates an engine whose logger is built from the general
// section of cfg
func NewFromConfig(cfg *pwconfig.Config, output io.Writer, logOutput io.Writer) (*Engine, error) {
	if cfg == nil {
		cfg = pwconfig.Default()
	}
	level, err := pwlog.ParseLevel(cfg.General.LogLevel)
	if err != nil {
		return nil, pwerror.Wrap(err, "invalid log level").
			WithCode(pwerror.CodeConfigError).
			WithOperation("lang.NewFromConfig")
	}
	format, err := pwlog.ParseFormat(cfg.General.LogFormat)
	if err != nil {
		return nil, pwerror.Wrap(err, "invalid log format").
			WithCode(pwerror.CodeConfigError).
			WithOperation("lang.NewFromConfig")
	}

	logger := pwlog.NewWithConfig(pwlog.Config{
		Level:  level,
		Format: format,
		Output: logOutput,
		Name:   "pwoli",
	})
	return New(Options{Logger: logger, Config: cfg, Output: output})
}

// Parse parses source. Lexical and grammatical failures are returned as
// *pwerror.Error with code LEXICAL or SYNTAX and span details.
func (e *Engine) Parse(source string) (*pwast.SourceUnit, error) {
	unit, err := e.parser.Parse(source)
	if err != nil {
		return nil, classify(err)
	}
	return unit, nil
}

// Run parses and executes source. Variables from earlier runs stay visible
// until Reset.
func (e *Engine) Run(ctx context.Context, source string) (*Result, error) {
	runID := uuid.NewString()
	logger := e.logger.WithField("run_id", runID)

	timer := logger.StartTimer("run").WithLevel(pwlog.LevelDebug)
	defer timer.Stop()

	unit, err := e.Parse(source)
	if err != nil {
		logger.Debug("Parse failed", pwlog.Fields{"error_code": pwerror.GetCode(err).String()})
		return nil, err
	}

	if timeout := e.options.Config.Executor.Timeout.Duration; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	if err := e.executor.Execute(ctx, unit); err != nil {
		if pwerror.HasCode(err, pwerror.CodeInternal) {
			logger.LogError(err)
		} else {
			logger.Debug("Run failed", pwlog.Fields{"error_code": pwerror.GetCode(err).String()})
		}
		return nil, err
	}

	return &Result{
		RunID:         runID,
		Unit:          unit,
		ExecutionTime: time.Since(start),
	}, nil
}

// Executor returns the engine's executor
func (e *Engine) Executor() *pwexecutor.Executor {
	return e.executor
}

// Reset forgets all variables
func (e *Engine) Reset() {
	e.executor.Reset()
}

func classify(err error) error {
	var lexErr *pwparser.LexError
	if errors.As(err, &lexErr) {
		span := lexErr.Span()
		return pwerror.Wrap(err, "lexical error").
			WithCode(pwerror.CodeLexical).
			WithOperation("lang.Parse").
			WithSpan(span.Start, span.End)
	}

	var parseErr *pwparser.ParseError
	if errors.As(err, &parseErr) {
		return pwerror.Wrap(err, "syntax error").
			WithCode(pwerror.CodeSyntax).
			WithOperation("lang.Parse").
			WithDetail("found", parseErr.Found.String()).
			WithSpan(parseErr.Span.Start, parseErr.Span.End)
	}

	return err
}
