// File: executor_test.go
// Title: Executor Unit Tests
// Description: Tests for statement execution, output, runtime errors, loop
//              limits and cancellation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial comprehensive executor test suite
// - 2026-10-15 v0.2.0: pwoli interpreter

package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pwerror "github.com/msto63/pwoli/pkg/core/error"
	pwlog "github.com/msto63/pwoli/pkg/core/log"
	pwast "github.com/msto63/pwoli/pkg/lang/ast"
	pwparser "github.com/msto63/pwoli/pkg/lang/parser"
)

func newTestExecutor(limit int64) (*Executor, *bytes.Buffer) {
	var out bytes.Buffer
	return New(Options{Logger: pwlog.Discard(), Output: &out, MaxLoopIterations: limit}), &out
}

func run(t *testing.T, exec *Executor, source string) error {
	t.Helper()
	unit, err := pwparser.ParseString(source)
	require.NoError(t, err)
	return exec.Execute(context.Background(), unit)
}

func TestExecute_Programs(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:     "Countdown",
			source:   "pwoli_sadhanam n; n = 3; repeat_adi n um 0 um same_alle { dhe_pidicho n; n = n - 1; }",
			expected: "3\n2\n1\n",
		},
		{
			name:     "Declaration starts at zero",
			source:   "pwoli_sadhanam z; dhe_pidicho z;",
			expected: "0\n",
		},
		{
			name:     "Redeclaration resets",
			source:   "pwoli_sadhanam a; a = 5; pwoli_sadhanam a; dhe_pidicho a;",
			expected: "0\n",
		},
		{
			name:     "Then branch",
			source:   "pwoli_sadhanam i; i = 1; seriyano_mwone i um 0 um same_alle { dhe_pidicho 10; } seri_allel { dhe_pidicho 20; }",
			expected: "10\n",
		},
		{
			name:     "Else branch",
			source:   "pwoli_sadhanam i; seriyano_mwone i um 0 um same_alle { dhe_pidicho 10; } seri_allel { dhe_pidicho 20; }",
			expected: "20\n",
		},
		{
			name:     "Missing else does nothing",
			source:   "seriyano_mwone 1 um 1 um same_alle { dhe_pidicho 1; } dhe_pidicho 2;",
			expected: "2\n",
		},
		{
			name:     "Arithmetic",
			source:   "dhe_pidicho 10 - 3 - 2; dhe_pidicho --4; dhe_pidicho 1 - -1; dhe_pidicho -0;",
			expected: "5\n4\n2\n0\n",
		},
		{
			name:     "Blocks share the environment",
			source:   "pwoli_sadhanam x; seriyano_mwone 0 um 1 um same_alle { pwoli_sadhanam y; y = 7; } x = y; dhe_pidicho x;",
			expected: "7\n",
		},
		{
			name:     "Loop that never runs",
			source:   "repeat_adi 0 um 0 um same_alle { dhe_pidicho 1; } dhe_pidicho 9;",
			expected: "9\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, out := newTestExecutor(0)
			require.NoError(t, run(t, exec, tt.source))
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestExecute_UndeclaredVariable(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		wantStart int
		wantEnd   int
	}{
		{name: "Assignment target", source: "count = 1;", wantStart: 0, wantEnd: 5},
		{name: "Read in expression", source: "pwoli_sadhanam a; a = b - 1;", wantStart: 22, wantEnd: 23},
		{name: "Read in condition", source: "repeat_adi k um 0 um same_alle { }", wantStart: 11, wantEnd: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, _ := newTestExecutor(0)
			err := run(t, exec, tt.source)
			require.Error(t, err)
			assert.True(t, pwerror.HasCode(err, pwerror.CodeUndeclaredVariable))

			var pwErr *pwerror.Error
			require.True(t, errors.As(err, &pwErr))
			start, end, ok := pwErr.Span()
			require.True(t, ok)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

const nonTerminating = "\n" +
	"        pwoli_sadhanam i;\n" +
	"        i=0;\n" +
	"        seriyano_mwone i um 0 um same_alle {\n" +
	"            i = 10;\n" +
	"        } seri_allel {\n" +
	"            i = -1;\n" +
	"        }\n" +
	"        repeat_adi i um 0 um same_alle {\n" +
	"            i = i-1;\n" +
	"        }\n" +
	"        dhe_pidicho i;\n" +
	"    "

func TestExecute_LoopLimit(t *testing.T) {
	// i starts at -1 and moves away from zero, so the loop never ends
	exec, out := newTestExecutor(50)
	err := run(t, exec, nonTerminating)
	require.Error(t, err)
	assert.True(t, pwerror.HasCode(err, pwerror.CodeLoopLimit))
	assert.Empty(t, out.String())

	var pwErr *pwerror.Error
	require.True(t, errors.As(err, &pwErr))
	start, end, ok := pwErr.Span()
	require.True(t, ok)
	assert.Equal(t, 166, start)
	assert.Equal(t, 229, end)

	value, ok := exec.Lookup("i")
	require.True(t, ok)
	assert.Equal(t, int64(-51), value)
}

func TestExecute_Unlimited(t *testing.T) {
	exec, out := newTestExecutor(-1)
	require.NoError(t, run(t, exec, "pwoli_sadhanam n; n = 5000; repeat_adi n um 0 um same_alle { n = n - 1; } dhe_pidicho n;"))
	assert.Equal(t, "0\n", out.String())
}

func TestExecute_Cancelled(t *testing.T) {
	exec, _ := newTestExecutor(-1)
	unit, err := pwparser.ParseString("pwoli_sadhanam i; i = 1; repeat_adi i um 0 um same_alle { i = i - 1; i = i - -1; }")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = exec.Execute(ctx, unit)
	require.Error(t, err)
	assert.True(t, pwerror.HasCode(err, pwerror.CodeCancelled))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestExecute_NilUnit(t *testing.T) {
	exec, _ := newTestExecutor(0)
	err := exec.Execute(context.Background(), nil)
	assert.True(t, pwerror.HasCode(err, pwerror.CodeInvalidInput))
}

func TestExecute_HandBuiltTree(t *testing.T) {
	exec, out := newTestExecutor(0)
	unit := pwast.NewSourceUnit(pwast.Span{},
		&pwast.Write{Value: &pwast.NotEquals{
			Left:  &pwast.Integer{Value: 1},
			Right: &pwast.Integer{Value: 2},
		}},
	)
	require.NoError(t, exec.Execute(context.Background(), unit))
	assert.Equal(t, "1\n", out.String())
}

func TestVariables(t *testing.T) {
	exec, _ := newTestExecutor(0)
	require.NoError(t, run(t, exec, "pwoli_sadhanam b; pwoli_sadhanam a; b = 2; a = -3;"))
	assert.Equal(t, []Variable{{Name: "a", Value: -3}, {Name: "b", Value: 2}}, exec.Variables())

	// The environment persists across runs
	require.NoError(t, run(t, exec, "a = a - 1;"))
	value, _ := exec.Lookup("a")
	assert.Equal(t, int64(-4), value)

	exec.Reset()
	assert.Empty(t, exec.Variables())
}

func TestExecute_LogsFailure(t *testing.T) {
	var logs, out bytes.Buffer
	logger := pwlog.NewWithConfig(pwlog.Config{Level: pwlog.LevelDebug, Format: pwlog.FormatJSON, Output: &logs})
	exec := New(Options{Logger: logger, Output: &out})
	require.Error(t, run(t, exec, "dhe_pidicho y;"))

	var failed map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["message"] == "execute failed" {
			failed = entry
		}
	}
	require.NotNil(t, failed, "no failure entry in %q", logs.String())
	assert.Equal(t, "debug", failed["level"])
	assert.Equal(t, false, failed["success"])
	assert.Contains(t, failed["error"], "not declared")
}
