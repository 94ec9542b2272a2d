package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/msto63/pwoli/pkg/core/version"
	"github.com/msto63/pwoli/pkg/lang"
	pwparser "github.com/msto63/pwoli/pkg/lang/parser"
)

const (
	promptMain  = "pwoli> "
	promptCont  = "  ...> "
	historyFile = ".pwoli_history"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Reads statements interactively and runs them against one shared set of
variables. Input continues on the next line while a statement or block is
unfinished.

Commands:
  :vars    list variables
  :reset   forget all variables
  :quit    leave the session`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		return runRepl(cmd, engine)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, engine *lang.Engine) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s - type :quit to exit\n", version.Short())

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		source, ok := readStatement(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		trimmed := strings.TrimSpace(source)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))

		if strings.HasPrefix(trimmed, ":") {
			if quit := replCommand(out, engine, trimmed); quit {
				return nil
			}
			continue
		}

		if _, err := engine.Run(cmd.Context(), source); err != nil {
			_ = report(cmd.ErrOrStderr(), "", source, err)
		}
	}
}

// replCommand handles a ":" command and reports whether to leave
func replCommand(out io.Writer, engine *lang.Engine, command string) bool {
	switch strings.ToLower(command) {
	case ":quit", ":q", ":exit":
		return true
	case ":vars":
		vars := engine.Executor().Variables()
		if len(vars) == 0 {
			fmt.Fprintln(out, "no variables")
		}
		for _, v := range vars {
			fmt.Fprintf(out, "%s = %d\n", v.Name, v.Value)
		}
	case ":reset":
		engine.Reset()
		fmt.Fprintln(out, "variables cleared")
	default:
		fmt.Fprintf(out, "unknown command %s (try :vars, :reset or :quit)\n", command)
	}
	return false
}

// readStatement collects lines until they form complete input
func readStatement(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl-C drops the pending input
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !isIncomplete(b.String()) {
			return b.String(), true
		}
	}
}

// isIncomplete reports whether source only fails to parse because input
// ended early
func isIncomplete(source string) bool {
	if strings.HasPrefix(strings.TrimSpace(source), ":") {
		return false
	}
	_, err := pwparser.ParseString(source)
	var parseErr *pwparser.ParseError
	return errors.As(err, &parseErr) && parseErr.Found == pwparser.KindEOF
}
