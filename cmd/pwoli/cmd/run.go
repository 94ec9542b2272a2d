package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	pwerror "github.com/msto63/pwoli/pkg/core/error"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a pwoli program",
	Long:  `Parses and runs a program. Use "-" to read the program from stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(cmd, args[0])
		if err != nil {
			return err
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		if _, err := engine.Run(cmd.Context(), source); err != nil {
			return report(cmd.ErrOrStderr(), args[0], source, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := pwerror.CodeInvalidInput
		if errors.Is(err, fs.ErrNotExist) {
			code = pwerror.CodeNotFound
		}
		return "", pwerror.Wrap(err, "cannot read program").
			WithCode(code).
			WithOperation("cli.readFile").
			WithDetail("path", path)
	}
	return string(data), nil
}
