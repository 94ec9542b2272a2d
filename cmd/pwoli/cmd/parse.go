package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	pwast "github.com/msto63/pwoli/pkg/lang/ast"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the syntax tree of a pwoli program",
	Long: `Parses a program without running it and prints the tree with the byte
span of every node. Use "-" to read the program from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(cmd, args[0])
		if err != nil {
			return err
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		unit, err := engine.Parse(source)
		if err != nil {
			return report(cmd.ErrOrStderr(), args[0], source, err)
		}
		return writeTree(cmd.OutOrStdout(), unit, parseFormat)
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(parseCmd)
}

func writeTree(w io.Writer, unit *pwast.SourceUnit, format string) error {
	switch format {
	case "text":
		_, err := io.WriteString(w, pwast.Dump(unit))
		return err
	case "json":
		data, err := json.MarshalIndent(pwast.ToMap(unit), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(pwast.ToMap(unit)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
