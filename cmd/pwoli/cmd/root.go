package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/pwoli/internal/diagnostic"
	pwconfig "github.com/msto63/pwoli/pkg/core/config"
	"github.com/msto63/pwoli/pkg/lang"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "pwoli",
	Short: "pwoli - a tiny keyword-driven language",
	Long: `pwoli parses and runs programs written with a fixed Malayalam-slang
vocabulary:

  pwoli_sadhanam x;                     declare x
  x = 10 - 3;                           assign
  seriyano_mwone x um 0 um same_alle    if x is not 0
  seri_allel                            else
  repeat_adi x um 0 um same_alle        while x is not 0
  dhe_pidicho x;                        print x`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !isReported(err) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $PWOLI_CONFIG or ./pwoli.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

func loadConfig() (*pwconfig.Config, error) {
	var (
		cfg *pwconfig.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = pwconfig.Load(cfgFile)
	} else {
		cfg, err = pwconfig.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	return cfg, nil
}

func newEngine(cmd *cobra.Command) (*lang.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return lang.NewFromConfig(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// reportedError marks an error whose diagnostic was already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func isReported(err error) bool {
	_, ok := err.(*reportedError)
	return ok
}

// report prints a source diagnostic for err and marks it as reported
func report(w io.Writer, filename, source string, err error) error {
	fmt.Fprint(w, diagnostic.Render(source, err, diagnostic.Options{
		Filename: filename,
		NoColor:  noColor,
	}))
	return &reportedError{err: err}
}

// readSource reads a program from path, or from stdin when path is "-"
func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), err
	}
	return readFile(path)
}
