package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"uriql/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "uriql",
	Short:         "OData URI expression lexer and overload resolver",
	Long:          `uriql tokenizes OData query expressions and resolves operator and function overloads against a schema manifest`,
	SilenceUsage:  true,
	SilenceErrors: false,

	PersistentPreRunE:  setupApp,
	PersistentPostRunE: teardownApp,
}

func init() {
	rootCmd.Version = version.Current().Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(functionsCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("config", "", "path to uriql.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().Bool("no-config", false, "ignore any uriql.toml")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-file", "", "also write JSON logs to this file")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics per expression")
}

// main executes the root command; any error exits with status 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
