package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"uriql/internal/diagfmt"
	"uriql/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] EXPR... | -",
	Short: "Tokenize OData expressions",
	Long:  `Tokenize breaks query expressions into tokens; "-" reads one expression per line from stdin`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Bool("semicolon", false, "treat ';' as a delimiter (expand options)")
	tokenizeCmd.Flags().Bool("params", false, "lex @name as a parameter alias")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel tokenization workers (0 = GOMAXPROCS)")
	tokenizeCmd.Flags().Int("width", 0, "truncate pretty output to this many columns")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	width, _ := cmd.Flags().GetInt("width")
	if semi, _ := cmd.Flags().GetBool("semicolon"); semi {
		current.session.Lexer.SemicolonDelimited = true
	}
	if params, _ := cmd.Flags().GetBool("params"); params {
		current.session.Lexer.FunctionParameters = true
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	exprs, err := expressions(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	results, err := current.session.TokenizeAll(cmd.Context(), exprs, current.maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		failed++
		// Диагностика всегда в stderr, формат следует за --format
		r.Bag.Sort()
		if err := writeDiagnostics(cmd, format, r); err != nil {
			return err
		}
	}

	if err := writeTokens(cmd, format, width, results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed to tokenize", failed, len(results))
	}
	return nil
}

func writeDiagnostics(cmd *cobra.Command, format string, r driver.TokenizeResult) error {
	errOut := cmd.ErrOrStderr()
	if format == "pretty" {
		opts := diagfmt.PrettyOpts{Color: current.color && isTerminal(os.Stderr), ShowNotes: true}
		return diagfmt.Pretty(errOut, r.Bag, r.Expression, opts)
	}
	return diagfmt.JSON(errOut, r.Bag, diagfmt.JSONOpts{Max: current.maxDiagnostics, IncludeNotes: true})
}

func writeTokens(cmd *cobra.Command, format string, width int, results []driver.TokenizeResult) error {
	out := cmd.OutOrStdout()
	if format == "pretty" {
		for i, r := range results {
			if len(results) > 1 {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "# %s\n", r.Expression)
			}
			if err := diagfmt.FormatTokensPretty(out, r.Tokens, diagfmt.PrettyOpts{Color: current.color, Width: width}); err != nil {
				return err
			}
		}
		return nil
	}

	exprs := make([]diagfmt.ExpressionOutput, len(results))
	for i, r := range results {
		exprs[i] = diagfmt.ExpressionOutput{Expression: r.Expression, Tokens: diagfmt.BuildTokenOutput(r.Tokens)}
		if r.Err != nil {
			exprs[i].Error = r.Err.Error()
		}
	}
	if format == "json" {
		return diagfmt.FormatTokensJSON(out, exprs)
	}
	return diagfmt.FormatTokensMsgpack(out, exprs)
}

// expressions expands "-" into the non-empty lines of stdin.
func expressions(in io.Reader, args []string) ([]string, error) {
	if len(args) != 1 || args[0] != "-" {
		return args, nil
	}
	var exprs []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			exprs = append(exprs, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return exprs, nil
}
