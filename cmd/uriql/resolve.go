package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"uriql/internal/diag"
	"uriql/internal/edm"
	"uriql/internal/funcsig"
	"uriql/internal/promote"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve operator and function overloads for operand types",
}

var resolveBinaryCmd = &cobra.Command{
	Use:   "binary OP LEFT RIGHT",
	Short: "Promote the operands of a binary operator (eq, add, ...)",
	Long:  `Types are EDM names such as Edm.Int32, Int64?, Sales.Color or Edm.Decimal(18,2); "null" is the untyped null literal`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := current.session.ResolveBinary(args[0], args[1], args[2])
		if err != nil {
			return resolutionError(err)
		}
		return writeResolution(cmd, resolutionPayload{
			Kind:      "binary",
			Operator:  res.Op.String(),
			Arguments: typeNames(res.Left, res.Right),
			Result:    res.Result.String(),
		})
	},
}

var resolveUnaryCmd = &cobra.Command{
	Use:   "unary OP TYPE",
	Short: "Promote the operand of a unary operator (negate, not)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := current.session.ResolveUnary(args[0], args[1])
		if err != nil {
			return resolutionError(err)
		}
		return writeResolution(cmd, resolutionPayload{
			Kind:      "unary",
			Operator:  res.Op.String(),
			Arguments: typeNames(res.Operand),
			Result:    res.Result.String(),
		})
	},
}

var resolveFunctionCmd = &cobra.Command{
	Use:   "function NAME [TYPE...]",
	Short: "Bind a function call to its best overload",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sig, err := current.session.ResolveFunction(args[0], args[1:])
		if err != nil {
			return resolutionError(err)
		}
		return writeResolution(cmd, resolutionPayload{
			Kind:      "function",
			Function:  sig.Name,
			Arguments: typeNames(sig.Signature.Args()...),
			Result:    sig.Signature.Return.String(),
			Signature: funcsig.Render(sig.Name, sig.Signature),
		})
	},
}

func init() {
	resolveCmd.PersistentFlags().String("format", "pretty", "output format (pretty|json)")
	resolveCmd.AddCommand(resolveBinaryCmd, resolveUnaryCmd, resolveFunctionCmd)
}

type resolutionPayload struct {
	Kind      string   `json:"kind"`
	Operator  string   `json:"operator,omitempty"`
	Function  string   `json:"function,omitempty"`
	Arguments []string `json:"arguments"`
	Result    string   `json:"result"`
	Signature string   `json:"signature,omitempty"`
}

func typeNames(types ...*edm.TypeRef) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}
	return out
}

func writeResolution(cmd *cobra.Command, p resolutionPayload) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case "pretty":
		renderResolution(out, p)
		return nil
	}
	return fmt.Errorf("unknown format: %s", format)
}

func renderResolution(out io.Writer, p resolutionPayload) {
	switch p.Kind {
	case "function":
		fmt.Fprintln(out, p.Signature)
	case "unary":
		fmt.Fprintf(out, "%s %s -> %s\n", p.Operator, p.Arguments[0], p.Result)
	default:
		fmt.Fprintf(out, "%s %s %s -> %s\n", p.Arguments[0], p.Operator, p.Arguments[1], p.Result)
	}
}

// resolutionError prefixes the diagnostic id so failures grep the same way
// lexical ones do.
func resolutionError(err error) error {
	code := promote.ErrorCode(err)
	if code == diag.ResInfo {
		return err
	}
	return fmt.Errorf("%s: %w", code.ID(), err)
}
