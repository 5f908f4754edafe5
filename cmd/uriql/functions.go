package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uriql/internal/funcsig"
)

var functionsCmd = &cobra.Command{
	Use:   "functions [NAME]",
	Short: "List built-in and custom functions with their overloads",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		listing := current.session.Functions(name)
		if name != "" && len(listing) == 0 {
			return fmt.Errorf("unknown function %q", name)
		}
		out := cmd.OutOrStdout()
		for _, l := range listing {
			origin := "builtin"
			if l.Custom {
				origin = "custom"
			}
			fmt.Fprintf(out, "%s (%s)\n%s\n", l.Name, origin, funcsig.Describe(l.Name, l.Sigs))
		}
		return nil
	},
}
