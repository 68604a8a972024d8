package main

import (
	"fmt"

	"github.com/spf13/cobra"

	physconst "github.com/JackRBlack/physics-constant"
	"github.com/JackRBlack/physics-constant/config"
)

// NewCmdGet returns the [cobra.Command] used for showing constants by symbol.
//
// Usage:
//
//	physconst get <symbol>...
func NewCmdGet() *cobra.Command {
	return &cobra.Command{
		Use:   "get <symbol>...",
		Short: "Show one or more constants",
		Long: `Show the value, unit, uncertainty and defining formula of each constant.

Symbols are case sensitive. The aliases alpha, epsilon_0 and mu are accepted for a, e_0 and m_u.`,
		Example: `  physconst get hbar
  physconst get -o json e m_e`,
		GroupID: "constants",
		Args:    cobra.MinimumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
			var out []cobra.Completion
			for _, c := range physconst.All() {
				out = append(out, cobra.CompletionWithDesc(c.Symbol, c.Description))
			}
			return out, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: getConstants,
	}
}

func getConstants(cmd *cobra.Command, args []string) error {
	cc := make([]physconst.Constant, 0, len(args))
	for _, arg := range args {
		c, err := physconst.Find(arg)
		if err != nil {
			return usageError("%w", err)
		}
		cc = append(cc, c)
	}

	r := newRenderer(cmd.OutOrStdout(), cfg)
	if len(cc) > 1 && (cfg.Format == config.FormatJSON || cfg.Format == config.FormatYAML) {
		views := make([]constantView, len(cc))
		for i, c := range cc {
			views[i] = viewOf(c)
		}
		return r.encode(views)
	}

	for i, c := range cc {
		if i > 0 && cfg.Format == config.FormatTable {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		if err := r.printDetails(c); err != nil {
			return err
		}
	}
	return nil
}
