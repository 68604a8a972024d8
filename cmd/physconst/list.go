package main

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	physconst "github.com/JackRBlack/physics-constant"
)

// Flags for physconst list
var (
	ListSummary bool // Print only the symbols
)

//go:embed help/list.md
var listHelp string

// NewCmdList returns the [cobra.Command] used for listing constants.
//
// Usage:
//
//	physconst list [flags] [group]...
//
// Aliases:
//
//	list, ls, l
//
// Flags:
//
//	-s, --summary   Print only the symbols
//	-h, --help      help for list
func NewCmdList() *cobra.Command {
	var validArgs []cobra.Completion
	for _, g := range physconst.Groups() {
		validArgs = append(validArgs, cobra.CompletionWithDesc(g.Key(), g.String()))
	}

	cmd := &cobra.Command{
		Use:       "list [flags] [group]...",
		Aliases:   []string{"ls", "l"},
		Short:     "List physical constants",
		Long:      listHelp,
		GroupID:   "constants",
		ValidArgs: validArgs,
		RunE:      listConstants,
		Example: `  physconst list
  physconst list atomic chemical
  physconst list --si --precision 6`,
	}

	ListSummary = false
	cmd.Flags().BoolVarP(&ListSummary, "summary", "s", false, "Print only the symbols")

	return cmd
}

func selectGroups(args []string) ([]physconst.Constant, error) {
	if len(args) == 0 {
		return physconst.All(), nil
	}
	want := make(map[physconst.Group]bool)
	for _, arg := range args {
		g, err := physconst.ParseGroup(arg)
		if err != nil {
			return nil, usageError("%w", err)
		}
		want[g] = true
	}
	var cc []physconst.Constant
	for _, g := range physconst.Groups() {
		if want[g] {
			cc = append(cc, physconst.ByGroup(g)...)
		}
	}
	return cc, nil
}

func listConstants(cmd *cobra.Command, args []string) error {
	cc, err := selectGroups(args)
	if err != nil {
		return err
	}

	if ListSummary {
		symbols := make([]string, len(cc))
		for i, c := range cc {
			symbols[i] = c.Symbol
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(symbols, ", "))
		return err
	}

	return newRenderer(cmd.OutOrStdout(), cfg).printConstants(cc)
}
