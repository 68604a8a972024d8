package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JackRBlack/physics-constant/internal/build"
)

// NewCmdVersion returns the [cobra.Command] that prints version information.
func NewCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", cmd.Root().Name(), build.Version())
			if t := build.BuildTime(); t != "" {
				fmt.Fprintf(w, "built %s\n", t)
			}
			if p := build.Package(); p != "" {
				fmt.Fprintf(w, "module %s\n", p)
			}
			return nil
		},
	}
}
