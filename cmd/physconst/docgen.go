//go:build docgen

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func init() {
	extraCommands = append(extraCommands, newCmdDocGen)
}

func newCmdDocGen(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:    "docgen",
		Short:  "Generate documentation",
		Hidden: true,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "man",
			Short: "Generate man pages",
			RunE: func(_ *cobra.Command, _ []string) error {
				hdr := &doc.GenManHeader{
					Title:   "PHYSCONST",
					Section: "1",
				}
				if err := os.MkdirAll("docs/man", 0o750); err != nil {
					return err
				}
				return doc.GenManTree(root, hdr, "docs/man")
			},
		},
		&cobra.Command{
			Use:   "markdown",
			Short: "Generate markdown pages",
			RunE: func(_ *cobra.Command, _ []string) error {
				if err := os.MkdirAll("docs/md", 0o750); err != nil {
					return err
				}
				return doc.GenMarkdownTree(root, "docs/md")
			},
		},
	)

	return cmd
}
