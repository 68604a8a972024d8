package main

import (
	"github.com/spf13/cobra"

	"github.com/JackRBlack/physics-constant/config"
	"github.com/JackRBlack/physics-constant/internal/build"
	"github.com/JackRBlack/physics-constant/log"
)

// NewRootCommand returns the physconst command with all of its subcommands.
//
// Configuration is loaded before any subcommand runs. If no config file is
// given with --config, the path is the first defined of
// $PHYSCONST_CONFIG_PATH, $XDG_CONFIG_HOME/physconst.yaml or
// $HOME/.config/physconst.yaml. $PHYSCONST_CONFIG_PATH may be a
// comma-separated list of paths.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "physconst",
		Short:   "Physical constants and unit conversions",
		Version: build.Version(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			runCleanup()
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	}

	ConfigPath = nil
	Format = config.FormatTable
	LogLevel = log.LevelFlag(log.LevelWarn)

	flags := cmd.PersistentFlags()
	flags.SortFlags = false
	flags.StringSliceVarP(&ConfigPath, "config", "c", nil, "Path(s) to config file/directory")
	flags.VarP(&Format, "format", "o", "Output format: table, plain, json or yaml")
	flags.IntVarP(&Precision, "precision", "p", 10, "Significant digits")
	flags.BoolVar(&SIPrefix, "si", false, "Print values with SI prefixes")
	flags.StringVar(&Color, "color", string(config.ColorAuto), "Style table output: auto, always or never")
	flags.Var(&LogLevel, "log-level", "Log level")

	cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]cobra.Completion{"table", "plain", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp,
	))
	cmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]cobra.Completion{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp,
	))
	cmd.RegisterFlagCompletionFunc("log-level", cobra.FixedCompletions(
		log.Choices(), cobra.ShellCompDirectiveNoFileComp,
	))

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	cmd.AddGroup(
		&cobra.Group{ID: "constants", Title: "Constants:"},
		&cobra.Group{ID: "conversions", Title: "Conversions:"},
	)
	cmd.AddCommand(
		NewCmdList(),
		NewCmdGet(),
		NewCmdConvert(),
		NewCmdVersion(),
	)
	for _, newCmd := range extraCommands {
		cmd.AddCommand(newCmd(cmd))
	}

	return cmd
}

// extraCommands are added by optional build tags.
var extraCommands []func(root *cobra.Command) *cobra.Command
