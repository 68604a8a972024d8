package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	physconst "github.com/JackRBlack/physics-constant"
	"github.com/JackRBlack/physics-constant/config"
	"github.com/JackRBlack/physics-constant/log"
)

// Persistent flags of [NewRootCommand].
var (
	ConfigPath []string       // Path(s) to config file/directory
	Format     config.Format  // Output format
	Precision  int            // Significant digits
	SIPrefix   bool           // Print values with SI prefixes
	Color      string         // auto, always or never
	LogLevel   log.LevelFlag  // Log level
	cfg        *config.Config // Loaded by the root command's PersistentPreRunE
	cleanup    []func() error // Run after every command
)

const fullDocsFooter = `Full documentation is available at:
https://pkg.go.dev/github.com/JackRBlack/physics-constant`

// ExitError is an error that should cause the program to exit with the given code.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode returns the process exit code for err. Temperatures below
// absolute zero exit with 2, every other failure with 1.
func exitCode(err error) int {
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	if errors.Is(err, physconst.ErrOutOfPhysicalRange) {
		return 2
	}
	return 1
}

// AddCleanup registers f to run when the command finishes.
func AddCleanup(f func() error) {
	cleanup = append(cleanup, f)
}

func runCleanup() {
	for _, f := range cleanup {
		if err := f(); err != nil {
			log.Error("Cleanup failed", err)
		}
	}
	cleanup = nil
}

func findConfig() {
	const defaultConfigFile = "physconst.yaml"

	if len(ConfigPath) > 0 {
		return
	}

	if env, ok := os.LookupEnv("PHYSCONST_CONFIG_PATH"); ok {
		ConfigPath = strings.Split(env, ",")
		return
	}

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		ConfigPath = []string{filepath.Join(xdg, defaultConfigFile)}
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.Debug("No home directory, using default config", "cause", err)
		return
	}

	ConfigPath = []string{filepath.Join(home, ".config", defaultConfigFile)}
}

// loadConfig loads the config files and applies the flags that were set
// on cmd over them.
func loadConfig(cmd *cobra.Command) (err error) {
	findConfig()

	cfg, err = config.Load(ConfigPath...)
	if err != nil {
		return err
	}

	if err = flagsToConfig(cmd, cfg); err != nil {
		return err
	}

	setLogHandler(cfg)
	log.Debug("Config loaded", "path", ConfigPath, "format", cfg.Format, "precision", cfg.Precision)
	return nil
}

func flagsToConfig(cmd *cobra.Command, cfg *config.Config) error {
	var opts []config.Option
	flags := cmd.Flags()

	if flags.Changed("format") {
		opts = append(opts, config.WithFormat(Format))
	}

	if flags.Changed("precision") {
		opts = append(opts, config.WithPrecision(Precision))
	}

	if flags.Changed("si") {
		opts = append(opts, config.WithSIPrefix(SIPrefix))
	}

	if flags.Changed("color") {
		opts = append(opts, config.WithColor(config.ColorMode(strings.ToLower(Color))))
	}

	if flags.Changed("log-level") {
		cfg.Log.Level = log.Level(LogLevel)
	}

	cfg.Apply(opts...)
	return cfg.Validate()
}

func setLogHandler(cfg *config.Config) {
	var w io.Writer

	switch strings.ToLower(cfg.Log.Output) {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	case "discard":
		log.SetHandler(log.DiscardHandler)
		return
	default:
		f, err := os.OpenFile(cfg.Log.Output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			log.Error("Unable to open log file, deferring to stderr", err, "path", cfg.Log.Output)
			return
		}

		w = f

		AddCleanup(f.Close)
	}

	log.SetLogLevel(cfg.Log.Level)

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		log.SetJSONHandler(w)
	default:
		log.SetTextHandler(w)
	}
}
