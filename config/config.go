// Package config provides the configuration of the physconst command.
//
// Configuration is read from one or more YAML files. Later files
// override the values of earlier ones, and string values may refer to
// environment variables as $VAR or ${VAR}.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	physconst "github.com/JackRBlack/physics-constant"
	"github.com/JackRBlack/physics-constant/log"
)

// Config contains the settings used when printing constants and conversions.
// Config should be created with a call to [Default], [Read] or [Load].
type Config struct {
	Temperature TempUnit  `yaml:"temperature"`
	Precision   int       `yaml:"precision"`
	Format      Format    `yaml:"format"`
	SIPrefix    bool      `yaml:"si_prefix"`
	Color       ColorMode `yaml:"color"`
	Log         LogConfig `yaml:"log,omitempty"`
}

// MaxPrecision is the number of significant digits needed to print any
// float64 exactly.
const MaxPrecision = 17

func defaultConfig() *Config {
	return &Config{
		Temperature: TempUnit(physconst.Kelvin),
		Precision:   10,
		Format:      FormatTable,
		Color:       ColorAuto,
		Log: LogConfig{
			Level:  log.LevelWarn,
			Output: "stderr",
			Format: "text",
		},
	}
}

// Default returns the configuration used when no config file exists,
// with opts applied.
func Default(opts ...Option) *Config {
	cfg := defaultConfig()
	cfg.Apply(opts...)
	return cfg
}

// Read returns the Config decoded from the yaml document in r, on top of
// the defaults.
func Read(r io.Reader) (*Config, error) {
	cfg := defaultConfig()
	if err := cfg.decode(r); err != nil {
		return nil, err
	}
	return cfg, cfg.load()
}

// Load returns the Config decoded from the given yaml files, applied in
// order. If the first file does not exist, the default config is returned.
// Directories are replaced by the files they contain.
func Load(file ...string) (*Config, error) {
	cfg := defaultConfig()
	if len(file) == 0 {
		return cfg, nil
	}
	log.Info("Loading config", "path", file)
	if _, err := os.Stat(file[0]); errors.Is(err, os.ErrNotExist) {
		log.Debug("Config not found, using defaults", "path", file[0])
		return cfg, nil
	}
	names, err := expandDirs(file)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if err := cfg.decodeFile(name); err != nil {
			return nil, err
		}
	}
	return cfg, cfg.load()
}

// expandDirs replaces every directory in names with the yaml files it contains.
func expandDirs(names []string) ([]string, error) {
	var out []string
	for _, name := range names {
		fi, err := os.Stat(name)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			out = append(out, name)
			continue
		}
		entries, err := os.ReadDir(name)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch filepath.Ext(e.Name()) {
			case ".yaml", ".yml":
				out = append(out, filepath.Join(name, e.Name()))
			}
		}
	}
	return out, nil
}

func (cfg *Config) decodeFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	log.Debug("Reading config", "file", name)
	if err := cfg.decode(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (cfg *Config) decode(r io.Reader) error {
	err := yaml.NewDecoder(r).Decode(cfg)
	if errors.Is(err, io.EOF) {
		// empty document
		return nil
	}
	return err
}

func (cfg *Config) load() error {
	cfg.Log.Output = os.ExpandEnv(cfg.Log.Output)
	cfg.Log.Format = os.ExpandEnv(cfg.Log.Format)
	return cfg.Validate()
}

var (
	ErrPrecision = errors.New("precision out of range")
	ErrLogFormat = errors.New("unknown log format")
)

// Validate reports the first invalid setting of cfg.
func (cfg *Config) Validate() error {
	if cfg.Precision < 1 || cfg.Precision > MaxPrecision {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrPrecision, cfg.Precision, MaxPrecision)
	}
	if !physconst.Unit(cfg.Temperature).Valid() {
		return fmt.Errorf("temperature: %w", physconst.ErrUnknownUnit)
	}
	if !slices.Contains(formats, cfg.Format) {
		return fmt.Errorf("%w %q", ErrFormat, cfg.Format)
	}
	if !slices.Contains(colorModes, cfg.Color) {
		return fmt.Errorf("%w %q", ErrColor, cfg.Color)
	}
	switch cfg.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w %q", ErrLogFormat, cfg.Log.Format)
	}
	return nil
}

// Write writes the yaml encoding of cfg to w.
func (cfg *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	enc.SetIndent(2)
	return enc.Encode(cfg)
}
