package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how constants and results are printed.
type Format string

const (
	FormatTable Format = "table"
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var formats = []Format{FormatTable, FormatPlain, FormatJSON, FormatYAML}

var ErrFormat = errors.New("unknown format")

// ParseFormat returns the format named by s, ignoring case. "text" is an
// alias of "plain" and "yml" of "yaml".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatPlain, FormatJSON, FormatYAML:
		return f, nil
	case "text":
		return FormatPlain, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w %q", ErrFormat, s)
}

func (f *Format) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Format) String() string { return string(f) }

func (f *Format) Set(s string) (err error) {
	*f, err = ParseFormat(s)
	return
}

func (f *Format) Type() string { return "format" }

// ColorMode controls styling of table output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var colorModes = []ColorMode{ColorAuto, ColorAlways, ColorNever}

var ErrColor = errors.New("unknown color mode")

func (c *ColorMode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "auto", "":
		*c = ColorAuto
	case "always", "true", "on", "yes":
		*c = ColorAlways
	case "never", "false", "off", "no":
		*c = ColorNever
	default:
		return fmt.Errorf("%w %q", ErrColor, s)
	}
	return nil
}
