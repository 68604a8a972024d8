package config

import (
	"gopkg.in/yaml.v3"

	physconst "github.com/JackRBlack/physics-constant"
)

// TempUnit is a [physconst.Unit] that can be read from yaml as a letter
// or a name, e.g. "K" or "kelvin".
type TempUnit physconst.Unit

func (u *TempUnit) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := physconst.ParseUnit(s)
	if err != nil {
		return err
	}
	*u = TempUnit(v)
	return nil
}

func (u TempUnit) MarshalYAML() (any, error) {
	return string(rune(u)), nil
}

// Unit returns u as a [physconst.Unit].
func (u TempUnit) Unit() physconst.Unit {
	return physconst.Unit(u)
}

func (u TempUnit) String() string {
	return physconst.Unit(u).String()
}

// Set implements [github.com/spf13/pflag.Value].
func (u *TempUnit) Set(s string) error {
	v, err := physconst.ParseUnit(s)
	if err != nil {
		return err
	}
	*u = TempUnit(v)
	return nil
}

func (u *TempUnit) Type() string {
	return "unit"
}
