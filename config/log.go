package config

import "github.com/JackRBlack/physics-constant/log"

type LogConfig struct {
	Level  log.Level `yaml:"level"`
	Output string    `yaml:"output"` // stderr, stdout, discard or a file path
	Format string    `yaml:"format"` // text or json
}
