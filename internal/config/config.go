package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// MaxLineBytes bounds a single input line; disclaimer blocks in some
	// exports run long.
	MaxLineBytes int `envconfig:"MAX_LINE_BYTES" default:"1048576"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
}

func Load() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		panic(err)
	}
	return &cfg
}
