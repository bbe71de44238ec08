// Package config loads the runtime configuration shared by the server and
// CLI driver from environment variables, using the same env-tag library the
// teacher pulls in transitively through mna/mainer.
package config

import "github.com/caarlos0/env/v6"

// Config holds everything that varies between a local run and a deployed
// one: where the server listens, and which assembler binary to shell out
// to.
type Config struct {
	ListenAddr             string `env:"VESPER_LISTEN_ADDR" envDefault:"[::]:3000"`
	AssemblerPath          string `env:"VESPER_ASSEMBLER_PATH" envDefault:"as"`
	AssembleTimeoutSeconds int    `env:"VESPER_ASSEMBLE_TIMEOUT_SECONDS" envDefault:"10"`
}

// Load reads Config from the process environment, filling in defaults for
// anything unset.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
