package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/zucenko/snakeladder/model"
)

type Config struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT" envDefault:"200ms"`
	StartPlayer      string        `env:"START_PLAYER" envDefault:"A"`
	DiceSeed         int64         `env:"DICE_SEED" envDefault:"0"`
}

func NewConfig() Config {
	return Config{
		Port:             "8080",
		HandshakeTimeout: 200 * time.Millisecond,
		StartPlayer:      "A",
	}
}

// LoadConfig reads the server configuration from the environment.
func LoadConfig() (Config, error) {
	return loadConfig(env.Options{})
}

func loadConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Start(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Start() (model.Player, error) {
	p, err := model.ParsePlayer(c.StartPlayer)
	if err != nil {
		return model.PlayerA, fmt.Errorf("START_PLAYER: %w", err)
	}
	return p, nil
}
