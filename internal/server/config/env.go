package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

type envConfig struct {
	Address     string `env:"ADDRESS"`
	DatabaseDSN string `env:"DATABASE_DSN"`
	SecretKey   string `env:"SECRET_KEY"`
}

// parseEnv overlays ADDRESS, DATABASE_DSN and SECRET_KEY when they are set.
func parseEnv(config *Config) {
	var e envConfig
	if err := cleanenv.ReadEnv(&e); err != nil {
		panic(err)
	}

	if e.Address != "" {
		config.EndpointAddrGRPC = e.Address
	}
	if e.DatabaseDSN != "" {
		config.DatabaseDSN = e.DatabaseDSN
	}
	if e.SecretKey != "" {
		config.SecretKey = e.SecretKey
	}
}
