package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"local"`
	Port   string `env:"PORT" envDefault:"8080"`

	PostgresURL string `env:"POSTGRES_URL"`

	JWTSecret string `env:"JWT_SECRET"`

	// payOS credentials; ChecksumKey also signs webhook verification.
	PayOSClientID    string `env:"PAYOS_CLIENT_ID"`
	PayOSAPIKey      string `env:"PAYOS_API_KEY"`
	PayOSChecksumKey string `env:"PAYOS_CHECKSUM_KEY"`
	PayOSReturnURL   string `env:"PAYOS_RETURN_URL"`
	PayOSCancelURL   string `env:"PAYOS_CANCEL_URL"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
