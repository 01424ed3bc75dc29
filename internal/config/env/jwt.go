package env

import (
	"bowling_backend/internal/config"
	"fmt"
	"time"

	envparse "github.com/caarlos0/env/v11"
)

type jwtConfig struct {
	AccessTokenSecret string        `env:"ACCESS_TOKEN,required"`
	AccessTokenTTL    time.Duration `env:"ACCESS_TOKEN_DURATION" envDefault:"15m"`
	RefreshTokenTTL   time.Duration `env:"REFRESH_TOKEN_DURATION" envDefault:"720h"`
}

func NewJWTConfig() (config.JWTConfig, error) {
	var cfg jwtConfig
	if err := envparse.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse jwt config: %w", err)
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("token durations must be positive")
	}

	return &cfg, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.AccessTokenSecret)
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.RefreshTokenTTL
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.AccessTokenTTL
}
