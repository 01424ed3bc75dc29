package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Load подгружает переменные окружения из .env
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig правила ведения игр из config.yaml
type GameConfig interface {
	MaxSeriesGames() int
	DefaultInputMode() string
	ListLimit() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
