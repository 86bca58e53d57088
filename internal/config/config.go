package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
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

// RoadConfig Настройки отображения "большой дороги".
// Высота колонки фиксирована правилами разметки (6), настраивается
// только ширина табло
type RoadConfig interface {
	DisplayColumns() int
}
