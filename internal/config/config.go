// Package config carga la configuración desde variables de entorno.
package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	// Env controla formato y verbosidad del log: dev | prod
	Env string `env:"APP_ENV" env-default:"dev"`

	// Addr es la dirección de escucha del servidor HTTP.
	Addr string `env:"HTTP_ADDR" env-default:":8080"`

	// DBDSN es opcional: si está vacío se usa el adapter in-memory.
	DBDSN string `env:"DB_DSN"`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
