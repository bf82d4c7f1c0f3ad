package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/CptGummiball/mc-dealer-yml2json-fork/internal/domain"
	"github.com/CptGummiball/mc-dealer-yml2json-fork/pkg/errcodes"
)

type Config struct {
	Source Source
	Export Export
	Log    Log
}

type Log struct {
	Level slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, domain.WrapError(err, errcodes.ValidationError, "env.Parse")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(config); err != nil {
		return Config{}, domain.WrapError(err, errcodes.ValidationError, "config validation")
	}

	return config, nil
}
