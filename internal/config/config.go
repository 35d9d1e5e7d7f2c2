package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Secrets holds credentials sourced from the environment. Non-secret
// settings live in the viper config file.
type Secrets struct {
	DiscordToken     string `env:"DISCORD_TOKEN,required,notEmpty"`
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY"`
}

// LoadSecrets reads an optional .env file from the working directory and
// parses the process environment into Secrets.
func LoadSecrets() (Secrets, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Secrets{}, fmt.Errorf("loading .env file: %w", err)
		}
		log.Debug().Msg("no .env file found, using process environment")
	}

	var s Secrets
	if err := env.Parse(&s); err != nil {
		return Secrets{}, fmt.Errorf("parsing environment: %w", err)
	}

	return s, nil
}
