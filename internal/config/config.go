package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
}

// Config is the example bot's environment configuration.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	Prefix       string `env:"COMMAND_PREFIX" envDefault:"!"`
	StoragePath  string `env:"STORAGE_PATH" envDefault:"datastore.json"`
}

// New parses configuration from the environment.
func New() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
