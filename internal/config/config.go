package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type TelegramConfig struct {
	APIID   int    `env:"TELEGRAM_API_ID,required"`
	APIHash string `env:"TELEGRAM_API_HASH,required,notEmpty"`

	// Session credential written by cmd/signin. When SessionDSN is set the
	// credential is read from Postgres instead of SessionFile.
	SessionFile string `env:"TELEGRAM_SESSION_FILE" envDefault:"userbot.session"`
	SessionDSN  string `env:"TELEGRAM_SESSION_DSN"`
	SessionName string `env:"TELEGRAM_SESSION_NAME" envDefault:"default"`

	CallTimeout    time.Duration `env:"TELEGRAM_CALL_TIMEOUT" envDefault:"10s"`
	ConnectTimeout time.Duration `env:"TELEGRAM_CONNECT_TIMEOUT" envDefault:"30s"`
}

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port            int           `env:"PORT" envDefault:"8000"`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	}

	Telegram TelegramConfig

	ServiceAPIKey string `env:"SERVICE_API_KEY,required,notEmpty"`
}

// Load reads .env (if present) and the environment. Missing Telegram app
// credentials or service key are fatal.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validateTelegram(&cfg.Telegram); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadTelegram reads only the Telegram part. The sign-in tool uses it since
// it does not serve HTTP and needs no service key.
func LoadTelegram() (*TelegramConfig, error) {
	loadDotEnv()

	cfg := &TelegramConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validateTelegram(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadDotEnv() {
	// .env is optional, in production variables come from the environment
	_ = godotenv.Load()
}

func validateTelegram(cfg *TelegramConfig) error {
	if cfg.APIID <= 0 {
		return errors.New("TELEGRAM_API_ID must be a positive integer")
	}
	if cfg.SessionDSN == "" && cfg.SessionFile == "" {
		return errors.New("TELEGRAM_SESSION_FILE or TELEGRAM_SESSION_DSN is required")
	}
	return nil
}
