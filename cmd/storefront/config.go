package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`
	EncodingKey string `env:"ENCODING_KEY" env-required:"true"`

	HTTPPort string `env:"PORT" env-default:"8080"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	NBURatesURL     string        `env:"NBU_RATES_URL" env-default:"https://bank.gov.ua/NBUStatService/v1/statdirectory/exchange?json"`
	PrivatRatesURL  string        `env:"PRIVAT_RATES_URL" env-default:"https://api.privatbank.ua/p24api/pubinfo?exchange&json&coursid=5"`
	RatesSchedule   string        `env:"RATES_SCHEDULE" env-default:"@every 1h"`
	ProviderTimeout time.Duration `env:"RATES_PROVIDER_TIMEOUT" env-default:"10s"`
	ColdStartLimit  int           `env:"RATES_COLD_START_LIMIT" env-default:"50"`
}

// LoadConfig reads .env when present, then the environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Overload(); err != nil {
		slog.Debug("no .env file loaded", slog.String("error", err.Error()))
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is empty")
	}
	cfg.EncodingKey = strings.TrimSpace(cfg.EncodingKey)
	if cfg.EncodingKey == "" {
		return Config{}, fmt.Errorf("ENCODING_KEY is empty")
	}
	if cfg.ProviderTimeout <= 0 {
		return Config{}, fmt.Errorf("RATES_PROVIDER_TIMEOUT must be positive, got %s", cfg.ProviderTimeout)
	}

	return cfg, nil
}

func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
