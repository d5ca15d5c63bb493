package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kylycht/hoststats/service/ratesync"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort         string  `mapstructure:"http_port" yaml:"http_port"`                   // listen address of the view shell
	DataPath         string  `mapstructure:"data_path" yaml:"data_path"`                   // directory for the sqlite database
	DBDriver         string  `mapstructure:"db_driver" yaml:"db_driver"`                   // memory, sqlite or postgres
	DBDSN            string  `mapstructure:"db_dsn" yaml:"db_dsn"`                         // defaults to <data_path>/hoststats.db for sqlite
	LogLevel         string  `mapstructure:"log_level" yaml:"log_level"`                   // zerolog level
	LogPretty        bool    `mapstructure:"log_pretty" yaml:"log_pretty"`                 // console output instead of json
	RateSyncSchedule string  `mapstructure:"rate_sync_schedule" yaml:"rate_sync_schedule"` // cron expression for exchange rate refresh
	RequestRate      float64 `mapstructure:"request_rate" yaml:"request_rate"`             // max API requests per second, 0 is unlimited
}

// LoadConfig reads configuration from path (or ./config.yaml when empty),
// .env and HOSTSTATS_* environment variables, in increasing precedence.
func LoadConfig(path string) (Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("http_port", ":8885")
	v.SetDefault("data_path", "data")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("db_dsn", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", false)
	v.SetDefault("rate_sync_schedule", ratesync.DefaultSchedule)
	v.SetDefault("request_rate", 0)

	v.SetEnvPrefix("hoststats")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.DBDSN == "" && cfg.DBDriver == "sqlite" {
		cfg.DBDSN = filepath.Join(cfg.DataPath, "hoststats.db")
	}

	return cfg, nil
}

// setupLogger configures the global zerolog logger
func setupLogger(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		return
	}

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("service", "hoststats").Logger()
}
