package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	TelegramToken  string `mapstructure:"TELEGRAM_TOKEN"`
	DBPath         string `mapstructure:"PLANNING_DB_PATH"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogFormat      string `mapstructure:"LOG_FORMAT"`
	BreakThreshold int    `mapstructure:"BREAK_THRESHOLD_MINUTES"`
	PollTimeout    int    `mapstructure:"POLL_TIMEOUT_SECONDS"`
	WorkerQueue    int    `mapstructure:"WORKER_QUEUE"`
}

// LoadConfig reads .env when present, then the environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Unmarshal only sees keys viper knows about, so the token needs one too.
	v.SetDefault("TELEGRAM_TOKEN", "")
	v.SetDefault("PLANNING_DB_PATH", "planning-bot.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("BREAK_THRESHOLD_MINUTES", 60)
	v.SetDefault("POLL_TIMEOUT_SECONDS", 10)
	v.SetDefault("WORKER_QUEUE", 32)
}

func validate(cfg *Config) error {
	if cfg.TelegramToken == "" {
		return ErrNoToken{}
	}
	if cfg.BreakThreshold <= 0 {
		return fmt.Errorf("BREAK_THRESHOLD_MINUTES must be positive, got %d", cfg.BreakThreshold)
	}
	if cfg.WorkerQueue <= 0 {
		cfg.WorkerQueue = 1
	}
	return nil
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN n'est pas défini dans l'environnement"
}
