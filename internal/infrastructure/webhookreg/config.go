package webhookreg

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	WebhookURL    string        `env:"WEBHOOK_URL"`
	CheckInterval time.Duration `env:"WEBHOOK_CHECK_INTERVAL" envDefault:"10m"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("ошибка при парсинге конфига регистрации вебхука: %w", err)
	}

	return cfg, nil
}

func (c *Config) Enabled() bool {
	return c.WebhookURL != ""
}
