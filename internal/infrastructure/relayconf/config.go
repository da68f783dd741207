package relayconf

import (
	"fmt"
	"miniAppRelay/internal/application/relayservice"

	"github.com/caarlos0/env/v11"
)

// Config BOT_TOKEN не обязателен при старте: без него каждая функция
// отвечает 500 с описанием ошибки конфигурации.
type Config struct {
	BotToken    string `env:"BOT_TOKEN"`
	Addr        string `env:"RELAY_ADDR" envDefault:":8080"`
	APIHost     string `env:"TELEGRAM_API_HOST" envDefault:"api.telegram.org"`
	MiniAppURL  string `env:"MINI_APP_URL" envDefault:"https://miniapp.example.com"`
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"ru"`
	Debug       bool   `env:"DEBUG"`
}

func New() (*Config, error) {
	config := &Config{}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("ошибка при конфигурации: %w", err)
	}

	return config, nil
}

func (c *Config) Relay() relayservice.Config {
	return relayservice.Config{
		BotToken:    c.BotToken,
		MiniAppURL:  c.MiniAppURL,
		DefaultLang: c.DefaultLang,
	}
}
