package producer

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// в качестве адресов брокеров, указывается строка, где адреса разделены запятой без пробелов

type Config struct {
	Topic   string `env:"UPDATES_TOPIC" envDefault:"telegram-updates"`
	Brokers string `env:"BROKERS_ADDR"`
	Batch   int    `env:"KAFKA_BATCH_SIZE" envDefault:"1"`
}

func NewConfig() (*Config, error) {
	config := &Config{}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("ошибка при парсинге конфига кафка продюсера: %w", err)
	}

	return config, nil
}

func (c *Config) Enabled() bool {
	return c.Brokers != ""
}
