package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"miniAppRelay/internal/domain/tgbot"
	"strconv"
	"strings"

	"github.com/segmentio/kafka-go"
)

// KafkaProducer пересылает апдейты, которые релей сам не обрабатывает.
type KafkaProducer struct {
	writer *kafka.Writer
}

func New(config *Config) *KafkaProducer {
	return &KafkaProducer{writer: &kafka.Writer{
		Addr:      kafka.TCP(strings.Split(config.Brokers, ",")...),
		Topic:     config.Topic,
		BatchSize: config.Batch,
		Balancer:  &kafka.Hash{},
	}}
}

func (k *KafkaProducer) Forward(ctx context.Context, update *tgbot.Update) error {
	updateJSON, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("ошибка при маршалинге апдейта в кафка продюсере: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(update.UpdateID, 10)),
		Value: updateJSON,
	}

	if err = k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("ошибка при отправке апдейта %d в топик: %w", update.UpdateID, err)
	}

	return nil
}

func (k *KafkaProducer) Close() error {
	return k.writer.Close()
}
