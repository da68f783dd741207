package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis"
)

const updateKeyPrefix = "update:"

// Store помнит update_id уже принятых апдейтов, чтобы повторная доставка
// вебхука не приводила к повторной обработке.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(config *Config) (*Store, error) {
	redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr})

	if err := redisClient.Ping().Err(); err != nil {
		return nil, fmt.Errorf("ошибка при создании redis хранилища, не удалось установить соединение: %w", err)
	}

	return &Store{client: redisClient, ttl: config.UpdateTTL}, nil
}

func updateKey(updateID int64) string {
	return updateKeyPrefix + strconv.FormatInt(updateID, 10)
}

// Claim возвращает true, если апдейт встретился впервые.
func (s *Store) Claim(ctx context.Context, updateID int64) (bool, error) {
	claimed, err := s.client.WithContext(ctx).SetNX(updateKey(updateID), 1, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("ошибка при сохранении апдейта %d в кеш: %w", updateID, err)
	}

	return claimed, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
