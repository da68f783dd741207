package webhookreg

import (
	"context"
	"fmt"
	"log/slog"
	"miniAppRelay/internal/domain/tgbot"
	"time"

	"github.com/go-co-op/gocron"
)

type WebhookClient interface {
	WebhookInfo(ctx context.Context) (*tgbot.WebhookInfo, error)
	SetWebhook(ctx context.Context, webhookURL string) error
}

// Registrar следит, чтобы в Bot API был зарегистрирован адрес нашего вебхука.
type Registrar struct {
	tg         WebhookClient
	webhookURL string
	log        *slog.Logger
}

func New(tg WebhookClient, webhookURL string, log *slog.Logger) *Registrar {
	return &Registrar{tg: tg, webhookURL: webhookURL, log: log}
}

// Ensure возвращает true, если вебхук пришлось перерегистрировать.
func (r *Registrar) Ensure(ctx context.Context) (bool, error) {
	info, err := r.tg.WebhookInfo(ctx)
	if err != nil {
		return false, fmt.Errorf("ошибка при получении информации о вебхуке: %w", err)
	}

	if info.URL == r.webhookURL {
		return false, nil
	}

	if info.LastErrorMessage != "" {
		r.log.Warn("вебхук бота был зарегистрирован с ошибкой",
			"url", info.URL,
			"last_error", info.LastErrorMessage,
			"pending", info.PendingUpdateCount,
		)
	}

	if err = r.tg.SetWebhook(ctx, r.webhookURL); err != nil {
		return false, fmt.Errorf("ошибка при регистрации вебхука: %w", err)
	}

	return true, nil
}

func (r *Registrar) check(ctx context.Context) {
	changed, err := r.Ensure(ctx)
	if err != nil {
		r.log.Error("проверка вебхука закончилась ошибкой", "err", err.Error())
		return
	}

	if changed {
		r.log.Info("вебхук бота зарегистрирован", "url", r.webhookURL)
	}
}

// Schedule проверяет вебхук сразу и далее каждые interval.
// Планировщик останавливается вызывающей стороной.
func (r *Registrar) Schedule(ctx context.Context, interval time.Duration) (*gocron.Scheduler, error) {
	s := gocron.NewScheduler(time.UTC)

	if _, err := s.Every(interval).Do(r.check, ctx); err != nil {
		return nil, fmt.Errorf("ошибка в работе планировщика: %w", err)
	}

	s.StartAsync()

	return s, nil
}
