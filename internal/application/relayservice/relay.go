package relayservice

import (
	"context"
	"fmt"
	"log/slog"
	"miniAppRelay/internal/domain/tgbot"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const (
	startCommand = "/start"

	DefaultMiniAppURL = "https://miniapp.example.com"
	DefaultLang       = "ru"
)

type Outcome string

const (
	OutcomeWelcomed  Outcome = "welcomed"
	OutcomeIgnored   Outcome = "ignored"
	OutcomeForwarded Outcome = "forwarded"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeFailed    Outcome = "failed"
)

type TgClient interface {
	SendMessage(ctx context.Context, msg *tgbot.SendMessage) error
	GetChat(ctx context.Context, chatID string) (*tgbot.ChatInfo, error)
	DeleteMessage(ctx context.Context, chatID tgbot.ChatRef, messageID int64) error
}

// UpdateDeduper помечает update_id как обработанный. false означает повтор.
type UpdateDeduper interface {
	Claim(ctx context.Context, updateID int64) (bool, error)
}

type UpdateForwarder interface {
	Forward(ctx context.Context, update *tgbot.Update) error
}

type Config struct {
	BotToken    string
	MiniAppURL  string
	DefaultLang string
}

type Relay struct {
	cfg       Config
	tg        TgClient
	dedup     UpdateDeduper
	forwarder UpdateForwarder
	sanitizer *bluemonday.Policy
	log       *slog.Logger
}

func New(cfg Config, tg TgClient, log *slog.Logger) *Relay {
	if cfg.MiniAppURL == "" {
		cfg.MiniAppURL = DefaultMiniAppURL
	}

	if cfg.DefaultLang == "" {
		cfg.DefaultLang = DefaultLang
	}

	return &Relay{
		cfg:       cfg,
		tg:        tg,
		sanitizer: bluemonday.StrictPolicy(),
		log:       log,
	}
}

func (r *Relay) SetDeduper(dedup UpdateDeduper) {
	r.dedup = dedup
}

func (r *Relay) SetForwarder(forwarder UpdateForwarder) {
	r.forwarder = forwarder
}

// Configured сообщает об отсутствии токена до любого исходящего запроса.
func (r *Relay) Configured() error {
	if r.cfg.BotToken == "" {
		return tgbot.ErrNoToken
	}

	return nil
}

func (r *Relay) HandleUpdate(ctx context.Context, update *tgbot.Update) (Outcome, error) {
	if err := r.Configured(); err != nil {
		return OutcomeFailed, err
	}

	if r.dedup != nil {
		fresh, err := r.dedup.Claim(ctx, update.UpdateID)

		switch {
		case err != nil:
			r.log.Warn("не удалось проверить повтор апдейта, обрабатываем", "update_id", update.UpdateID, "err", err.Error())
		case !fresh:
			r.log.Info("повторная доставка апдейта пропущена", "update_id", update.UpdateID)
			return OutcomeDuplicate, nil
		}
	}

	if !IsStartCommand(update) {
		return r.forward(ctx, update)
	}

	msg := r.welcomeMessage(update.Msg)

	if err := r.tg.SendMessage(ctx, msg); err != nil {
		return OutcomeFailed, fmt.Errorf("не удалось отправить приветствие: %w", err)
	}

	r.log.Info("приветствие отправлено", "chat_id", msg.ChatID, "update_id", update.UpdateID)

	return OutcomeWelcomed, nil
}

func (r *Relay) forward(ctx context.Context, update *tgbot.Update) (Outcome, error) {
	if r.forwarder == nil || update.Msg == nil {
		return OutcomeIgnored, nil
	}

	if err := r.forwarder.Forward(ctx, update); err != nil {
		r.log.Error("ошибка при пересылке апдейта", "update_id", update.UpdateID, "err", err.Error())
		return OutcomeIgnored, nil
	}

	return OutcomeForwarded, nil
}

// IsStartCommand true для "/start" и "/start <параметры>".
func IsStartCommand(update *tgbot.Update) bool {
	if update == nil || update.Msg == nil {
		return false
	}

	text := update.Msg.Text

	return text == startCommand || strings.HasPrefix(text, startCommand+" ")
}
