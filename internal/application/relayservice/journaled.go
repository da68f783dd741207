package relayservice

import (
	"context"
	"errors"
	"log/slog"
	"miniAppRelay/internal/domain/tgbot"
	"strconv"
	"time"
)

type CallJournal interface {
	Record(ctx context.Context, call *tgbot.APICall) error
}

// JournaledClient пишет в журнал каждый исходящий запрос к Bot API.
// Ошибка журнала только логируется и не влияет на результат запроса.
type JournaledClient struct {
	next    TgClient
	journal CallJournal
	log     *slog.Logger
	now     func() time.Time
}

func NewJournaledClient(next TgClient, journal CallJournal, log *slog.Logger) *JournaledClient {
	return &JournaledClient{
		next:    next,
		journal: journal,
		log:     log,
		now:     time.Now,
	}
}

func (j *JournaledClient) SendMessage(ctx context.Context, msg *tgbot.SendMessage) error {
	err := j.next.SendMessage(ctx, msg)

	j.record(ctx, "sendMessage", strconv.FormatInt(msg.ChatID, 10), err)

	return err
}

func (j *JournaledClient) GetChat(ctx context.Context, chatID string) (*tgbot.ChatInfo, error) {
	info, err := j.next.GetChat(ctx, chatID)

	j.record(ctx, "getChat", chatID, err)

	return info, err
}

func (j *JournaledClient) DeleteMessage(ctx context.Context, chatID tgbot.ChatRef, messageID int64) error {
	err := j.next.DeleteMessage(ctx, chatID, messageID)

	j.record(ctx, "deleteMessage", string(chatID), err)

	return err
}

func (j *JournaledClient) record(ctx context.Context, method, chatID string, callErr error) {
	call := &tgbot.APICall{
		Method:    method,
		ChatID:    chatID,
		Ok:        callErr == nil,
		CreatedAt: j.now().UTC(),
	}

	if callErr != nil {
		var apiErr *tgbot.ErrBotAPI

		if errors.As(callErr, &apiErr) {
			call.Description = apiErr.Description
		} else {
			call.Description = callErr.Error()
		}
	}

	if err := j.journal.Record(ctx, call); err != nil {
		j.log.Error("не удалось записать запрос к Bot API в журнал", "method", method, "err", err.Error())
	}
}
