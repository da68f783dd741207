package relayservice

import (
	"context"
	"errors"
	"fmt"
	"miniAppRelay/internal/domain/dto"
	"miniAppRelay/internal/domain/tgbot"
	"regexp"
	"strings"
)

const channelField = "Channel"

var channelURL = regexp.MustCompile(`^(?:https?://)?(?:www\.)?(?:t|telegram)\.me/(@?)([A-Za-z0-9_]+)`)

// NormalizeChannel приводит "@name", "name", "t.me/name" и "telegram.me/@name"
// к голому имени канала.
func NormalizeChannel(raw string) string {
	channel := strings.TrimPrefix(strings.TrimSpace(raw), "@")

	if match := channelURL.FindStringSubmatch(channel); match != nil {
		channel = match[2]
	}

	return channel
}

// CheckChannel ответ Bot API с ok=false считается штатным результатом
// "канал не найден", ошибкой возвращаются только сбои транспорта.
func (r *Relay) CheckChannel(ctx context.Context, raw string) (*dto.ChannelCheck, error) {
	if err := r.Configured(); err != nil {
		return nil, err
	}

	handle := NormalizeChannel(raw)
	if handle == "" {
		return nil, tgbot.NewErrMissingField(channelField)
	}

	info, err := r.tg.GetChat(ctx, "@"+handle)
	if err != nil {
		var apiErr *tgbot.ErrBotAPI

		if errors.As(err, &apiErr) {
			r.log.Info("канал не найден или недоступен боту", "channel", handle, "err", apiErr.Description)
			return dto.ChannelNotFound(apiErr.Description), nil
		}

		return nil, fmt.Errorf("ошибка при проверке канала %s: %w", handle, err)
	}

	return dto.ChannelFound(channelInfo(info, handle)), nil
}

func channelInfo(info *tgbot.ChatInfo, handle string) *dto.ChannelInfo {
	title := info.Title

	if title == "" {
		title = info.FirstName
	}

	if title == "" {
		title = handle
	}

	return &dto.ChannelInfo{
		ID:           info.ID,
		Title:        title,
		Username:     info.Username,
		Type:         info.Type,
		Description:  info.Description,
		Photo:        info.Photo != nil,
		MembersCount: info.MembersCount,
	}
}
