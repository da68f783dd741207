package dto

import "miniAppRelay/internal/domain/tgbot"

type DeletePostRequest struct {
	ChannelID tgbot.ChatRef    `json:"channel_id"`
	MessageID tgbot.MessageRef `json:"message_id"`
}
