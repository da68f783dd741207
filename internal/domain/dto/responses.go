package dto

import "miniAppRelay/internal/domain/tgbot"

// WebhookAck ответ вебхука. Telegram повторяет доставку при любом статусе
// кроме 200, поэтому ошибки обработки кладутся в Error при Ok=true.
type WebhookAck struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type ChannelCheckRequest struct {
	Channel string `json:"channel"`
}

// ChannelCheck результат проверки канала. Exists=nil означает, что
// проверить не удалось (нет токена), а не что канала нет.
type ChannelCheck struct {
	Exists  *bool        `json:"exists"`
	Channel *ChannelInfo `json:"channel,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type ChannelInfo struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Username     string `json:"username"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	Photo        bool   `json:"photo"`
	MembersCount *int   `json:"members_count"`
}

type DeletePostResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ChannelFound(info *ChannelInfo) *ChannelCheck {
	exists := true

	return &ChannelCheck{Exists: &exists, Channel: info}
}

func ChannelNotFound(reason string) *ChannelCheck {
	exists := false

	return &ChannelCheck{Exists: &exists, Error: reason}
}

func ChannelUnknown(reason string) *ChannelCheck {
	return &ChannelCheck{Exists: nil, Error: reason}
}

type APICallList struct {
	Calls []tgbot.APICall `json:"calls"`
	Error string          `json:"error,omitempty"`
}
