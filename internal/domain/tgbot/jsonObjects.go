package tgbot

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const ParseModeHTML = "HTML"

type SendMessage struct {
	ChatID      ID                    `json:"chat_id"`
	Text        string                `json:"text"`
	ParseMode   string                `json:"parse_mode"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

type InlineKeyboardButton struct {
	Text   string      `json:"text"`
	WebApp *WebAppInfo `json:"web_app,omitempty"`
}

type WebAppInfo struct {
	URL string `json:"url"`
}

type GetChat struct {
	ChatID string `json:"chat_id"`
}

type DeleteMessage struct {
	ChatID    ChatRef `json:"chat_id"`
	MessageID int64   `json:"message_id"`
}

type SetWebhook struct {
	URL            string   `json:"url"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

// DefaultServerAnswer конверт любого ответа Bot API.
type DefaultServerAnswer struct {
	Ok          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	Description string          `json:"description,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
}

// ChatRef идентификатор чата: числовой id или @username.
// Из JSON принимается и число, и строка.
type ChatRef string

func (c *ChatRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = ""
		return nil
	}

	var str string

	if err := json.Unmarshal(data, &str); err == nil {
		*c = ChatRef(strings.TrimSpace(str))
		return nil
	}

	var num json.Number

	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("chat id должен быть числом или строкой: %w", err)
	}

	*c = ChatRef(num.String())

	return nil
}

func (c ChatRef) MarshalJSON() ([]byte, error) {
	if id, err := strconv.ParseInt(string(c), 10, 64); err == nil {
		return json.Marshal(id)
	}

	return json.Marshal(string(c))
}

// MessageRef id сообщения, допускается передача числа строкой.
type MessageRef int64

func (m *MessageRef) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)

	if raw == "" || raw == "null" {
		*m = 0
		return nil
	}

	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("message id должен быть целым числом: %w", err)
	}

	*m = MessageRef(id)

	return nil
}
