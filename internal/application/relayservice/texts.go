package relayservice

import (
	"fmt"
	"miniAppRelay/internal/domain/tgbot"
	"strings"
)

type welcomeText struct {
	greeting    string
	anonymous   string
	button      string
	description string
}

var welcomeTexts = map[string]welcomeText{
	"ru": {
		greeting:  "👋 Здравствуйте, <b>%s</b>!",
		anonymous: "друг",
		button:    "Открыть приложение",
		description: "Здесь можно оставить заявку на партнёрство, оформить заказ или задать вопрос.\n\n" +
			"Нажмите кнопку ниже, чтобы открыть приложение.",
	},
	"en": {
		greeting:  "👋 Hello, <b>%s</b>!",
		anonymous: "friend",
		button:    "Open app",
		description: "Here you can apply for a partnership, place an order or ask a question.\n\n" +
			"Tap the button below to open the app.",
	},
}

func (r *Relay) lang(user *tgbot.User) string {
	if user != nil {
		code := strings.ToLower(user.LanguageCode)

		for lang := range welcomeTexts {
			if strings.HasPrefix(code, lang) {
				return lang
			}
		}
	}

	if _, ok := welcomeTexts[r.cfg.DefaultLang]; ok {
		return r.cfg.DefaultLang
	}

	return DefaultLang
}

func (r *Relay) welcomeMessage(msg *tgbot.Message) *tgbot.SendMessage {
	texts := welcomeTexts[r.lang(msg.From)]

	name := ""
	if msg.From != nil {
		name = strings.TrimSpace(r.sanitizer.Sanitize(msg.From.FirstName))
	}

	if name == "" {
		name = texts.anonymous
	}

	return &tgbot.SendMessage{
		ChatID:    msg.Chat.ID,
		Text:      fmt.Sprintf(texts.greeting, name) + "\n\n" + texts.description,
		ParseMode: tgbot.ParseModeHTML,
		ReplyMarkup: &tgbot.InlineKeyboardMarkup{
			InlineKeyboard: [][]tgbot.InlineKeyboardButton{
				{{Text: texts.button, WebApp: &tgbot.WebAppInfo{URL: r.cfg.MiniAppURL}}},
			},
		},
	}
}
