package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"miniAppRelay/internal/domain/tgbot"
	"net/http"
	"net/url"
	"path"
)

const (
	sendMessage    = "sendMessage"
	getChat        = "getChat"
	deleteMessage  = "deleteMessage"
	setWebhook     = "setWebhook"
	getWebhookInfo = "getWebhookInfo"
	jsonType       = "application/json"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CallObserver получает результат каждого запроса к Bot API.
type CallObserver interface {
	ObserveAPICall(method string, ok bool)
}

type TgClient struct {
	basePath string
	scheme   string
	host     string
	client   HTTPClient
	observer CallObserver
}

func NewClient(client HTTPClient, token, host string) *TgClient {
	return &TgClient{
		basePath: "bot" + token,
		scheme:   "https",
		host:     host,
		client:   client,
	}
}

func (c *TgClient) SetObserver(observer CallObserver) {
	c.observer = observer
}

func (c *TgClient) SendMessage(ctx context.Context, msg *tgbot.SendMessage) error {
	if err := c.call(ctx, sendMessage, msg, nil); err != nil {
		return fmt.Errorf("при отправке сообщения в чат %d произошла ошибка: %w", msg.ChatID, err)
	}

	return nil
}

func (c *TgClient) GetChat(ctx context.Context, chatID string) (*tgbot.ChatInfo, error) {
	info := &tgbot.ChatInfo{}

	if err := c.call(ctx, getChat, &tgbot.GetChat{ChatID: chatID}, info); err != nil {
		return nil, fmt.Errorf("при получении информации о чате %s произошла ошибка: %w", chatID, err)
	}

	return info, nil
}

func (c *TgClient) DeleteMessage(ctx context.Context, chatID tgbot.ChatRef, messageID int64) error {
	data := &tgbot.DeleteMessage{ChatID: chatID, MessageID: messageID}

	if err := c.call(ctx, deleteMessage, data, nil); err != nil {
		return fmt.Errorf("при удалении сообщения %d из чата %s произошла ошибка: %w", messageID, chatID, err)
	}

	return nil
}

func (c *TgClient) SetWebhook(ctx context.Context, webhookURL string) error {
	data := &tgbot.SetWebhook{URL: webhookURL, AllowedUpdates: []string{"message"}}

	if err := c.call(ctx, setWebhook, data, nil); err != nil {
		return fmt.Errorf("при установке вебхука произошла ошибка: %w", err)
	}

	return nil
}

func (c *TgClient) WebhookInfo(ctx context.Context) (*tgbot.WebhookInfo, error) {
	info := &tgbot.WebhookInfo{}

	if err := c.call(ctx, getWebhookInfo, nil, info); err != nil {
		return nil, fmt.Errorf("при получении информации о вебхуке произошла ошибка: %w", err)
	}

	return info, nil
}

// call выполняет один запрос к Bot API. Конверт ответа разбирается при любом
// HTTP статусе: на ошибки Bot API отвечает 4xx с ok=false и description.
func (c *TgClient) call(ctx context.Context, method string, payload, result any) (err error) {
	defer func() {
		if c.observer != nil {
			c.observer.ObserveAPICall(method, err == nil)
		}
	}()

	var body io.Reader

	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("при маршалинге запроса %s возникла ошибка: %w", method, err)
		}

		body = bytes.NewBuffer(jsonData)
	}

	responseData, status, err := RequestToAPI(ctx, c.client, c.makeRequestURL(method), http.MethodPost, body)
	if err != nil {
		return err
	}

	answer := &tgbot.DefaultServerAnswer{}

	if err := json.Unmarshal(responseData, answer); err != nil {
		if status != http.StatusOK {
			return NewErrBadStatus(status)
		}

		return fmt.Errorf("при декодинге ответа сервера возникла ошибка: %w", err)
	}

	if !answer.Ok {
		code := answer.ErrorCode
		if code == 0 {
			code = status
		}

		return tgbot.NewErrBotAPI(method, code, answer.Description)
	}

	if result != nil && len(answer.Result) > 0 {
		if err := json.Unmarshal(answer.Result, result); err != nil {
			return fmt.Errorf("при декодинге результата %s возникла ошибка: %w", method, err)
		}
	}

	return nil
}

// RequestToAPI в url запроса лежит токен бота, поэтому из ошибок транспорта
// url вырезается: они уходят в логи и в тела ответов.
func RequestToAPI(ctx context.Context, client HTTPClient, reqURL *url.URL, httpMethod string, data io.Reader) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, httpMethod, reqURL.String(), data)
	if err != nil {
		return nil, 0, fmt.Errorf("при создании запроса к botApi возникла ошибка: %w", withoutURL(err))
	}

	if data != nil {
		req.Header.Add("content-type", jsonType)
	}

	r, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("запрос к botAPI закончился ошибкой: %w", withoutURL(err))
	}

	defer r.Body.Close()

	bodyData, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, r.StatusCode, fmt.Errorf("при чтении ответа botAPI возникла ошибка: %w", withoutURL(err))
	}

	return bodyData, r.StatusCode, nil
}

func withoutURL(err error) error {
	var urlErr *url.Error

	for errors.As(err, &urlErr) {
		if urlErr.Err == nil {
			return errors.New(urlErr.Op)
		}

		err = urlErr.Err
	}

	return err
}

func (c *TgClient) makeRequestURL(botMethod string) *url.URL {
	return &url.URL{
		Scheme: c.scheme,
		Host:   c.host,
		Path:   path.Join("/", c.basePath, botMethod),
	}
}
