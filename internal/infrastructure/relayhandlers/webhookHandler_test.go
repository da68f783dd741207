package relayhandlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"miniAppRelay/internal/application/relayservice"
	"miniAppRelay/internal/application/relayservice/mocks"
	"miniAppRelay/internal/domain/dto"
	"miniAppRelay/internal/domain/tgbot"
	"miniAppRelay/internal/infrastructure/metrics"
	"miniAppRelay/internal/infrastructure/relayhandlers"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testToken  = "12345"
	testAppURL = "https://miniapp.test"
)

var (
	logLevel = slog.LevelDebug

	logger  = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	errTg   = errors.New("ошибка в телеграм клиенте")
	testCfg = relayservice.Config{BotToken: testToken, MiniAppURL: testAppURL}

	randomStrBytes = []byte("hello word")
	startUpdate    = []byte(`{"update_id":1,"message":{"message_id":5,"from":{"id":7,"first_name":"Иван"},
		"chat":{"id":7,"type":"private"},"text":"/start"}}`)
	helpUpdate = []byte(`{"update_id":2,"message":{"message_id":6,"chat":{"id":7,"type":"private"},"text":"/help"}}`)
	noMessage  = []byte(`{"update_id":3}`)
)

func postRequest(path string, body []byte) *http.Request {
	return httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
}

func decodeAck(t *testing.T, w *httptest.ResponseRecorder) *dto.WebhookAck {
	ack := &dto.WebhookAck{}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), ack), "ошибка при анмаршалинге тела ответа")

	return ack
}

func TestWebhookHandler_HandleUpdate(t *testing.T) {
	type testCase struct {
		name       string
		body       []byte
		setup      func(tg *mocks.TgClient)
		httpStatus int
		withError  bool
		outcome    string
	}

	tests := []testCase{
		{
			name: "команда /start, отправляется одно приветствие",
			body: startUpdate,
			setup: func(tg *mocks.TgClient) {
				tg.On("SendMessage", mock.Anything, mock.MatchedBy(func(msg *tgbot.SendMessage) bool {
					return msg.ChatID == 7
				})).Return(nil).Once()
			},
			httpStatus: http.StatusOK,
			outcome:    "welcomed",
		},
		{
			name:       "другая команда принимается без ответа",
			body:       helpUpdate,
			httpStatus: http.StatusOK,
			outcome:    "ignored",
		},
		{
			name:       "апдейт без сообщения",
			body:       noMessage,
			httpStatus: http.StatusOK,
			outcome:    "ignored",
		},
		{
			name:       "тело запроса не json, все равно 200",
			body:       randomStrBytes,
			httpStatus: http.StatusOK,
			withError:  true,
			outcome:    "failed",
		},
		{
			name: "ошибка Bot API маскируется ответом 200",
			body: startUpdate,
			setup: func(tg *mocks.TgClient) {
				tg.On("SendMessage", mock.Anything, mock.Anything).Return(errTg).Once()
			},
			httpStatus: http.StatusOK,
			withError:  true,
			outcome:    "failed",
		},
	}

	for _, test := range tests {
		tg := mocks.NewTgClient(t)

		if test.setup != nil {
			test.setup(tg)
		}

		m := metrics.New(prometheus.NewRegistry())
		handler := relayhandlers.NewWebhookHandler(relayservice.New(testCfg, tg, logger), m, logger)
		w := httptest.NewRecorder()

		handler.HandleUpdate(w, postRequest(relayhandlers.WebhookPath, test.body))

		assert.Equal(t, test.httpStatus, w.Code, test.name)

		ack := decodeAck(t, w)

		assert.True(t, ack.Ok, test.name)
		assert.Equal(t, test.withError, ack.Error != "", test.name)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Updates.WithLabelValues(test.outcome)), test.name)
	}
}

func TestWebhookHandler_WithoutToken(t *testing.T) {
	tg := mocks.NewTgClient(t)
	handler := relayhandlers.NewWebhookHandler(relayservice.New(relayservice.Config{}, tg, logger), nil, logger)
	w := httptest.NewRecorder()

	handler.HandleUpdate(w, postRequest(relayhandlers.WebhookPath, startUpdate))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	ack := decodeAck(t, w)

	assert.False(t, ack.Ok)
	assert.Equal(t, tgbot.ErrNoToken.Error(), ack.Error)
	tg.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}
