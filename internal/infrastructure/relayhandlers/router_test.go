package relayhandlers_test

import (
	"miniAppRelay/internal/application/relayservice"
	"miniAppRelay/internal/application/relayservice/mocks"
	"miniAppRelay/internal/domain/tgbot"
	"miniAppRelay/internal/infrastructure/relayhandlers"
	hmocks "miniAppRelay/internal/infrastructure/relayhandlers/mocks"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(t *testing.T, cfg relayservice.Config) *mux.Router {
	return newRouterWithJournal(t, cfg, nil)
}

func newRouterWithJournal(t *testing.T, cfg relayservice.Config, journal *relayhandlers.JournalHandler) *mux.Router {
	relay := relayservice.New(cfg, mocks.NewTgClient(t), logger)

	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return relayhandlers.NewRouter(
		relayhandlers.NewWebhookHandler(relay, nil, logger),
		relayhandlers.NewChannelHandler(relay, nil, logger),
		relayhandlers.NewPostHandler(relay, nil, logger),
		journal,
		metricsHandler,
	)
}

func TestRouter_Preflight(t *testing.T) {
	router := newTestRouter(t, testCfg)

	for _, path := range []string{relayhandlers.WebhookPath, relayhandlers.ChannelPath, relayhandlers.PostPath} {
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, path, nil))

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Empty(t, w.Body.String(), path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "apikey", path)
	}
}

func TestRouter_CORSOnResponses(t *testing.T) {
	router := newTestRouter(t, relayservice.Config{})

	type testCase struct {
		name       string
		path       string
		httpStatus int
	}

	tests := []testCase{
		{name: "вебхук без токена", path: relayhandlers.WebhookPath, httpStatus: http.StatusInternalServerError},
		{name: "проверка канала без токена", path: relayhandlers.ChannelPath, httpStatus: http.StatusInternalServerError},
		{name: "удаление поста без токена", path: relayhandlers.PostPath, httpStatus: http.StatusInternalServerError},
	}

	for _, test := range tests {
		w := httptest.NewRecorder()

		router.ServeHTTP(w, postRequest(test.path, []byte(`{}`)))

		assert.Equal(t, test.httpStatus, w.Code, test.name)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), test.name)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"), test.name)
	}
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t, testCfg)

	type testCase struct {
		name       string
		method     string
		path       string
		httpStatus int
	}

	tests := []testCase{
		{name: "health", method: http.MethodGet, path: relayhandlers.HealthPath, httpStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: relayhandlers.MetricsPath, httpStatus: http.StatusOK},
		{name: "GET на вебхук не поддерживается", method: http.MethodGet, path: relayhandlers.WebhookPath,
			httpStatus: http.StatusMethodNotAllowed},
		{name: "неизвестный путь", method: http.MethodPost, path: "/unknown", httpStatus: http.StatusNotFound},
	}

	for _, test := range tests {
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(test.method, test.path, nil))

		assert.Equal(t, test.httpStatus, w.Code, test.name)
	}
}

func TestRouter_CORSOnMuxErrors(t *testing.T) {
	router := newTestRouter(t, testCfg)

	type testCase struct {
		name       string
		method     string
		path       string
		httpStatus int
	}

	tests := []testCase{
		{name: "GET на вебхук", method: http.MethodGet, path: relayhandlers.WebhookPath,
			httpStatus: http.StatusMethodNotAllowed},
		{name: "PUT на удаление поста", method: http.MethodPut, path: relayhandlers.PostPath,
			httpStatus: http.StatusMethodNotAllowed},
		{name: "неизвестный путь", method: http.MethodPost, path: "/unknown", httpStatus: http.StatusNotFound},
	}

	for _, test := range tests {
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(test.method, test.path, nil))

		assert.Equal(t, test.httpStatus, w.Code, test.name)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), test.name)
	}
}

func TestRouter_Journal(t *testing.T) {
	w := httptest.NewRecorder()

	newTestRouter(t, testCfg).ServeHTTP(w, journalRequest("", readToken))

	assert.Equal(t, http.StatusNotFound, w.Code, "без журнала маршрут не подключается")

	calls := hmocks.NewCallLog(t)
	calls.On("Recent", mock.Anything, uint(50)).Return([]tgbot.APICall{}, nil).Once()

	router := newRouterWithJournal(t, testCfg, relayhandlers.NewJournalHandler(calls, readToken, nil, logger))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, journalRequest("", readToken))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"calls":[]}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, relayhandlers.JournalPath, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
}
