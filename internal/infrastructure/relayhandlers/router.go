package relayhandlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	WebhookPath = "/telegram-webhook"
	ChannelPath = "/check-telegram-channel"
	PostPath    = "/delete-channel-post"
	JournalPath = "/bot-api-calls"
	MetricsPath = "/metrics"
	HealthPath  = "/health"
)

// NewRouter journal и metrics могут быть nil, тогда их маршруты не подключаются.
func NewRouter(webhook *WebhookHandler, channel *ChannelHandler, post *PostHandler, journal *JournalHandler,
	metrics http.Handler) *mux.Router {
	r := mux.NewRouter()

	// ответы mux на неподдерживаемый метод и неизвестный путь идут в обход
	// middleware саброутера, поэтому CORS навешивается на них отдельно.
	r.MethodNotAllowedHandler = CORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
	r.NotFoundHandler = CORS(http.NotFoundHandler())

	relay := r.NewRoute().Subrouter()
	relay.Use(CORS)

	relay.HandleFunc(WebhookPath, webhook.HandleUpdate).Methods(http.MethodPost, http.MethodOptions)
	relay.HandleFunc(ChannelPath, channel.HandleCheck).Methods(http.MethodPost, http.MethodOptions)
	relay.HandleFunc(PostPath, post.HandleDelete).Methods(http.MethodPost, http.MethodOptions)

	if journal != nil {
		relay.HandleFunc(JournalPath, journal.HandleRecent).Methods(http.MethodGet, http.MethodOptions)
	}

	if metrics != nil {
		r.Handle(MetricsPath, metrics).Methods(http.MethodGet)
	}

	r.HandleFunc(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return r
}
