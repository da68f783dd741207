package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "relay"

type Metrics struct {
	Updates   *prometheus.CounterVec
	APICalls  *prometheus.CounterVec
	Responses *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Updates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Telegram updates received by the webhook, by outcome",
		}, []string{"outcome"}),
		APICalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bot_api_calls_total",
			Help:      "Outbound Bot API calls, by method and result",
		}, []string{"method", "result"}),
		Responses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_responses_total",
			Help:      "HTTP responses written by the relay, by route and status",
		}, []string{"route", "status"}),
	}
}

func (m *Metrics) ObserveUpdate(outcome string) {
	m.Updates.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveAPICall(method string, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}

	m.APICalls.WithLabelValues(method, result).Inc()
}

func (m *Metrics) ObserveResponse(route string, status int) {
	m.Responses.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
