package relayhandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	contentType = "Content-Type"
	jsonType    = "application/json"
)

const (
	WebhookRoute = "webhook"
	ChannelRoute = "check_channel"
	PostRoute    = "delete_post"
	JournalRoute = "bot_api_calls"
)

type Observer interface {
	ObserveUpdate(outcome string)
	ObserveResponse(route string, status int)
}

type nopObserver struct{}

func (nopObserver) ObserveUpdate(string)        {}
func (nopObserver) ObserveResponse(string, int) {}

type responder struct {
	route    string
	observer Observer
	log      *slog.Logger
}

func newResponder(route string, observer Observer, log *slog.Logger) responder {
	if observer == nil {
		observer = nopObserver{}
	}

	return responder{route: route, observer: observer, log: log}
}

func (s *responder) WriteInResponse(w http.ResponseWriter, httpStatus int, data any) {
	s.observer.ObserveResponse(s.route, httpStatus)

	w.Header().Set(contentType, jsonType)
	w.WriteHeader(httpStatus)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("при формировании json ответа произошла ошибка", "route", s.route, "err", err.Error())
	}
}
