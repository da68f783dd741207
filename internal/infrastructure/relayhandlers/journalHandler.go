package relayhandlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"miniAppRelay/internal/domain/dto"
	"miniAppRelay/internal/domain/tgbot"
	"net/http"
	"strconv"
	"strings"
)

const (
	defaultCallsLimit = 50
	maxCallsLimit     = 500
	bearerPrefix      = "Bearer "
)

type CallLog interface {
	Recent(ctx context.Context, limit uint) ([]tgbot.APICall, error)
}

// JournalHandler отдает последние запросы к Bot API. Доступ только
// по токену чтения журнала в заголовке Authorization.
type JournalHandler struct {
	responder
	calls     CallLog
	readToken string
}

func NewJournalHandler(calls CallLog, readToken string, observer Observer, log *slog.Logger) *JournalHandler {
	return &JournalHandler{
		responder: newResponder(JournalRoute, observer, log),
		calls:     calls,
		readToken: readToken,
	}
}

func (h *JournalHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		h.WriteInResponse(w, http.StatusUnauthorized, &dto.APICallList{Calls: []tgbot.APICall{}, Error: "unauthorized"})
		return
	}

	limit := uint(defaultCallsLimit)

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 || parsed > maxCallsLimit {
			h.WriteInResponse(w, http.StatusBadRequest, &dto.APICallList{
				Calls: []tgbot.APICall{},
				Error: "limit must be an integer from 1 to " + strconv.Itoa(maxCallsLimit),
			})

			return
		}

		limit = uint(parsed)
	}

	calls, err := h.calls.Recent(r.Context(), limit)
	if err != nil {
		h.log.Error("ошибка при чтении журнала запросов", "err", err.Error())
		h.WriteInResponse(w, http.StatusInternalServerError, &dto.APICallList{Calls: []tgbot.APICall{}, Error: "journal unavailable"})

		return
	}

	if calls == nil {
		calls = []tgbot.APICall{}
	}

	h.WriteInResponse(w, http.StatusOK, &dto.APICallList{Calls: calls})
}

func (h *JournalHandler) authorized(r *http.Request) bool {
	header := r.Header.Get("Authorization")

	if h.readToken == "" || !strings.HasPrefix(header, bearerPrefix) {
		return false
	}

	token := strings.TrimPrefix(header, bearerPrefix)

	return subtle.ConstantTimeCompare([]byte(token), []byte(h.readToken)) == 1
}
