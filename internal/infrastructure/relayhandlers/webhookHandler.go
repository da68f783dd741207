package relayhandlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"miniAppRelay/internal/application/relayservice"
	"miniAppRelay/internal/domain/dto"
	"miniAppRelay/internal/domain/tgbot"
	"net/http"
)

type UpdateRelay interface {
	Configured() error
	HandleUpdate(ctx context.Context, update *tgbot.Update) (relayservice.Outcome, error)
}

// WebhookHandler принимает апдейты от Telegram. На любую ошибку обработки
// отвечает 200 {ok:true, error}, иначе Telegram будет бесконечно повторять
// доставку того же апдейта. 500 только при отсутствии токена.
type WebhookHandler struct {
	responder
	relay UpdateRelay
}

func NewWebhookHandler(relay UpdateRelay, observer Observer, log *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		responder: newResponder(WebhookRoute, observer, log),
		relay:     relay,
	}
}

func (h *WebhookHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := h.relay.Configured(); err != nil {
		h.log.Error("вебхук не может обработать апдейт, ошибка конфигурации", "err", err.Error())
		h.WriteInResponse(w, http.StatusInternalServerError, &dto.WebhookAck{Ok: false, Error: err.Error()})

		return
	}

	defer r.Body.Close()

	bodyData, err := io.ReadAll(r.Body)
	if err != nil {
		h.acknowledgeFailure(w, fmt.Errorf("ошибка при чтении тела запроса: %w", err))
		return
	}

	update := &tgbot.Update{}

	if err = json.Unmarshal(bodyData, update); err != nil {
		h.acknowledgeFailure(w, fmt.Errorf("json апдейта не соответствует формату Update: %w", err))
		return
	}

	outcome, err := h.relay.HandleUpdate(r.Context(), update)
	if err != nil {
		h.acknowledgeFailure(w, err)
		return
	}

	h.observer.ObserveUpdate(string(outcome))
	h.log.Debug("апдейт обработан", "update_id", update.UpdateID, "outcome", outcome)
	h.WriteInResponse(w, http.StatusOK, &dto.WebhookAck{Ok: true})
}

func (h *WebhookHandler) acknowledgeFailure(w http.ResponseWriter, err error) {
	h.observer.ObserveUpdate(string(relayservice.OutcomeFailed))
	h.log.Error("ошибка при обработке апдейта", "err", err.Error())
	h.WriteInResponse(w, http.StatusOK, &dto.WebhookAck{Ok: true, Error: err.Error()})
}
