package relayhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"miniAppRelay/internal/domain/dto"
	"miniAppRelay/internal/domain/tgbot"
	"net/http"
)

type ChannelRelay interface {
	Configured() error
	CheckChannel(ctx context.Context, raw string) (*dto.ChannelCheck, error)
}

type ChannelHandler struct {
	responder
	relay ChannelRelay
}

func NewChannelHandler(relay ChannelRelay, observer Observer, log *slog.Logger) *ChannelHandler {
	return &ChannelHandler{
		responder: newResponder(ChannelRoute, observer, log),
		relay:     relay,
	}
}

func (h *ChannelHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.relay.Configured(); err != nil {
		h.log.Error("проверка канала невозможна, ошибка конфигурации", "err", err.Error())
		h.WriteInResponse(w, http.StatusInternalServerError, dto.ChannelUnknown(err.Error()))

		return
	}

	defer r.Body.Close()

	req := &dto.ChannelCheckRequest{}

	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		h.WriteInResponse(w, http.StatusBadRequest, dto.ChannelNotFound(fmt.Sprintf("invalid request body: %s", err)))
		return
	}

	res, err := h.relay.CheckChannel(r.Context(), req.Channel)

	var missing *tgbot.ErrMissingField

	switch {
	case errors.As(err, &missing):
		h.WriteInResponse(w, http.StatusBadRequest, dto.ChannelNotFound(missing.Error()))
	case errors.Is(err, tgbot.ErrNoToken):
		h.WriteInResponse(w, http.StatusInternalServerError, dto.ChannelUnknown(err.Error()))
	case err != nil:
		h.log.Error("ошибка при проверке канала", "channel", req.Channel, "err", err.Error())
		h.WriteInResponse(w, http.StatusInternalServerError, dto.ChannelNotFound(err.Error()))
	default:
		h.WriteInResponse(w, http.StatusOK, res)
	}
}
