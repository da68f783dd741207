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

const postDeleted = "Post deleted from channel"

type PostRelay interface {
	Configured() error
	DeletePost(ctx context.Context, req *dto.DeletePostRequest) error
}

// PostHandler удаляет пост из канала. Все ошибки, включая пропущенные поля,
// отдаются как 500.
type PostHandler struct {
	responder
	relay PostRelay
}

func NewPostHandler(relay PostRelay, observer Observer, log *slog.Logger) *PostHandler {
	return &PostHandler{
		responder: newResponder(PostRoute, observer, log),
		relay:     relay,
	}
}

func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.relay.Configured(); err != nil {
		h.log.Error("удаление поста невозможно, ошибка конфигурации", "err", err.Error())
		h.fail(w, err.Error())

		return
	}

	defer r.Body.Close()

	req := &dto.DeletePostRequest{}

	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		h.fail(w, fmt.Sprintf("invalid request body: %s", err))
		return
	}

	if err := h.relay.DeletePost(r.Context(), req); err != nil {
		h.log.Error("ошибка при удалении поста", "channel_id", req.ChannelID, "message_id", req.MessageID,
			"err", err.Error())

		var apiErr *tgbot.ErrBotAPI

		if errors.As(err, &apiErr) {
			h.fail(w, "Telegram API error: "+apiErr.Description)
		} else {
			h.fail(w, err.Error())
		}

		return
	}

	h.WriteInResponse(w, http.StatusOK, &dto.DeletePostResult{Success: true, Message: postDeleted})
}

func (h *PostHandler) fail(w http.ResponseWriter, reason string) {
	h.WriteInResponse(w, http.StatusInternalServerError, &dto.DeletePostResult{Success: false, Error: reason})
}
