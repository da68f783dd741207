package relayservice

import (
	"context"
	"miniAppRelay/internal/domain/dto"
	"miniAppRelay/internal/domain/tgbot"
)

const (
	channelIDField = "channel_id"
	messageIDField = "message_id"
)

func (r *Relay) DeletePost(ctx context.Context, req *dto.DeletePostRequest) error {
	if err := r.Configured(); err != nil {
		return err
	}

	if req.ChannelID == "" {
		return tgbot.NewErrMissingField(channelIDField)
	}

	if req.MessageID == 0 {
		return tgbot.NewErrMissingField(messageIDField)
	}

	if err := r.tg.DeleteMessage(ctx, req.ChannelID, int64(req.MessageID)); err != nil {
		return err
	}

	r.log.Info("пост удален из канала", "channel_id", req.ChannelID, "message_id", req.MessageID)

	return nil
}
