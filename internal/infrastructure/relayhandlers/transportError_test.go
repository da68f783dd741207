package relayhandlers_test

import (
	"miniAppRelay/internal/application/relayservice"
	"miniAppRelay/internal/infrastructure/relayhandlers"
	"miniAppRelay/internal/infrastructure/telegram"
	tgmocks "miniAppRelay/internal/infrastructure/telegram/mocks"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const secretToken = "999:SECRET-BOT-TOKEN"

func unreachableRelay(t *testing.T) *relayservice.Relay {
	client := tgmocks.NewHTTPClient(t)

	client.On("Do", mock.Anything).Return(func(r *http.Request) (*http.Response, error) {
		return nil, &url.Error{Op: "Post", URL: r.URL.String(), Err: errTg}
	})

	tgClient := telegram.NewClient(client, secretToken, "127.0.0.1:1")

	return relayservice.New(relayservice.Config{BotToken: secretToken, MiniAppURL: testAppURL}, tgClient, logger)
}

func TestHandlers_TransportErrorHidesToken(t *testing.T) {
	relay := unreachableRelay(t)

	channel := httptest.NewRecorder()

	relayhandlers.NewChannelHandler(relay, nil, logger).
		HandleCheck(channel, postRequest(relayhandlers.ChannelPath, []byte(`{"channel":"@mychannel"}`)))

	assert.Equal(t, http.StatusInternalServerError, channel.Code)
	assert.Contains(t, channel.Body.String(), errTg.Error())
	assert.NotContains(t, channel.Body.String(), secretToken)

	webhook := httptest.NewRecorder()

	relayhandlers.NewWebhookHandler(relay, nil, logger).
		HandleUpdate(webhook, postRequest(relayhandlers.WebhookPath, startUpdate))

	assert.Equal(t, http.StatusOK, webhook.Code)
	assert.Contains(t, webhook.Body.String(), errTg.Error())
	assert.NotContains(t, webhook.Body.String(), secretToken)
}
