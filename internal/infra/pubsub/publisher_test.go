package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"guessr/config"
	"guessr/internal/domain/constants"
	"guessr/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.SessionCompletedEvent {
	return &service.SessionCompletedEvent{
		RequestID:   "req-1",
		SessionID:   "0b6e3c52-8d1f-4a51-9f0e-3f0c0a4f1d11",
		UserID:      "5f1c2e7a-6a0b-4c7e-8a57-2b0c9d0e4f22",
		TotalScore:  12345,
		TotalRounds: 5,
		CompletedAt: "2026-10-17T03:00:00Z",
	}
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := testEvent()

	require.NoError(t, publisher.PublishSessionCompleted(context.Background(), event))
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.SessionID, received.Message.Attributes["session_id"])
	assert.Equal(t, event.UserID, received.Message.Attributes["user_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.SessionCompletedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishSessionCompleted(context.Background(), testEvent())
	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{
			name: "no provider falls back to noop",
			cfg:  &config.Config{},
		},
		{
			name:    "async ranking needs a provider",
			cfg:     &config.Config{Ranking: &config.RankingConfig{Async: true}},
			wantErr: "async ranking requires a pubsub provider",
		},
		{
			name:    "local without endpoint",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google without project",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}},
			wantErr: "project ID is required",
		},
		{
			name:    "unknown provider",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
			wantErr: "unknown pubsub provider",
		},
		{
			name: "local",
			cfg: &config.Config{PubSub: &config.PubSubConfig{
				Provider:      constants.PubSubProviderLocal,
				LocalEndpoint: "http://localhost:8081/push",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: tt.cfg,
				Logger: newDiscardLogger(),
			})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
