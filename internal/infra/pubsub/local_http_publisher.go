package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"guessr/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/session-completed-sub"

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the body Google Pub/Sub posts to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// NewPushMessage wraps an event the way Pub/Sub delivers it to push subscribers.
func NewPushMessage(event *service.SessionCompletedEvent) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = uuid.New().String()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Message.Attributes = eventAttributes(event)

	return msg, nil
}

// PublishSessionCompleted posts the event to the worker push endpoint
func (p *localHTTPPublisher) PublishSessionCompleted(ctx context.Context, event *service.SessionCompletedEvent) error {
	pushMsg, err := NewPushMessage(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Session completion published",
		slog.String("endpoint", p.endpoint),
		slog.String("session_id", event.SessionID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}

// eventAttributes carries ids outside the payload for filtering and tracing.
func eventAttributes(event *service.SessionCompletedEvent) map[string]string {
	attributes := map[string]string{
		"session_id": event.SessionID,
	}
	if event.UserID != "" {
		attributes["user_id"] = event.UserID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
