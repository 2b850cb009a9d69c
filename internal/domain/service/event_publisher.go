package service

import (
	"context"
)

// SessionCompletedEvent is published once a session finishes its last round
type SessionCompletedEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	SessionID   string `json:"session_id"`
	UserID      string `json:"user_id,omitempty"` // Empty for anonymous sessions
	TotalScore  int    `json:"total_score"`
	TotalRounds int    `json:"total_rounds"`
	CompletedAt string `json:"completed_at"` // RFC3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSessionCompleted publishes a completion event for async processing
	PublishSessionCompleted(ctx context.Context, event *SessionCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
