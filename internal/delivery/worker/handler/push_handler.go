package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"guessr/config"
	deliverycontext "guessr/internal/delivery/context"
	"guessr/internal/domain/constants"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/domain/service"
	"guessr/internal/infra/pubsub"
	"guessr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler records completed sessions delivered by Pub/Sub push
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	rankingUC      usecase.RankingUsecase
	validateToken  func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	RankingUC usecase.RankingUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google push requests carry an OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		rankingUC:      params.RankingUC,
		validateToken:  idtoken.Validate,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 2xx acknowledges the message; 503 asks Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.SessionCompletedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse session completed event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogAttrs(ctx, h.logger,
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	sessionID, err := uuid.Parse(event.SessionID)
	if err != nil {
		// Redelivery cannot fix a bad id, so acknowledge it
		reqLogger.Error("[Worker] Event carries an invalid session id",
			slog.String("session_id", event.SessionID),
		)

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Recording completed session",
		slog.String("session_id", event.SessionID),
		slog.Int("total_score", event.TotalScore),
	)

	if err := h.rankingUC.RecordCompletionBySession(ctx, sessionID); err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to record completed session",
			slog.String("session_id", event.SessionID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// isRetryable reports whether a later delivery could succeed.
func isRetryable(err error) bool {
	return domainerrors.KindOf(err) == domainerrors.CodeStorageUnavailable
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one.
// Ids that fail NormalizeRequestID are skipped.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.SessionCompletedEvent) string {
	if requestID, ok := deliverycontext.NormalizeRequestID(pushMsg.Message.Attributes["request_id"]); ok {
		return requestID
	}

	if requestID, ok := deliverycontext.NormalizeRequestID(event.RequestID); ok {
		return requestID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
