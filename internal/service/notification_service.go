package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
// Delivery is stubbed with log lines.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTwoFactorCodeIssued, n.handleTwoFactorCodeIssued)
	n.dispatcher.Subscribe(events.EventLoginFailed, n.handleLoginFailed)
	n.dispatcher.Subscribe(events.EventClaimSubmitted, n.handleClaimSubmitted)
	n.dispatcher.Subscribe(events.EventPayrollRunCreated, n.handlePayrollRunCreated)
}

func (n *NotificationService) handleTwoFactorCodeIssued(ctx context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.TwoFactorCodeIssuedPayload)
	n.logger.Info("TwoFactorCodeIssued",
		zap.Int64("user_id", event.Actor.UserID),
		zap.String("challenge_id", payload.ChallengeID))
	n.sendEmailNotificationStub(ctx, event, payload.Email)
	return nil
}

func (n *NotificationService) handleLoginFailed(ctx context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.LoginFailedPayload)
	n.logger.Info("LoginFailed",
		zap.String("username", payload.Username),
		zap.String("client_ip", payload.ClientIP))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleClaimSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ClaimSubmitted", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePayrollRunCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("PayrollRunCreated", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event, to string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" || strings.TrimSpace(to) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", to),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}
