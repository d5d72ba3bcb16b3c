package worker

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/service"
)

func TestStartNotificationWorkerSubscribes(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	dispatcher := events.NewInMemoryDispatcher(logger)
	notifications := service.NewNotificationService(dispatcher, logger, config.NotificationConfig{
		EmailFrom:  "hr@example.com",
		WebhookURL: "https://hooks.example.com/hr",
	})

	StartNotificationWorker(notifications)

	_ = dispatcher.Publish(context.Background(), events.Event{
		ID:    "e1",
		Type:  events.EventTwoFactorCodeIssued,
		Actor: events.Actor{UserID: 4},
		Payload: events.TwoFactorCodeIssuedPayload{
			ChallengeID: "c1",
			Code:        "123456",
			Email:       "alice@example.com",
		},
	})
	_ = dispatcher.Publish(context.Background(), events.Event{ID: "e2", Type: events.EventClaimSubmitted})

	if logs.FilterMessage("sendEmailNotificationStub").Len() != 1 {
		t.Errorf("expected one email stub, logs: %v", logs.All())
	}
	if logs.FilterMessage("sendWebhookNotificationStub").Len() != 1 {
		t.Errorf("expected one webhook stub, logs: %v", logs.All())
	}
	for _, entry := range logs.All() {
		for _, field := range entry.Context {
			if field.String == "123456" {
				t.Fatalf("verification code leaked into log entry %q", entry.Message)
			}
		}
	}
}

func TestStartNotificationWorkerNil(t *testing.T) {
	StartNotificationWorker(nil)
}
