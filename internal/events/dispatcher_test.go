package events

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPublishContinuesAfterHandlerError(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewInMemoryDispatcher(zap.New(core))

	var calls []string
	d.Subscribe(EventClaimSubmitted, func(context.Context, Event) error {
		calls = append(calls, "first")
		return errors.New("mail server down")
	})
	d.Subscribe(EventClaimSubmitted, func(context.Context, Event) error {
		calls = append(calls, "second")
		return nil
	})
	d.Subscribe(EventPayrollRunCreated, func(context.Context, Event) error {
		calls = append(calls, "other")
		return nil
	})

	if err := d.Publish(context.Background(), Event{ID: "e1", Type: EventClaimSubmitted}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("calls = %v", calls)
	}
	if logs.FilterMessage("event handler failed").Len() != 1 {
		t.Errorf("expected one logged handler failure, got %d", logs.Len())
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher(nil)
	if err := d.Publish(context.Background(), Event{Type: EventLoginFailed}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
}
