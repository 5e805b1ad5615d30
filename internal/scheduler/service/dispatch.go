package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/huddle/internal/scheduler/domain"
	"github.com/aussiebroadwan/huddle/pkg/pushx"
	"github.com/aussiebroadwan/huddle/pkg/slogx"
)

// PushTransport delivers one message to a batch of device tokens.
// *pushx.Client satisfies it.
type PushTransport interface {
	Send(ctx context.Context, msg pushx.Message) ([]pushx.Ticket, error)
}

// Link tells the client which screen to open when the notification is
// tapped.
type Link struct {
	Route  string
	Params map[string]string
}

// Payload is the notification data in the shape the mobile app expects:
// {"navigate": {"route": ..., "params": {...}}}.
func (l Link) Payload() map[string]any {
	params := make(map[string]any, len(l.Params))
	for k, v := range l.Params {
		params[k] = v
	}
	return map[string]any{
		"navigate": map[string]any{
			"route":  l.Route,
			"params": params,
		},
	}
}

// FanoutReport describes what a fan-out actually did.
type FanoutReport struct {
	// Tokens is the exact set handed to the transport, in recipient order.
	Tokens []string
	// Sent is false when nobody had a token and the transport was not called.
	Sent bool
}

// Status maps the fan-out outcome to the audit status recorded for it.
func (r FanoutReport) Status(err error) domain.DispatchStatus {
	switch {
	case err != nil:
		return domain.DispatchFailed
	case !r.Sent:
		return domain.DispatchSkipped
	default:
		return domain.DispatchSent
	}
}

// NotificationDispatcher fans one notification out to a set of people
// through a PushTransport.
type NotificationDispatcher struct {
	Transport PushTransport
	Sound     string
}

// Fanout notifies every recipient except excludeID. Recipients without a
// delivery token are dropped quietly. When nobody is left the transport is
// never touched; otherwise it is called exactly once with the whole batch.
// Failures come back as *DispatchError and never panic.
func (d *NotificationDispatcher) Fanout(
	ctx context.Context,
	recipients []domain.Person,
	excludeID string,
	title, body string,
	link Link,
) (FanoutReport, error) {
	l := slogx.FromContext(ctx)

	tokens := make([]string, 0, len(recipients))
	for _, p := range recipients {
		if p.ID == excludeID || !p.HasDeliveryToken() {
			continue
		}
		tokens = append(tokens, p.DeliveryToken)
	}

	report := FanoutReport{Tokens: tokens}
	if len(tokens) == 0 {
		l.Debug("no recipients with delivery tokens, skipping push")
		return report, nil
	}

	report.Sent = true
	_, err := d.Transport.Send(ctx, pushx.Message{
		To:    tokens,
		Title: title,
		Body:  body,
		Data:  link.Payload(),
		Sound: d.Sound,
	})
	if err != nil {
		l.Warn("push delivery failed",
			slog.Int("recipients", len(tokens)),
			slog.Any("error", err),
		)
		return report, &DispatchError{Err: err}
	}

	l.Info("push delivered", slog.Int("recipients", len(tokens)))
	return report, nil
}
