// Package mq publishes verification events to the message broker.
package mq

import (
	"context"
	"encoding/json"

	"github.com/verimail/verimail/internal/pkg/instrument"
	"github.com/verimail/verimail/internal/pkg/messaging"
	"github.com/verimail/verimail/internal/shared/event"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const keyOfCorrelationID = "cID"

// EventPublisher emits verification lifecycle events.
type EventPublisher struct {
	publisher messaging.Publisher
	tracer    trace.Tracer
}

// NewEventPublisher wraps a broker publisher.
func NewEventPublisher(pub messaging.Publisher, ins instrument.Instrumentation) *EventPublisher {
	return &EventPublisher{
		publisher: pub,
		tracer:    ins.Tracer("verification.outbound.mq"),
	}
}

// PublishEmailVerified announces that an address passed verification.
func (p *EventPublisher) PublishEmailVerified(ctx context.Context, msg event.EmailVerifiedMessage) error {
	ctx, span := p.tracer.Start(ctx, "mq.EventPublisher.PublishEmailVerified", trace.WithAttributes(
		attribute.String("messaging.destination", event.EmailVerifiedDestination),
	))
	defer span.End()

	body, err := json.Marshal(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	out := messaging.OutgoingMessage{
		Body: body,
		Key:  []byte(msg.Email),
	}
	if cid := instrument.GetCorrelationID(ctx); cid != "" {
		out.Headers = append(out.Headers, messaging.Header{Key: keyOfCorrelationID, Value: []byte(cid)})
	}

	if _, err := p.publisher.Publish(ctx, event.EmailVerifiedDestination, out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
