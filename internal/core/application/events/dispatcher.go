// Package events contains the in-process domain event dispatcher and the
// handlers reacting to committed state changes. Dispatch happens after the
// producing transaction commits; a failing handler is logged and never
// propagates into the workflow that raised the event.
package events

import (
	"context"
	"log/slog"

	"forwarding/internal/core/domain/model/kernel"
)

// Handler reacts to one committed domain event.
type Handler interface {
	Handle(ctx context.Context, event kernel.DomainEvent) error
}

// Dispatcher routes committed domain events to their subscribers. It
// implements the command layer's EventPublisher port.
type Dispatcher struct {
	logger   *slog.Logger
	handlers map[string][]Handler
}

// NewDispatcher creates a dispatcher with no subscriptions.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		logger:   logger,
		handlers: make(map[string][]Handler),
	}
}

// Subscribe registers a handler for the named event. Subscriptions are made
// at composition time; Subscribe is not safe to call concurrently with
// Publish.
func (d *Dispatcher) Subscribe(eventName string, handler Handler) {
	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Publish hands each event to its subscribers in subscription order. Handler
// errors are logged and swallowed; one failing handler does not stop the
// remaining ones.
func (d *Dispatcher) Publish(ctx context.Context, events ...kernel.DomainEvent) {
	for _, event := range events {
		for _, handler := range d.handlers[event.EventName()] {
			if err := handler.Handle(ctx, event); err != nil {
				d.logger.ErrorContext(ctx, "event handler failed",
					"event", event.EventName(),
					"error", err)
			}
		}
	}
}
