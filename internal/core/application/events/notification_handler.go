package events

import (
	"context"
	"fmt"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/ports"
)

// NotificationHandler forwards parcel lifecycle events to the client
// notifier. Subscribed to parcel.received and parcel.status_changed.
type NotificationHandler struct {
	notifier ports.Notifier
}

// NewNotificationHandler creates a handler pushing updates through the
// given notifier.
func NewNotificationHandler(notifier ports.Notifier) NotificationHandler {
	return NotificationHandler{notifier: notifier}
}

// Handle notifies the parcel owner. The notifier itself is fire-and-forget,
// so the only error path is an event of an unexpected type.
func (h NotificationHandler) Handle(ctx context.Context, event kernel.DomainEvent) error {
	switch e := event.(type) {
	case parcel.ReceivedEvent:
		h.notifier.NotifyParcelReceived(ctx, e.UserID, e.TrackingNumber)
	case parcel.StatusChangedEvent:
		h.notifier.NotifyStatusChange(ctx, e.UserID, e.TrackingNumber,
			e.OldStatus.String(), e.NewStatus.String())
	default:
		return fmt.Errorf("unexpected event %q", event.EventName())
	}
	return nil
}
