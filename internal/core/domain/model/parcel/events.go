package parcel

import "forwarding/internal/core/domain/model/kernel"

// Event names published by the parcel aggregate.
const (
	ReceivedEventName      = "parcel.received"
	StatusChangedEventName = "parcel.status_changed"
)

// ReceivedEvent is raised when a parcel enters Received status, either at
// intake or by a later transition into Received. Exactly one invoice
// generation is triggered per occurrence; the billing engine subscribes to
// this event rather than being called from the ledger.
type ReceivedEvent struct {
	ParcelID       kernel.UUID
	UserID         kernel.UUID
	TrackingNumber string
}

// EventName implements kernel.DomainEvent.
func (ReceivedEvent) EventName() string { return ReceivedEventName }

// StatusChangedEvent is raised on every committed status mutation and feeds
// the client notification dispatcher.
type StatusChangedEvent struct {
	ParcelID       kernel.UUID
	UserID         kernel.UUID
	TrackingNumber string
	OldStatus      Status
	NewStatus      Status
}

// EventName implements kernel.DomainEvent.
func (StatusChangedEvent) EventName() string { return StatusChangedEventName }
