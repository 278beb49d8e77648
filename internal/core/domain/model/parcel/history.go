package parcel

import (
	"forwarding/internal/core/domain/model/kernel"
)

// Source identifies what kind of actor drove a status change.
type Source string

const (
	// SourceInternal marks operator-driven transitions through the normal
	// state machine.
	SourceInternal Source = "INTERNAL"

	// SourcePayment marks transitions applied as a side effect of a payment
	// settling, including the forced delivery on cash pickup.
	SourcePayment Source = "PAYMENT"
)

// StatusChange is one append-only history record of a parcel status
// transition. Records are never updated or deleted; for a given parcel they
// form a contiguous chain: the first record has a nil OldStatus and every
// later record's OldStatus equals its predecessor's NewStatus.
type StatusChange struct {
	ID          kernel.UUID
	ParcelID    kernel.UUID
	OldStatus   *Status
	NewStatus   Status
	Location    string
	Description string
	ChangedBy   string
	Source      Source
	Metadata    map[string]any
}

// newStatusChange builds a history record for a transition that just
// happened on the aggregate. oldStatus is nil only for the creation record.
func newStatusChange(parcelID kernel.UUID, oldStatus *Status, newStatus Status, location, description, changedBy string, source Source) StatusChange {
	return StatusChange{
		ID:          kernel.NewUUID(),
		ParcelID:    parcelID,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		Location:    location,
		Description: description,
		ChangedBy:   changedBy,
		Source:      source,
	}
}
