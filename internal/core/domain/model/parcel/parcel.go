package parcel

import (
	"errors"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")
)

// DefaultWarehouse is the intake warehouse assigned when the caller does
// not specify one.
const DefaultWarehouse = "MIA"

// DefaultLocation is the physical location recorded at intake when the
// caller does not specify one.
const DefaultLocation = "Miami Warehouse"

// ComposeTrackingNumber formats a tracking number for a year and a yearly
// sequence value: PKG-<year>-<6-digit sequence>.
func ComposeTrackingNumber(year int, sequence int64) string {
	return fmt.Sprintf("PKG-%d-%06d", year, sequence)
}

// Attributes carries the optional intake attributes of a parcel. All fields
// may be left zero; Warehouse and CurrentLocation fall back to the Miami
// defaults.
type Attributes struct {
	CategoryID            *kernel.UUID
	Carrier               string
	CarrierTrackingNumber string
	Description           string
	Weight                *decimal.Decimal
	Length                *decimal.Decimal
	Width                 *decimal.Decimal
	Height                *decimal.Decimal
	DeclaredValue         *decimal.Decimal
	Warehouse             string
	CurrentLocation       string
	Notes                 string
	InternalNotes         string
}

// Parcel is the aggregate root for a forwarded package. Its status is the
// single source of truth for lifecycle position and is mutated exclusively
// through TransitionTo, AdvanceOnPayment, and ForceDeliver, each of which
// appends a StatusChange record and keeps the shipped/delivered timestamps
// set-once.
//
// Parcel follows these invariants:
//   - Tracking number is unique and immutable once created
//   - Status transitions follow the table in statusTransitions
//   - shippedAt/deliveredAt are stamped the first time the corresponding
//     status is reached and never re-stamped
//   - Every status mutation produces exactly one pending history record
type Parcel struct {
	kernel.EventRaiser

	id              kernel.UUID
	trackingNumber  string
	userID          kernel.UUID
	customAddressID kernel.UUID
	attrs           Attributes
	status          Status
	receivedAt      *time.Time
	shippedAt       *time.Time
	deliveredAt     *time.Time

	pendingHistory []StatusChange
	isConstructed  bool
}

// NewParcel registers a parcel at intake. The parcel starts in Received
// status with receivedAt stamped, records the creation history entry
// (nil old status), and raises the Received event that drives the
// auto-invoice and client notification after commit.
func NewParcel(id kernel.UUID, trackingNumber string, userID, customAddressID kernel.UUID, attrs Attributes, createdBy string) (*Parcel, error) {
	if err := errors.Join(
		validateUUID("parcelId", id),
		validateUUID("userId", userID),
		validateUUID("customAddressId", customAddressID),
	); err != nil {
		return nil, err
	}
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	if attrs.Warehouse == "" {
		attrs.Warehouse = DefaultWarehouse
	}
	if attrs.CurrentLocation == "" {
		attrs.CurrentLocation = DefaultLocation
	}

	now := time.Now()
	p := &Parcel{
		id:              id,
		trackingNumber:  trackingNumber,
		userID:          userID,
		customAddressID: customAddressID,
		attrs:           attrs,
		status:          Received,
		receivedAt:      &now,
		isConstructed:   true,
	}

	p.pendingHistory = append(p.pendingHistory, newStatusChange(
		p.id, nil, Received, attrs.CurrentLocation, "Parcel received at US warehouse", createdBy, SourceInternal))
	p.Raise(ReceivedEvent{ParcelID: p.id, UserID: p.userID, TrackingNumber: p.trackingNumber})

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence. No history records
// or events are produced.
func RestoreParcel(
	id kernel.UUID,
	trackingNumber string,
	userID, customAddressID kernel.UUID,
	attrs Attributes,
	status Status,
	receivedAt, shippedAt, deliveredAt *time.Time,
) (*Parcel, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	return &Parcel{
		id:              id,
		trackingNumber:  trackingNumber,
		userID:          userID,
		customAddressID: customAddressID,
		attrs:           attrs,
		status:          status,
		receivedAt:      receivedAt,
		shippedAt:       shippedAt,
		deliveredAt:     deliveredAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Parcel was constructed through NewParcel or
// RestoreParcel.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID { return p.id }

// TrackingNumber returns the immutable tracking number.
func (p *Parcel) TrackingNumber() string { return p.trackingNumber }

// UserID returns the owning user.
func (p *Parcel) UserID() kernel.UUID { return p.userID }

// CustomAddressID returns the address the parcel was shipped to.
func (p *Parcel) CustomAddressID() kernel.UUID { return p.customAddressID }

// Attributes returns the intake attributes.
func (p *Parcel) Attributes() Attributes { return p.attrs }

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status { return p.status }

// ReceivedAt returns when the parcel arrived at the US warehouse.
func (p *Parcel) ReceivedAt() *time.Time { return p.receivedAt }

// ShippedAt returns when the parcel first reached Shipped status.
func (p *Parcel) ShippedAt() *time.Time { return p.shippedAt }

// DeliveredAt returns when the parcel first reached Delivered status.
func (p *Parcel) DeliveredAt() *time.Time { return p.deliveredAt }

// CurrentLocation returns the last known physical location.
func (p *Parcel) CurrentLocation() string { return p.attrs.CurrentLocation }

// UpdateAttributes replaces the parcel's intake attributes. Status,
// tracking number, ownership and lifecycle timestamps are never touched
// here. A blank warehouse or location keeps the previous value instead of
// clearing it.
func (p *Parcel) UpdateAttributes(attrs Attributes) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if attrs.Warehouse == "" {
		attrs.Warehouse = p.attrs.Warehouse
	}
	if attrs.CurrentLocation == "" {
		attrs.CurrentLocation = p.attrs.CurrentLocation
	}

	p.attrs = attrs
	return nil
}

// TransitionTo applies an operator-driven status change. The move must be
// permitted by the transition table; otherwise an InvalidTransitionError
// carrying the current status and the allowed destinations is returned.
//
// On success the location is updated when given, the shipped/delivered
// timestamps are stamped set-once, a history record is appended, and the
// status-changed (plus, when entering Received, the received) event is
// raised for post-commit publishing.
func (p *Parcel) TransitionTo(newStatus Status, location, description, changedBy string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	next, err := p.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	old := p.status
	p.applyStatus(next, location)
	p.pendingHistory = append(p.pendingHistory, newStatusChange(
		p.id, &old, next, location, description, changedBy, SourceInternal))

	p.Raise(StatusChangedEvent{
		ParcelID:       p.id,
		UserID:         p.userID,
		TrackingNumber: p.trackingNumber,
		OldStatus:      old,
		NewStatus:      next,
	})
	if next == Received {
		p.Raise(ReceivedEvent{ParcelID: p.id, UserID: p.userID, TrackingNumber: p.trackingNumber})
	}

	return nil
}

// AdvanceOnPayment applies the payment-driven transition that follows an
// electronic settlement: Customs moves to OutForDelivery and Ready moves to
// Shipped. Any other status is left unchanged and false is returned;
// payment does not imply pickup for parcels elsewhere in the pipeline.
func (p *Parcel) AdvanceOnPayment(changedBy string) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}

	var next Status
	var note string
	switch p.status {
	case Customs:
		next = OutForDelivery
		note = "Parcel cleared customs and released for delivery after payment"
	case Ready:
		next = Shipped
		note = "Parcel shipped after payment"
	default:
		return false, nil
	}

	old := p.status
	p.applyStatus(next, "")
	p.pendingHistory = append(p.pendingHistory, newStatusChange(
		p.id, &old, next, p.attrs.CurrentLocation, note, changedBy, SourcePayment))

	p.Raise(StatusChangedEvent{
		ParcelID:       p.id,
		UserID:         p.userID,
		TrackingNumber: p.trackingNumber,
		OldStatus:      old,
		NewStatus:      next,
	})

	return true, nil
}

// ForceDeliver marks the parcel Delivered regardless of the transition
// table. It exists solely for cash-at-counter settlement, where the
// customer is physically present and the handover has already happened.
// Already-delivered parcels are a no-op and false is returned. deliveredAt
// keeps its set-once semantics.
func (p *Parcel) ForceDeliver(location, receivedBy string) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if p.status == Delivered {
		return false, nil
	}

	old := p.status
	p.applyStatus(Delivered, location)
	p.pendingHistory = append(p.pendingHistory, newStatusChange(
		p.id, &old, Delivered, location,
		fmt.Sprintf("Parcel handed to client on cash payment. Received by: %s", receivedBy),
		receivedBy, SourcePayment))

	p.Raise(StatusChangedEvent{
		ParcelID:       p.id,
		UserID:         p.userID,
		TrackingNumber: p.trackingNumber,
		OldStatus:      old,
		NewStatus:      Delivered,
	})

	return true, nil
}

// PopPendingHistory returns the history records produced since the last
// call and clears them. The repository persists them in the same
// transaction as the parcel row.
func (p *Parcel) PopPendingHistory() []StatusChange {
	pending := p.pendingHistory
	p.pendingHistory = nil
	return pending
}

// applyStatus moves the aggregate to next, updates the location when given
// and stamps the set-once timestamps.
func (p *Parcel) applyStatus(next Status, location string) {
	p.status = next
	if location != "" {
		p.attrs.CurrentLocation = location
	}

	now := time.Now()
	if next == Shipped && p.shippedAt == nil {
		p.shippedAt = &now
	}
	if next == Delivered && p.deliveredAt == nil {
		p.deliveredAt = &now
	}
}

func validateUUID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
