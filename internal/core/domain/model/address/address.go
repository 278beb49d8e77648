package address

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

var (
	// ErrCustomAddressIsNotConstructed is returned when a CustomAddress
	// instance was not created through NewCustomAddress or
	// RestoreCustomAddress.
	ErrCustomAddressIsNotConstructed = errors.New(
		"CustomAddress must be created via NewCustomAddress or RestoreCustomAddress")
)

// USAddress is the physical US intake address a hub receives parcels at.
// Allocated custom addresses carry a copy of their hub's US address as it
// stood at allocation time.
type USAddress struct {
	Street string
	City   string
	State  string
	Zip    string
}

// Validate checks that all components are present.
func (u USAddress) Validate() error {
	if u.Street == "" || u.City == "" || u.State == "" || u.Zip == "" {
		return errs.NewValueIsRequiredError("usAddress")
	}
	return nil
}

// CustomAddress is the aggregate root for a client's proxy mailing address
// at a hub. The code and its sequence value are immutable once issued;
// deactivation is a soft operation and the code is never reassigned to
// another client.
type CustomAddress struct {
	id            kernel.UUID
	userID        kernel.UUID
	code          kernel.AddressCode
	hub           kernel.HubCode
	sequenceValue int64
	status        Status
	isPrimary     bool
	usAddress     USAddress
	generatedAt   time.Time
	deactivatedAt *time.Time

	isConstructed bool
}

// NewCustomAddress issues a new active primary address for a user at a hub.
// The address code is composed from the hub and the hub-local sequence
// value handed out by the sequence store.
func NewCustomAddress(id, userID kernel.UUID, hub kernel.HubCode, sequenceValue int64, usAddress USAddress) (*CustomAddress, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		hub.Validate(),
		usAddress.Validate(),
	); err != nil {
		return nil, err
	}

	code, err := kernel.ComposeAddressCode(hub, sequenceValue)
	if err != nil {
		return nil, err
	}

	return &CustomAddress{
		id:            id,
		userID:        userID,
		code:          code,
		hub:           hub,
		sequenceValue: sequenceValue,
		status:        Active,
		isPrimary:     true,
		usAddress:     usAddress,
		generatedAt:   time.Now(),
		isConstructed: true,
	}, nil
}

// RestoreCustomAddress reconstructs a custom address from persistence.
func RestoreCustomAddress(
	id, userID kernel.UUID,
	code kernel.AddressCode,
	hub kernel.HubCode,
	sequenceValue int64,
	status Status,
	isPrimary bool,
	usAddress USAddress,
	generatedAt time.Time,
	deactivatedAt *time.Time,
) (*CustomAddress, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &CustomAddress{
		id:            id,
		userID:        userID,
		code:          code,
		hub:           hub,
		sequenceValue: sequenceValue,
		status:        status,
		isPrimary:     isPrimary,
		usAddress:     usAddress,
		generatedAt:   generatedAt,
		deactivatedAt: deactivatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the CustomAddress was constructed through
// NewCustomAddress or RestoreCustomAddress.
func (a *CustomAddress) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrCustomAddressIsNotConstructed
	}
	return nil
}

// ID returns the address's unique identifier.
func (a *CustomAddress) ID() kernel.UUID { return a.id }

// UserID returns the owning user.
func (a *CustomAddress) UserID() kernel.UUID { return a.userID }

// Code returns the immutable address code.
func (a *CustomAddress) Code() kernel.AddressCode { return a.code }

// Hub returns the hub the address belongs to.
func (a *CustomAddress) Hub() kernel.HubCode { return a.hub }

// SequenceValue returns the hub-local sequence value the code was issued
// from.
func (a *CustomAddress) SequenceValue() int64 { return a.sequenceValue }

// Status returns the current lifecycle status.
func (a *CustomAddress) Status() Status { return a.status }

// IsPrimary reports whether this is the user's primary address.
func (a *CustomAddress) IsPrimary() bool { return a.isPrimary }

// USAddress returns the copied US intake address.
func (a *CustomAddress) USAddress() USAddress { return a.usAddress }

// GeneratedAt returns when the address was issued.
func (a *CustomAddress) GeneratedAt() time.Time { return a.generatedAt }

// DeactivatedAt returns when the address was deactivated, or nil while it
// is still active.
func (a *CustomAddress) DeactivatedAt() *time.Time { return a.deactivatedAt }

// IsActive reports whether the address currently accepts parcels.
func (a *CustomAddress) IsActive() bool {
	return a.status == Active
}

// Deactivate soft-deletes the address. Deactivating an already inactive
// address is a no-op and false is returned.
func (a *CustomAddress) Deactivate() (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	if a.status == Inactive {
		return false, nil
	}

	now := time.Now()
	a.status = Inactive
	a.isPrimary = false
	a.deactivatedAt = &now
	return true, nil
}
