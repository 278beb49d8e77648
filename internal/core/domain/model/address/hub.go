package address

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

var (
	// ErrHubAddressIsNotConstructed is returned when a HubAddress instance
	// was not created through NewHubAddress or RestoreHubAddress.
	ErrHubAddressIsNotConstructed = errors.New(
		"HubAddress must be created via NewHubAddress or RestoreHubAddress")
)

// HubAddress is the reference-data record of a forwarding hub: its code,
// display name, and the physical US intake address copied onto every
// custom address allocated at the hub. Maintained by administrators.
type HubAddress struct {
	id        kernel.UUID
	hub       kernel.HubCode
	hubName   string
	usAddress USAddress
	isActive  bool
	updatedAt time.Time

	isConstructed bool
}

// NewHubAddress registers a hub with its US intake address. The hub starts
// active.
func NewHubAddress(id kernel.UUID, hub kernel.HubCode, hubName string, usAddress USAddress) (*HubAddress, error) {
	if err := errors.Join(
		id.Validate(),
		hub.Validate(),
		usAddress.Validate(),
	); err != nil {
		return nil, err
	}
	if hubName == "" {
		return nil, errs.NewValueIsRequiredError("hubName")
	}

	return &HubAddress{
		id:            id,
		hub:           hub,
		hubName:       hubName,
		usAddress:     usAddress,
		isActive:      true,
		updatedAt:     time.Now(),
		isConstructed: true,
	}, nil
}

// RestoreHubAddress reconstructs a hub record from persistence.
func RestoreHubAddress(id kernel.UUID, hub kernel.HubCode, hubName string, usAddress USAddress, isActive bool, updatedAt time.Time) (*HubAddress, error) {
	return &HubAddress{
		id:            id,
		hub:           hub,
		hubName:       hubName,
		usAddress:     usAddress,
		isActive:      isActive,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the HubAddress was constructed through NewHubAddress or
// RestoreHubAddress.
func (h *HubAddress) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHubAddressIsNotConstructed
	}
	return nil
}

// ID returns the hub record's unique identifier.
func (h *HubAddress) ID() kernel.UUID { return h.id }

// Hub returns the hub code.
func (h *HubAddress) Hub() kernel.HubCode { return h.hub }

// HubName returns the display name.
func (h *HubAddress) HubName() string { return h.hubName }

// USAddress returns the physical US intake address.
func (h *HubAddress) USAddress() USAddress { return h.usAddress }

// IsActive reports whether the hub currently issues addresses.
func (h *HubAddress) IsActive() bool { return h.isActive }

// UpdatedAt returns when the record was last modified.
func (h *HubAddress) UpdatedAt() time.Time { return h.updatedAt }

// Update replaces the hub's display name and US intake address and
// reactivates it. Already-allocated custom addresses keep the copy they
// were issued with.
func (h *HubAddress) Update(hubName string, usAddress USAddress) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if hubName == "" {
		return errs.NewValueIsRequiredError("hubName")
	}
	if err := usAddress.Validate(); err != nil {
		return err
	}

	h.hubName = hubName
	h.usAddress = usAddress
	h.isActive = true
	h.updatedAt = time.Now()
	return nil
}

// Deactivate stops the hub from issuing new addresses. Idempotent.
func (h *HubAddress) Deactivate() error {
	if err := h.Validate(); err != nil {
		return err
	}
	h.isActive = false
	h.updatedAt = time.Now()
	return nil
}
