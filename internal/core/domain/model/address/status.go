package address

import (
	"forwarding/internal/pkg/errs"
)

// Status is the lifecycle status of a custom address.
type Status string

const (
	// Active means the address accepts parcels and counts toward the
	// one-active-address-per-hub rule.
	Active Status = "ACTIVE"

	// Inactive means the address was deactivated and can no longer receive
	// parcels. The code itself is never reissued.
	Inactive Status = "INACTIVE"

	// Suspended means the address is temporarily blocked by an
	// administrator.
	Suspended Status = "SUSPENDED"
)

// String returns the status as its storage representation.
func (s Status) String() string {
	return string(s)
}

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	switch s {
	case Active, Inactive, Suspended:
		return nil
	default:
		return errs.NewValueIsInvalidError("status: " + string(s))
	}
}
