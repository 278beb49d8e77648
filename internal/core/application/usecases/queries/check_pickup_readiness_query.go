package queries

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrCheckPickupReadinessQueryIsNotConstructed = errors.New(
		"CheckPickupReadinessQuery must be created via NewCheckPickupReadinessQuery constructor",
	)
)

// CheckPickupReadinessQuery asks whether a parcel can be handed to the
// client: the parcel must have reached a pickup-eligible status and its
// latest invoice must be settled. Clients key the check by the tracking
// number printed on their notification.
type CheckPickupReadinessQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewCheckPickupReadinessQuery creates a readiness check for the parcel
// with the given tracking number.
func NewCheckPickupReadinessQuery(trackingNumber string) (CheckPickupReadinessQuery, error) {
	if trackingNumber == "" {
		return CheckPickupReadinessQuery{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return CheckPickupReadinessQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCheckPickupReadinessQueryIsNotConstructed if validation fails.
func (q CheckPickupReadinessQuery) Validate() error {
	return q.guard.Validate(ErrCheckPickupReadinessQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number of the checked parcel.
func (q CheckPickupReadinessQuery) TrackingNumber() string {
	return q.trackingNumber
}

// CheckPickupReadinessQueryResponse reports whether a parcel is ready for
// pickup. When it is not, Blockers lists every reason in human-readable
// form.
type CheckPickupReadinessQueryResponse struct {
	ParcelID       kernel.UUID
	TrackingNumber string
	Status         string
	Ready          bool
	Blockers       []string
}
