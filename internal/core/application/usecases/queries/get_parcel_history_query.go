package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
		"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
	)
)

// GetParcelHistoryQuery retrieves the full status trail of a parcel in
// the order the changes were committed.
type GetParcelHistoryQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelHistoryQuery creates a query for a parcel's status history.
func NewGetParcelHistoryQuery(parcelID kernel.UUID) (GetParcelHistoryQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelHistoryQuery{}, err
	}

	return GetParcelHistoryQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelHistoryQueryIsNotConstructed if validation fails.
func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

// ParcelID returns the queried parcel.
func (q GetParcelHistoryQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// GetParcelHistoryQueryResponse is one status change in the read model.
// OldStatus is nil on the intake record.
type GetParcelHistoryQueryResponse struct {
	OldStatus   *string
	NewStatus   string
	Location    string
	Description string
	ChangedBy   string
	Source      string
	CreatedAt   time.Time
}
