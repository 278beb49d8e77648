package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Add and Update also persist any pending history records drained from the
// aggregate, in the same transaction as the parcel row.
type ParcelRepository interface {
	// Add persists a new parcel together with its creation history record.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel together with any
	// pending history records.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error)

	// GetAllByIDs retrieves the parcels with the given ids that belong to
	// the given user. Parcels of other users are silently absent from the
	// result.
	GetAllByIDs(ctx context.Context, userID kernel.UUID, ids []kernel.UUID) ([]*parcel.Parcel, error)

	// GetHistory retrieves a parcel's status history in commit order.
	GetHistory(ctx context.Context, parcelID kernel.UUID) ([]parcel.StatusChange, error)
}
