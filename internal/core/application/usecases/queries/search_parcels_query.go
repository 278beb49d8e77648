package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrSearchParcelsQueryIsNotConstructed = errors.New(
		"SearchParcelsQuery must be created via NewSearchParcelsQuery constructor",
	)
)

// SearchParcelsQuery finds parcels by any combination of owner, status,
// exact id and a free-text term matched against the tracking number, the
// carrier tracking number and the description. All filters are optional;
// an empty query lists everything, newest intake first.
type SearchParcelsQuery struct {
	parcelID *kernel.UUID
	userID   *kernel.UUID
	status   parcel.Status
	term     string

	guard guard.ConstructorGuard
}

// NewSearchParcelsQuery creates a parcel search. Nil ids and empty status
// or term mean the corresponding filter is off.
func NewSearchParcelsQuery(parcelID, userID *kernel.UUID, status parcel.Status, term string) (SearchParcelsQuery, error) {
	if parcelID != nil {
		if err := parcelID.Validate(); err != nil {
			return SearchParcelsQuery{}, err
		}
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return SearchParcelsQuery{}, err
		}
	}
	if status != "" {
		if err := status.Validate(); err != nil {
			return SearchParcelsQuery{}, err
		}
	}

	return SearchParcelsQuery{
		parcelID: parcelID,
		userID:   userID,
		status:   status,
		term:     term,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchParcelsQueryIsNotConstructed if validation fails.
func (q SearchParcelsQuery) Validate() error {
	return q.guard.Validate(ErrSearchParcelsQueryIsNotConstructed)
}

// ParcelID returns the exact-id filter, or nil when off.
func (q SearchParcelsQuery) ParcelID() *kernel.UUID { return q.parcelID }

// UserID returns the owner filter, or nil when off.
func (q SearchParcelsQuery) UserID() *kernel.UUID { return q.userID }

// Status returns the status filter, or empty when off.
func (q SearchParcelsQuery) Status() parcel.Status { return q.status }

// Term returns the free-text filter, or empty when off.
func (q SearchParcelsQuery) Term() string { return q.term }

// SearchParcelsQueryResponse is one parcel in the search read model.
type SearchParcelsQueryResponse struct {
	ID              kernel.UUID
	TrackingNumber  string
	UserID          kernel.UUID
	Status          string
	Carrier         string
	Description     string
	Warehouse       string
	CurrentLocation string
	ReceivedAt      *time.Time
}
