// Package ports defines repository and collaborator interfaces for the
// forwarding domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"forwarding/internal/core/domain/model/address"
	"forwarding/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for custom address
// aggregates.
type AddressRepository interface {
	// Add persists a newly allocated address. The address code carries a
	// unique constraint; a duplicate code surfaces as a conflict error.
	Add(ctx context.Context, aggregate *address.CustomAddress) error

	// Update persists changes to an existing address.
	Update(ctx context.Context, aggregate *address.CustomAddress) error

	// Get retrieves an address by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*address.CustomAddress, error)

	// GetByCode retrieves an address by its full code string.
	GetByCode(ctx context.Context, code kernel.AddressCode) (*address.CustomAddress, error)

	// FindActiveByUserAndHub returns the user's ACTIVE address at the hub,
	// or nil when the user holds none. Used for the one-active-address-
	// per-hub check during allocation.
	FindActiveByUserAndHub(ctx context.Context, userID kernel.UUID, hub kernel.HubCode) (*address.CustomAddress, error)

	// GetAllForUser retrieves every address of a user, newest first.
	GetAllForUser(ctx context.Context, userID kernel.UUID) ([]*address.CustomAddress, error)

	// GetPrimaryForUser retrieves the user's primary active address, or
	// nil when the user has none.
	GetPrimaryForUser(ctx context.Context, userID kernel.UUID) (*address.CustomAddress, error)
}

// HubRepository defines the persistence contract for hub reference data.
type HubRepository interface {
	// Upsert creates or replaces the hub record keyed by hub code.
	Upsert(ctx context.Context, hub *address.HubAddress) error

	// GetByCode retrieves a hub by its 3-letter code.
	GetByCode(ctx context.Context, code kernel.HubCode) (*address.HubAddress, error)

	// GetAll retrieves every registered hub.
	GetAll(ctx context.Context) ([]*address.HubAddress, error)
}
