// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrGetUserAddressesQueryIsNotConstructed = errors.New(
		"GetUserAddressesQuery must be created via NewGetUserAddressesQuery constructor",
	)
)

// GetUserAddressesQuery retrieves every forwarding address a user holds,
// together with the hub each address points at.
type GetUserAddressesQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserAddressesQuery creates a query for a user's addresses.
func NewGetUserAddressesQuery(userID kernel.UUID) (GetUserAddressesQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserAddressesQuery{}, err
	}

	return GetUserAddressesQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserAddressesQueryIsNotConstructed if validation fails.
func (q GetUserAddressesQuery) Validate() error {
	return q.guard.Validate(ErrGetUserAddressesQueryIsNotConstructed)
}

// UserID returns the queried user.
func (q GetUserAddressesQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserAddressesQueryResponse is one forwarding address in the read
// model, with the hub's display name and physical US address attached.
type GetUserAddressesQueryResponse struct {
	ID            kernel.UUID
	AddressCode   string
	Hub           string
	HubName       string
	Status        string
	IsPrimary     bool
	Street        string
	City          string
	State         string
	Zip           string
	GeneratedAt   time.Time
	DeactivatedAt *time.Time
}
