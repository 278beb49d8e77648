package queries

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrGetPrimaryAddressQueryIsNotConstructed = errors.New(
		"GetPrimaryAddressQuery must be created via NewGetPrimaryAddressQuery constructor",
	)
)

// GetPrimaryAddressQuery retrieves the active primary forwarding address of
// a user, the one pre-filled on shipping labels.
type GetPrimaryAddressQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPrimaryAddressQuery creates a query for a user's primary address.
func NewGetPrimaryAddressQuery(userID kernel.UUID) (GetPrimaryAddressQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetPrimaryAddressQuery{}, err
	}

	return GetPrimaryAddressQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPrimaryAddressQueryIsNotConstructed if validation fails.
func (q GetPrimaryAddressQuery) Validate() error {
	return q.guard.Validate(ErrGetPrimaryAddressQueryIsNotConstructed)
}

// UserID returns the queried user.
func (q GetPrimaryAddressQuery) UserID() kernel.UUID {
	return q.userID
}
