package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetUserInvoicesQueryIsNotConstructed = errors.New(
		"GetUserInvoicesQuery must be created via NewGetUserInvoicesQuery constructor",
	)
)

// GetUserInvoicesQuery retrieves every invoice a user has received,
// settled or not.
type GetUserInvoicesQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserInvoicesQuery creates a query for a user's invoices.
func NewGetUserInvoicesQuery(userID kernel.UUID) (GetUserInvoicesQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserInvoicesQuery{}, err
	}

	return GetUserInvoicesQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserInvoicesQueryIsNotConstructed if validation fails.
func (q GetUserInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetUserInvoicesQueryIsNotConstructed)
}

// UserID returns the queried user.
func (q GetUserInvoicesQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserInvoicesQueryResponse is one invoice in the read model.
type GetUserInvoicesQueryResponse struct {
	ID            kernel.UUID
	InvoiceNumber string
	Status        string
	Total         decimal.Decimal
	DueDate       time.Time
	PaidAt        *time.Time
	ItemCount     int
	CreatedAt     time.Time
}
