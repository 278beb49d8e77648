package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetUnpaidInvoicesQueryIsNotConstructed = errors.New(
		"GetUnpaidInvoicesQuery must be created via NewGetUnpaidInvoicesQuery constructor",
	)
)

// GetUnpaidInvoicesQuery retrieves a user's open invoices: those in
// PENDING or OVERDUE status.
type GetUnpaidInvoicesQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnpaidInvoicesQuery creates a query for a user's open invoices.
func NewGetUnpaidInvoicesQuery(userID kernel.UUID) (GetUnpaidInvoicesQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUnpaidInvoicesQuery{}, err
	}

	return GetUnpaidInvoicesQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnpaidInvoicesQueryIsNotConstructed if validation fails.
func (q GetUnpaidInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetUnpaidInvoicesQueryIsNotConstructed)
}

// UserID returns the queried user.
func (q GetUnpaidInvoicesQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUnpaidInvoicesQueryResponse is one open invoice in the read model.
type GetUnpaidInvoicesQueryResponse struct {
	ID            kernel.UUID
	InvoiceNumber string
	Status        string
	Total         decimal.Decimal
	DueDate       time.Time
	ItemCount     int
	CreatedAt     time.Time
}
