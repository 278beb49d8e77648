package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCashPaymentsQueryIsNotConstructed = errors.New(
		"GetCashPaymentsQuery must be created via NewGetCashPaymentsQuery constructor",
	)
)

// GetCashPaymentsQuery retrieves the cash payments taken at the counter
// within a date range, for end-of-day cash drawer reconciliation.
type GetCashPaymentsQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetCashPaymentsQuery creates a query over the half-open range
// [from, to).
func NewGetCashPaymentsQuery(from, to time.Time) (GetCashPaymentsQuery, error) {
	if !to.After(from) {
		return GetCashPaymentsQuery{}, errs.NewValueIsInvalidError("range")
	}

	return GetCashPaymentsQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCashPaymentsQueryIsNotConstructed if validation fails.
func (q GetCashPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetCashPaymentsQueryIsNotConstructed)
}

// From returns the inclusive range start.
func (q GetCashPaymentsQuery) From() time.Time { return q.from }

// To returns the exclusive range end.
func (q GetCashPaymentsQuery) To() time.Time { return q.to }

// GetCashPaymentsQueryRecord is one counter cash payment in the read
// model.
type GetCashPaymentsQueryRecord struct {
	ID            kernel.UUID
	InvoiceNumber string
	Amount        decimal.Decimal
	TransactionID string
	ReceivedBy    string
	ProcessedAt   time.Time
}

// GetCashPaymentsQueryResponse lists the range's cash payments with the
// total collected.
type GetCashPaymentsQueryResponse struct {
	Payments       []GetCashPaymentsQueryRecord
	TotalCollected decimal.Decimal
}
