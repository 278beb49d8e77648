package queries

import (
	"errors"

	"forwarding/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetBillingStatisticsQueryIsNotConstructed = errors.New(
		"GetBillingStatisticsQuery must be created via NewGetBillingStatisticsQuery constructor",
	)
)

// GetBillingStatisticsQuery retrieves revenue figures over all invoices
// and payments. This is a parameterless query used by the admin dashboard.
type GetBillingStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBillingStatisticsQuery creates a query for billing statistics.
func NewGetBillingStatisticsQuery() GetBillingStatisticsQuery {
	return GetBillingStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBillingStatisticsQueryIsNotConstructed if validation fails.
func (q GetBillingStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetBillingStatisticsQueryIsNotConstructed)
}

// GetBillingStatisticsQueryResponse aggregates invoicing and collection
// figures. Outstanding is the sum still owed on PENDING and OVERDUE
// invoices; Collected is the sum of completed payments.
type GetBillingStatisticsQueryResponse struct {
	InvoiceCount     int64
	InvoicesByStatus map[string]int64
	TotalInvoiced    decimal.Decimal
	Outstanding      decimal.Decimal
	Collected        decimal.Decimal
}
