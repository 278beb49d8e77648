package queries

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrGetReceiptQueryIsNotConstructed = errors.New(
		"GetReceiptQuery must be created via NewGetReceiptQuery constructor",
	)
)

// GetReceiptQuery retrieves the printable receipt data of an invoice.
type GetReceiptQuery struct {
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReceiptQuery creates a query for the given invoice's receipt.
func NewGetReceiptQuery(invoiceID kernel.UUID) (GetReceiptQuery, error) {
	if err := invoiceID.Validate(); err != nil {
		return GetReceiptQuery{}, err
	}

	return GetReceiptQuery{
		invoiceID: invoiceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReceiptQueryIsNotConstructed if validation fails.
func (q GetReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiptQueryIsNotConstructed)
}

// InvoiceID returns the invoice to print.
func (q GetReceiptQuery) InvoiceID() kernel.UUID {
	return q.invoiceID
}
