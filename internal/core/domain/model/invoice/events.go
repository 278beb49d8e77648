package invoice

import (
	"forwarding/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// PaidEventName identifies the event raised when an invoice is settled.
const PaidEventName = "invoice.paid"

// PaidEvent is raised by Invoice.MarkPaid and published after the settling
// transaction commits.
type PaidEvent struct {
	InvoiceID     kernel.UUID
	UserID        kernel.UUID
	InvoiceNumber string
	Total         decimal.Decimal
}

// EventName implements kernel.DomainEvent.
func (e PaidEvent) EventName() string { return PaidEventName }
