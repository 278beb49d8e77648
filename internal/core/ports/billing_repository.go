package ports

import (
	"context"

	"forwarding/internal/core/domain/model/invoice"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/payment"
)

// InvoiceRepository defines the persistence contract for invoice
// aggregates. Invoice rows and their item rows are written atomically.
type InvoiceRepository interface {
	// Add persists a new invoice with all of its items.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice. Items are immutable
	// after creation and are not rewritten.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice with its items by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetLatestForParcel retrieves the most recent invoice that bills the
	// given parcel, or nil when the parcel was never invoiced.
	GetLatestForParcel(ctx context.Context, parcelID kernel.UUID) (*invoice.Invoice, error)

	// GetAllPendingPastDue retrieves every PENDING invoice whose due date
	// has passed. Used by the overdue sweep.
	GetAllPendingPastDue(ctx context.Context) ([]*invoice.Invoice, error)
}

// PaymentRepository defines the persistence contract for payment records.
// Payments are append-only.
type PaymentRepository interface {
	// Add persists a completed payment.
	Add(ctx context.Context, record *payment.Payment) error

	// GetAllForInvoice retrieves the payments of an invoice, newest first.
	GetAllForInvoice(ctx context.Context, invoiceID kernel.UUID) ([]*payment.Payment, error)
}
