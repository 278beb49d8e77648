package invoice

import (
	"errors"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was
	// not created through NewInvoice or RestoreInvoice.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice")
)

// ComposeInvoiceNumber formats an invoice number for a year and a yearly
// sequence value: INV-<year>-<6-digit sequence>.
func ComposeInvoiceNumber(year int, sequence int64) string {
	return fmt.Sprintf("INV-%d-%06d", year, sequence)
}

// Invoice is the aggregate root for a bill issued to a user for one or
// more parcels. Monetary invariant, enforced at construction:
//
//	subtotal = sum of item totals
//	total    = subtotal + tax + fees
//
// An invoice can be settled exactly once; settling an already paid invoice
// fails with AlreadySettledError.
type Invoice struct {
	kernel.EventRaiser

	id            kernel.UUID
	invoiceNumber string
	userID        kernel.UUID
	items         []Item
	status        Status
	subtotal      decimal.Decimal
	tax           decimal.Decimal
	fees          decimal.Decimal
	total         decimal.Decimal
	dueDate       time.Time
	paidAt        *time.Time

	isConstructed bool
}

// NewInvoice issues a pending invoice over the given items. Subtotal and
// total are derived; callers supply only the fees and tax components.
func NewInvoice(id kernel.UUID, invoiceNumber string, userID kernel.UUID, items []Item, tax, fees decimal.Decimal, dueDate time.Time) (*Invoice, error) {
	if err := errors.Join(
		validateUUID("invoiceId", id),
		validateUUID("userId", userID),
	); err != nil {
		return nil, err
	}
	if invoiceNumber == "" {
		return nil, errs.NewValueIsRequiredError("invoiceNumber")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	subtotal := decimal.Zero
	for i := range items {
		items[i].InvoiceID = id
		subtotal = subtotal.Add(items[i].Total)
	}

	return &Invoice{
		id:            id,
		invoiceNumber: invoiceNumber,
		userID:        userID,
		items:         items,
		status:        Pending,
		subtotal:      subtotal,
		tax:           tax,
		fees:          fees,
		total:         subtotal.Add(tax).Add(fees),
		dueDate:       dueDate,
		isConstructed: true,
	}, nil
}

// RestoreInvoice reconstructs an invoice from persistence.
func RestoreInvoice(
	id kernel.UUID,
	invoiceNumber string,
	userID kernel.UUID,
	items []Item,
	status Status,
	subtotal, tax, fees, total decimal.Decimal,
	dueDate time.Time,
	paidAt *time.Time,
) (*Invoice, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Invoice{
		id:            id,
		invoiceNumber: invoiceNumber,
		userID:        userID,
		items:         items,
		status:        status,
		subtotal:      subtotal,
		tax:           tax,
		fees:          fees,
		total:         total,
		dueDate:       dueDate,
		paidAt:        paidAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Invoice was constructed through NewInvoice or
// RestoreInvoice.
func (inv *Invoice) Validate() error {
	if inv == nil || !inv.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice's unique identifier.
func (inv *Invoice) ID() kernel.UUID { return inv.id }

// InvoiceNumber returns the human-facing invoice number.
func (inv *Invoice) InvoiceNumber() string { return inv.invoiceNumber }

// UserID returns the billed user.
func (inv *Invoice) UserID() kernel.UUID { return inv.userID }

// Items returns the invoice lines.
func (inv *Invoice) Items() []Item { return inv.items }

// Status returns the current lifecycle status.
func (inv *Invoice) Status() Status { return inv.status }

// Subtotal returns the sum of the item totals.
func (inv *Invoice) Subtotal() decimal.Decimal { return inv.subtotal }

// Tax returns the tax component.
func (inv *Invoice) Tax() decimal.Decimal { return inv.tax }

// Fees returns the fixed service fees.
func (inv *Invoice) Fees() decimal.Decimal { return inv.fees }

// Total returns the amount owed: subtotal + tax + fees.
func (inv *Invoice) Total() decimal.Decimal { return inv.total }

// DueDate returns when the invoice falls overdue.
func (inv *Invoice) DueDate() time.Time { return inv.dueDate }

// PaidAt returns when the invoice was settled, or nil while unpaid.
func (inv *Invoice) PaidAt() *time.Time { return inv.paidAt }

// MarkPaid settles the invoice. A second settlement attempt fails with
// AlreadySettledError; the first settlement stamps paidAt and raises the
// invoice-paid event.
func (inv *Invoice) MarkPaid() error {
	if err := inv.Validate(); err != nil {
		return err
	}
	if inv.status == Paid {
		return errs.NewAlreadySettledError(inv.invoiceNumber)
	}

	now := time.Now()
	inv.status = Paid
	inv.paidAt = &now

	inv.Raise(PaidEvent{
		InvoiceID:     inv.id,
		UserID:        inv.userID,
		InvoiceNumber: inv.invoiceNumber,
		Total:         inv.total,
	})

	return nil
}

// MarkOverdue flags a pending invoice whose due date has passed. Invoices
// in any other status, and pending invoices still within their due date,
// are left unchanged and false is returned.
func (inv *Invoice) MarkOverdue(now time.Time) (bool, error) {
	if err := inv.Validate(); err != nil {
		return false, err
	}
	if inv.status != Pending || !now.After(inv.dueDate) {
		return false, nil
	}

	inv.status = Overdue
	return true, nil
}

func validateUUID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
