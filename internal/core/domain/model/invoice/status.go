package invoice

import (
	"forwarding/internal/pkg/errs"
)

// Status is the lifecycle status of an invoice.
type Status string

const (
	// Draft means the invoice is being prepared and is not yet payable.
	Draft Status = "DRAFT"

	// Pending means the invoice awaits payment.
	Pending Status = "PENDING"

	// Paid means the invoice was settled in full.
	Paid Status = "PAID"

	// Overdue means the invoice passed its due date unpaid.
	Overdue Status = "OVERDUE"

	// Cancelled means the invoice was voided and is no longer payable.
	Cancelled Status = "CANCELLED"
)

// String returns the status as its storage representation.
func (s Status) String() string {
	return string(s)
}

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	switch s {
	case Draft, Pending, Paid, Overdue, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidError("status: " + string(s))
	}
}
