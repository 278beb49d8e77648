package payment

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was
	// not created through NewCompletedPayment or RestorePayment.
	ErrPaymentIsNotConstructed = errors.New(
		"Payment must be created via NewCompletedPayment or RestorePayment")
)

// DefaultCurrency is the settlement currency. All amounts are USD.
const DefaultCurrency = "USD"

// Method identifies how a payment was made.
type Method string

const (
	MethodCard         Method = "CARD"
	MethodCash         Method = "CASH"
	MethodBankTransfer Method = "BANK_TRANSFER"
	MethodMobileMoney  Method = "MOBILE_MONEY"
)

// String returns the method as its storage representation.
func (m Method) String() string {
	return string(m)
}

// Validate checks that the method is one of the known values.
func (m Method) Validate() error {
	switch m {
	case MethodCard, MethodCash, MethodBankTransfer, MethodMobileMoney:
		return nil
	default:
		return errs.NewValueIsInvalidError("method: " + string(m))
	}
}

// Status is the processing status of a payment.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
	StatusRefunded   Status = "REFUNDED"
)

// String returns the status as its storage representation.
func (s Status) String() string {
	return string(s)
}

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidError("status: " + string(s))
	}
}

// Payment records the settlement of an invoice. Payments are append-only;
// once written they are never modified.
type Payment struct {
	id            kernel.UUID
	invoiceID     kernel.UUID
	userID        kernel.UUID
	amount        decimal.Decimal
	currency      string
	method        Method
	status        Status
	transactionID string
	metadata      map[string]any
	processedAt   *time.Time

	isConstructed bool
}

// NewCompletedPayment records a settlement that already succeeded. The
// payment is written in COMPLETED status with processedAt stamped; there
// is no pending phase because both the card and the cash flow settle
// synchronously.
func NewCompletedPayment(id, invoiceID, userID kernel.UUID, amount decimal.Decimal, method Method, transactionID string, metadata map[string]any) (*Payment, error) {
	if err := errors.Join(
		validateUUID("paymentId", id),
		validateUUID("invoiceId", invoiceID),
		validateUUID("userId", userID),
		method.Validate(),
	); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidError("amount")
	}
	if transactionID == "" {
		return nil, errs.NewValueIsRequiredError("transactionId")
	}

	now := time.Now()
	return &Payment{
		id:            id,
		invoiceID:     invoiceID,
		userID:        userID,
		amount:        amount,
		currency:      DefaultCurrency,
		method:        method,
		status:        StatusCompleted,
		transactionID: transactionID,
		metadata:      metadata,
		processedAt:   &now,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id, invoiceID, userID kernel.UUID,
	amount decimal.Decimal,
	currency string,
	method Method,
	status Status,
	transactionID string,
	metadata map[string]any,
	processedAt *time.Time,
) (*Payment, error) {
	if err := errors.Join(method.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		invoiceID:     invoiceID,
		userID:        userID,
		amount:        amount,
		currency:      currency,
		method:        method,
		status:        status,
		transactionID: transactionID,
		metadata:      metadata,
		processedAt:   processedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Payment was constructed through NewCompletedPayment
// or RestorePayment.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// InvoiceID returns the settled invoice.
func (p *Payment) InvoiceID() kernel.UUID { return p.invoiceID }

// UserID returns the paying user.
func (p *Payment) UserID() kernel.UUID { return p.userID }

// Amount returns the settled amount.
func (p *Payment) Amount() decimal.Decimal { return p.amount }

// Currency returns the settlement currency.
func (p *Payment) Currency() string { return p.currency }

// Method returns how the payment was made.
func (p *Payment) Method() Method { return p.method }

// Status returns the processing status.
func (p *Payment) Status() Status { return p.status }

// TransactionID returns the external or synthesized transaction reference.
func (p *Payment) TransactionID() string { return p.transactionID }

// Metadata returns method-specific details, e.g. the cashier and change
// given for cash payments.
func (p *Payment) Metadata() map[string]any { return p.metadata }

// ProcessedAt returns when the payment completed.
func (p *Payment) ProcessedAt() *time.Time { return p.processedAt }

func validateUUID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
