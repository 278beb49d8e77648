package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/payment"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
)

// RecordPaymentCommand registers an electronic settlement that already
// succeeded at the processor.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	invoiceID     kernel.UUID
	amount        decimal.Decimal
	method        payment.Method
	transactionID string
	metadata      map[string]any

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a completed payment
// against an invoice.
func NewRecordPaymentCommand(invoiceID kernel.UUID, amount decimal.Decimal, method payment.Method, transactionID string, metadata map[string]any) (RecordPaymentCommand, error) {
	command := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInvoiceID(invoiceID),
		command.setAmount(amount),
		command.setMethod(method),
		command.setTransactionID(transactionID),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	command.metadata = metadata
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordPaymentCommandIsNotConstructed if validation fails.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// InvoiceID returns the settled invoice.
func (c RecordPaymentCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Amount returns the settled amount.
func (c RecordPaymentCommand) Amount() decimal.Decimal {
	return c.amount
}

// Method returns how the payment was made.
func (c RecordPaymentCommand) Method() payment.Method {
	return c.method
}

// TransactionID returns the processor's transaction reference.
func (c RecordPaymentCommand) TransactionID() string {
	return c.transactionID
}

// Metadata returns method-specific details to store with the payment.
func (c RecordPaymentCommand) Metadata() map[string]any {
	return c.metadata
}

func (c *RecordPaymentCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *RecordPaymentCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionId")
	}

	c.transactionID = transactionID
	return nil
}
