package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrRecordCashPaymentCommandIsNotConstructed = errors.New(
		"RecordCashPaymentCommand must be created via NewRecordCashPaymentCommand constructor",
	)
)

// RecordCashPaymentCommand settles an invoice at the counter with cash.
// The client is physically present, so the settled parcels are handed over
// in the same operation.
type RecordCashPaymentCommand struct { //nolint:recvcheck //using for validation
	invoiceID  kernel.UUID
	amount     decimal.Decimal
	receivedBy string
	notes      string

	guard guard.ConstructorGuard
}

// NewRecordCashPaymentCommand creates a command to settle an invoice in
// cash. amount is the cash tendered; receivedBy names the person taking
// delivery of the parcels.
func NewRecordCashPaymentCommand(invoiceID kernel.UUID, amount decimal.Decimal, receivedBy, notes string) (RecordCashPaymentCommand, error) {
	command := RecordCashPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInvoiceID(invoiceID),
		command.setAmount(amount),
		command.setReceivedBy(receivedBy),
	); err != nil {
		return RecordCashPaymentCommand{}, err
	}

	command.notes = notes
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordCashPaymentCommandIsNotConstructed if validation fails.
func (c RecordCashPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordCashPaymentCommandIsNotConstructed)
}

// InvoiceID returns the settled invoice.
func (c RecordCashPaymentCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Amount returns the cash tendered.
func (c RecordCashPaymentCommand) Amount() decimal.Decimal {
	return c.amount
}

// ReceivedBy returns who took delivery of the parcels.
func (c RecordCashPaymentCommand) ReceivedBy() string {
	return c.receivedBy
}

// Notes returns the cashier's free-form note.
func (c RecordCashPaymentCommand) Notes() string {
	return c.notes
}

func (c *RecordCashPaymentCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	c.invoiceID = invoiceID
	return nil
}

func (c *RecordCashPaymentCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

func (c *RecordCashPaymentCommand) setReceivedBy(receivedBy string) error {
	if receivedBy == "" {
		return errs.NewValueIsRequiredError("receivedBy")
	}

	c.receivedBy = receivedBy
	return nil
}
