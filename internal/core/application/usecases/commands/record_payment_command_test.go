package commands_test

import (
	"testing"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/payment"
	"forwarding/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordPaymentCommand_ValidInput(t *testing.T) {
	invoiceID := kernel.NewUUID()
	amount := decimal.NewFromFloat(52.40)
	cmd, err := commands.NewRecordPaymentCommand(invoiceID, amount, payment.MethodCard, "ch_3OaBcD", map[string]any{"processor": "stripe"})
	require.NoError(t, err)
	assert.Equal(t, invoiceID, cmd.InvoiceID())
	assert.True(t, cmd.Amount().Equal(amount))
	assert.Equal(t, payment.MethodCard, cmd.Method())
	assert.Equal(t, "ch_3OaBcD", cmd.TransactionID())
	assert.Equal(t, "stripe", cmd.Metadata()["processor"])
}

func TestNewRecordPaymentCommand_NonPositiveAmount(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(kernel.NewUUID(), decimal.Zero, payment.MethodCard, "ch_3OaBcD", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRecordPaymentCommand_UnknownMethod(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(kernel.NewUUID(), decimal.NewFromFloat(10), payment.Method("CRYPTO"), "tx-1", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRecordPaymentCommand_EmptyTransactionID(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(kernel.NewUUID(), decimal.NewFromFloat(10), payment.MethodCard, "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRecordCashPaymentCommand_ValidInput(t *testing.T) {
	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewRecordCashPaymentCommand(invoiceID, decimal.NewFromFloat(60), "Jean Dupont", "picked up in person")
	require.NoError(t, err)
	assert.Equal(t, invoiceID, cmd.InvoiceID())
	assert.Equal(t, "Jean Dupont", cmd.ReceivedBy())
	assert.Equal(t, "picked up in person", cmd.Notes())
}

func TestNewRecordCashPaymentCommand_EmptyReceivedBy(t *testing.T) {
	_, err := commands.NewRecordCashPaymentCommand(kernel.NewUUID(), decimal.NewFromFloat(60), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRecordCashPaymentCommand_NonPositiveAmount(t *testing.T) {
	_, err := commands.NewRecordCashPaymentCommand(kernel.NewUUID(), decimal.NewFromFloat(-5), "Jean Dupont", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
