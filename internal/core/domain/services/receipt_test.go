package services_test

import (
	"strings"
	"testing"
	"time"

	"forwarding/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceiptData() services.ReceiptData {
	return services.ReceiptData{
		InvoiceNumber: "INV-2025-000042",
		IssuedAt:      time.Date(2025, 8, 30, 14, 5, 0, 0, time.UTC),
		ClientName:    "Marie Pierre",
		ClientEmail:   "marie@example.ht",
		Lines: []services.ReceiptLine{
			{
				TrackingNumber: "PKG-2025-000101",
				Description:    "Shipping: PKG-2025-000101",
				Total:          decimal.NewFromFloat(35.00),
			},
		},
		Subtotal: decimal.NewFromFloat(35.00),
		Tax:      decimal.Zero,
		Fees:     decimal.NewFromFloat(5.00),
		Total:    decimal.NewFromFloat(40.00),
		Payment: &services.ReceiptPayment{
			Method:        "CASH",
			Amount:        decimal.NewFromFloat(40.00),
			ChangeGiven:   decimal.NewFromFloat(10.00),
			ProcessedAt:   time.Date(2025, 8, 30, 14, 6, 0, 0, time.UTC),
			TransactionID: "CASH-1756562760000",
		},
	}
}

func TestReceiptPrinter_Render(t *testing.T) {
	printer := services.NewReceiptPrinter()

	t.Run("fits the 80mm printer width", func(t *testing.T) {
		receipt := printer.Render(sampleReceiptData())

		for _, row := range strings.Split(receipt, "\n") {
			assert.LessOrEqual(t, len(row), 32, "row %q exceeds printer width", row)
		}
	})

	t.Run("carries the invoice, client and payment details", func(t *testing.T) {
		receipt := printer.Render(sampleReceiptData())

		assert.Contains(t, receipt, "INV-2025-000042")
		assert.Contains(t, receipt, "Marie Pierre")
		assert.Contains(t, receipt, "PKG-2025-000101")
		assert.Contains(t, receipt, "TOTAL: $40.00")
		assert.Contains(t, receipt, "Monnaie rendue: $10.00")
		assert.Contains(t, receipt, "CASH-1756562760000")
	})

	t.Run("skips zero tax and change lines", func(t *testing.T) {
		data := sampleReceiptData()
		data.Payment.ChangeGiven = decimal.Zero

		receipt := printer.Render(data)

		assert.NotContains(t, receipt, "Taxe:")
		assert.NotContains(t, receipt, "Monnaie rendue")
	})

	t.Run("renders without a payment section for unpaid invoices", func(t *testing.T) {
		data := sampleReceiptData()
		data.Payment = nil

		receipt := printer.Render(data)

		require.NotContains(t, receipt, "Mode:")
		assert.Contains(t, receipt, "TOTAL: $40.00")
	})

	t.Run("ends with feed lines for the cutter", func(t *testing.T) {
		receipt := printer.Render(sampleReceiptData())
		assert.True(t, strings.HasSuffix(receipt, "\n\n\n"))
	})
}
