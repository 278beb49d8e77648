package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// receiptWidth is the character width of an 80mm thermal printer.
const receiptWidth = 32

// ReceiptLine is one billed parcel on a receipt.
type ReceiptLine struct {
	TrackingNumber string
	Description    string
	Total          decimal.Decimal
}

// ReceiptPayment carries the settlement details printed at the bottom of a
// receipt. ChangeGiven is printed only when positive.
type ReceiptPayment struct {
	Method        string
	Amount        decimal.Decimal
	ChangeGiven   decimal.Decimal
	ProcessedAt   time.Time
	TransactionID string
}

// ReceiptData is everything the printer needs to render one receipt. The
// caller resolves the invoice, its items and the latest payment; this
// service only formats.
type ReceiptData struct {
	InvoiceNumber string
	IssuedAt      time.Time
	ClientName    string
	ClientEmail   string
	Lines         []ReceiptLine
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Fees          decimal.Decimal
	Total         decimal.Decimal
	Payment       *ReceiptPayment
}

// ReceiptPrinter is a domain service rendering payment receipts as plain
// text for 80mm thermal printers. Labels are French, matching the slips
// handed out at the Haitian pickup counters.
type ReceiptPrinter struct{}

// NewReceiptPrinter creates a new ReceiptPrinter instance.
func NewReceiptPrinter() ReceiptPrinter {
	return ReceiptPrinter{}
}

// Render produces the full receipt text, trailing feed lines included.
func (r ReceiptPrinter) Render(data ReceiptData) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(center("SHIPPING PLATFORM") + "\n")
	b.WriteString(center("RECU DE PAIEMENT") + "\n")
	b.WriteString(line() + "\n")
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Facture: %s\n", data.InvoiceNumber))
	b.WriteString(fmt.Sprintf("Date: %s\n", data.IssuedAt.Format("02/01/2006 15:04")))
	b.WriteString(dottedLine() + "\n")

	b.WriteString(fmt.Sprintf("Client: %s\n", data.ClientName))
	b.WriteString(fmt.Sprintf("Email: %s\n", data.ClientEmail))
	b.WriteString(dottedLine() + "\n")

	b.WriteString("COLIS:\n")
	for _, item := range data.Lines {
		b.WriteString(fmt.Sprintf("  %s\n", item.TrackingNumber))
		b.WriteString(fmt.Sprintf("  %s\n", item.Description))
		b.WriteString(rightAlign("$"+item.Total.StringFixed(2), receiptWidth-2) + "\n")
	}
	b.WriteString(dottedLine() + "\n")

	b.WriteString(rightAlign(fmt.Sprintf("Sous-total: $%s", data.Subtotal.StringFixed(2)), receiptWidth) + "\n")
	if data.Tax.IsPositive() {
		b.WriteString(rightAlign(fmt.Sprintf("Taxe: $%s", data.Tax.StringFixed(2)), receiptWidth) + "\n")
	}
	if data.Fees.IsPositive() {
		b.WriteString(rightAlign(fmt.Sprintf("Frais: $%s", data.Fees.StringFixed(2)), receiptWidth) + "\n")
	}

	b.WriteString(line() + "\n")
	b.WriteString(rightAlign(fmt.Sprintf("TOTAL: $%s", data.Total.StringFixed(2)), receiptWidth) + "\n")
	b.WriteString(line() + "\n")

	if data.Payment != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Mode: %s\n", data.Payment.Method))
		b.WriteString(fmt.Sprintf("Montant recu: $%s\n", data.Payment.Amount.StringFixed(2)))
		if data.Payment.ChangeGiven.IsPositive() {
			b.WriteString(fmt.Sprintf("Monnaie rendue: $%s\n", data.Payment.ChangeGiven.StringFixed(2)))
		}
		b.WriteString(fmt.Sprintf("Paye le: %s\n", data.Payment.ProcessedAt.Format("02/01/2006 15:04")))
		b.WriteString(fmt.Sprintf("Transaction: %s\n", data.Payment.TransactionID))
	}

	b.WriteString("\n")
	b.WriteString(dottedLine() + "\n")
	b.WriteString(center("MERCI DE VOTRE CONFIANCE") + "\n")
	b.WriteString(center("www.shippingplatform.com") + "\n")
	// Feed lines so the cutter clears the printed text.
	b.WriteString("\n\n\n")

	return b.String()
}

func center(text string) string {
	padding := (receiptWidth - len(text)) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat(" ", padding) + text
}

func rightAlign(text string, width int) string {
	padding := width - len(text)
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat(" ", padding) + text
}

func line() string {
	return strings.Repeat("=", receiptWidth)
}

func dottedLine() string {
	return strings.Repeat("-", receiptWidth)
}
