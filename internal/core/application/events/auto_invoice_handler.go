package events

import (
	"context"
	"fmt"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/invoice"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
)

// InvoiceGenerator issues an invoice for a set of parcels. Satisfied by
// commands.GenerateInvoiceCommandHandler.
type InvoiceGenerator interface {
	Handle(ctx context.Context, command commands.GenerateInvoiceCommand) (*invoice.Invoice, error)
}

// AutoInvoiceHandler bills a parcel the moment it is received at the US
// warehouse. Subscribed to parcel.received, so exactly one invoice is
// generated per occurrence of the event.
type AutoInvoiceHandler struct {
	generator InvoiceGenerator
}

// NewAutoInvoiceHandler creates a handler generating invoices through the
// billing engine.
func NewAutoInvoiceHandler(generator InvoiceGenerator) AutoInvoiceHandler {
	return AutoInvoiceHandler{generator: generator}
}

// Handle generates an invoice for the received parcel.
func (h AutoInvoiceHandler) Handle(ctx context.Context, event kernel.DomainEvent) error {
	received, ok := event.(parcel.ReceivedEvent)
	if !ok {
		return fmt.Errorf("unexpected event %q", event.EventName())
	}

	command, err := commands.NewGenerateInvoiceCommand(received.UserID, []kernel.UUID{received.ParcelID})
	if err != nil {
		return fmt.Errorf("create generate invoice command: %w", err)
	}

	if _, err := h.generator.Handle(ctx, command); err != nil {
		return fmt.Errorf("generate invoice for parcel %s: %w", received.TrackingNumber, err)
	}
	return nil
}
