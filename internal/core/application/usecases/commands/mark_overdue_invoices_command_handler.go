package commands

import (
	"context"
	"fmt"
	"time"
)

// MarkOverdueInvoicesCommandHandler sweeps pending invoices past their due
// date into Overdue status. All updates occur within a single transaction.
type MarkOverdueInvoicesCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewMarkOverdueInvoicesCommandHandler creates a handler with the provided
// unit of work factory.
func NewMarkOverdueInvoicesCommandHandler(uowFactory BillingUoWFactory) MarkOverdueInvoicesCommandHandler {
	return MarkOverdueInvoicesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle flags every pending invoice whose due date has passed and returns
// how many were flagged.
func (h MarkOverdueInvoicesCommandHandler) Handle(ctx context.Context, command MarkOverdueInvoicesCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	now := time.Now()
	invoices, err := uow.InvoiceRepository().GetAllPendingPastDue(ctx)
	if err != nil {
		return 0, fmt.Errorf("load pending invoices: %w", err)
	}

	flagged := 0
	for _, inv := range invoices {
		changed, err := inv.MarkOverdue(now)
		if err != nil {
			return 0, err
		}
		if !changed {
			continue
		}

		if err := uow.InvoiceRepository().Update(ctx, inv); err != nil {
			return 0, fmt.Errorf("update invoice: %w", err)
		}
		flagged++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return flagged, nil
}
