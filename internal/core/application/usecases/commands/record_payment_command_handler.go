package commands

import (
	"context"
	"fmt"

	"forwarding/internal/core/domain/model/invoice"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/payment"
	"forwarding/internal/pkg/errs"
)

// RecordPaymentCommandHandler settles an invoice with an electronic
// payment and advances the invoiced parcels that were waiting on it.
type RecordPaymentCommandHandler struct {
	uowFactory BillingUoWFactory
	publisher  EventPublisher
}

// NewRecordPaymentCommandHandler creates a handler with the provided unit
// of work factory and event publisher.
func NewRecordPaymentCommandHandler(uowFactory BillingUoWFactory, publisher EventPublisher) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle marks the invoice paid, records the payment, and moves each
// invoiced parcel along its payment-driven transition, all in one
// transaction. Settling an already paid invoice fails with
// AlreadySettledError, and a payment below the invoice total with
// InsufficientAmountError, before anything is written.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, command RecordPaymentCommand) (*payment.Payment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	aggregate, err := uow.InvoiceRepository().Get(ctx, command.InvoiceID())
	if err != nil {
		return nil, err
	}

	if aggregate.Status() == invoice.Paid {
		return nil, errs.NewAlreadySettledError(aggregate.InvoiceNumber())
	}

	if command.Amount().LessThan(aggregate.Total()) {
		return nil, errs.NewInsufficientAmountError(
			command.Amount().StringFixed(2), aggregate.Total().StringFixed(2))
	}

	if err := aggregate.MarkPaid(); err != nil {
		return nil, err
	}

	if err := uow.InvoiceRepository().Update(ctx, aggregate); err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}

	settled, err := payment.NewCompletedPayment(
		kernel.NewUUID(),
		aggregate.ID(),
		aggregate.UserID(),
		command.Amount(),
		command.Method(),
		command.TransactionID(),
		command.Metadata(),
	)
	if err != nil {
		return nil, err
	}

	if err := uow.PaymentRepository().Add(ctx, settled); err != nil {
		return nil, fmt.Errorf("add payment: %w", err)
	}

	for _, item := range aggregate.Items() {
		p, err := uow.ParcelRepository().Get(ctx, item.ParcelID)
		if err != nil {
			return nil, err
		}

		advanced, err := p.AdvanceOnPayment("payment")
		if err != nil {
			return nil, err
		}
		if !advanced {
			continue
		}

		if err := uow.ParcelRepository().Update(ctx, p); err != nil {
			return nil, fmt.Errorf("update parcel: %w", err)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	h.publisher.Publish(ctx, uow.PopEvents()...)

	return settled, nil
}
