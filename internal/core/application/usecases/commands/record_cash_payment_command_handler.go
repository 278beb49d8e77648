package commands

import (
	"context"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/invoice"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/payment"
	"forwarding/internal/pkg/errs"
)

// RecordCashPaymentCommandHandler settles an invoice in cash at the
// counter. Because the client is standing there, every invoiced parcel is
// marked delivered in the same transaction.
type RecordCashPaymentCommandHandler struct {
	uowFactory BillingUoWFactory
	publisher  EventPublisher
}

// NewRecordCashPaymentCommandHandler creates a handler with the provided
// unit of work factory and event publisher.
func NewRecordCashPaymentCommandHandler(uowFactory BillingUoWFactory, publisher EventPublisher) RecordCashPaymentCommandHandler {
	return RecordCashPaymentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle verifies the tendered cash covers the invoice total, settles the
// invoice for exactly that total, and hands the parcels over. The payment
// is recorded with the change given; nothing is written when the cash
// falls short or the invoice was already settled.
func (h RecordCashPaymentCommandHandler) Handle(ctx context.Context, command RecordCashPaymentCommand) (*payment.Payment, error) {
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

	changeGiven := command.Amount().Sub(aggregate.Total())
	settled, err := payment.NewCompletedPayment(
		kernel.NewUUID(),
		aggregate.ID(),
		aggregate.UserID(),
		aggregate.Total(),
		payment.MethodCash,
		fmt.Sprintf("CASH-%d", time.Now().UnixMilli()),
		map[string]any{
			"receivedBy":  command.ReceivedBy(),
			"notes":       command.Notes(),
			"changeGiven": changeGiven.StringFixed(2),
		},
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

		delivered, err := p.ForceDeliver(p.CurrentLocation(), command.ReceivedBy())
		if err != nil {
			return nil, err
		}
		if !delivered {
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
