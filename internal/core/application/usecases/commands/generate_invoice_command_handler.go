package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"forwarding/internal/core/domain/model/invoice"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

// Invoicing terms applied to every generated invoice.
var serviceFees = decimal.NewFromFloat(5.00)

const paymentTermDays = 30

// GenerateInvoiceCommandHandler issues an invoice over one or more parcels,
// pricing each line from the parcel's category rate.
type GenerateInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
	categories ports.CategoryTable
	pricer     services.Pricer
}

// NewGenerateInvoiceCommandHandler creates a handler with the provided unit
// of work factory and category table.
func NewGenerateInvoiceCommandHandler(uowFactory BillingUoWFactory, categories ports.CategoryTable) GenerateInvoiceCommandHandler {
	return GenerateInvoiceCommandHandler{
		uowFactory: uowFactory,
		categories: categories,
		pricer:     services.NewPricer(),
	}
}

// Handle prices each parcel, allocates the next yearly invoice number and
// persists the invoice with its items in one transaction. Parcels that do
// not belong to the billed user are treated as absent.
func (h GenerateInvoiceCommandHandler) Handle(ctx context.Context, command GenerateInvoiceCommand) (*invoice.Invoice, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	parcels, err := uow.ParcelRepository().GetAllByIDs(ctx, command.UserID(), command.ParcelIDs())
	if err != nil {
		return nil, fmt.Errorf("load parcels: %w", err)
	}
	if len(parcels) == 0 {
		return nil, errs.NewObjectNotFoundError("parcelIds", command.UserID())
	}

	items := make([]invoice.Item, 0, len(parcels))
	for _, p := range parcels {
		rate, err := h.rateFor(ctx, p)
		if err != nil {
			return nil, err
		}

		item, err := invoice.NewItem(
			p.ID(),
			fmt.Sprintf("Shipping: %s", p.TrackingNumber()),
			1,
			h.pricer.Cost(rate, p.Attributes().Weight),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	now := time.Now()
	year := now.Year()
	sequence, err := uow.CounterRepository().Next(ctx, ports.CounterInvoice, strconv.Itoa(year))
	if err != nil {
		return nil, fmt.Errorf("next invoice sequence: %w", err)
	}

	aggregate, err := invoice.NewInvoice(
		kernel.NewUUID(),
		invoice.ComposeInvoiceNumber(year, sequence),
		command.UserID(),
		items,
		decimal.Zero,
		serviceFees,
		now.AddDate(0, 0, paymentTermDays),
	)
	if err != nil {
		return nil, err
	}

	if err := uow.InvoiceRepository().Add(ctx, aggregate); err != nil {
		return nil, fmt.Errorf("add invoice: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return aggregate, nil
}

// rateFor resolves the tariff of a parcel's category, falling back to the
// default tariff for uncategorized parcels and unknown categories.
func (h GenerateInvoiceCommandHandler) rateFor(ctx context.Context, p *parcel.Parcel) (services.Rate, error) {
	categoryID := p.Attributes().CategoryID
	if categoryID == nil {
		return services.DefaultRate(), nil
	}

	category, err := h.categories.FindCategory(ctx, *categoryID)
	if err != nil {
		return services.Rate{}, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return services.DefaultRate(), nil
	}

	return category.Rate, nil
}
