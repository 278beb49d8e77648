package commands

import (
	"context"
	"strconv"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

// CreateParcelCommandHandler handles warehouse intake of parcels.
//
// The tracking number is drawn from the yearly TRACKING sequence inside
// the same transaction that inserts the parcel, so numbers stay dense and
// a failed intake rolls the sequence back. After commit the parcel's
// received event is published, which drives the auto-invoice and the
// client notification.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	categories ports.CategoryTable
	publisher  EventPublisher
}

// NewCreateParcelCommandHandler creates a handler for parcel intake
// operations.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory, categories ports.CategoryTable, publisher EventPublisher) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		categories: categories,
		publisher:  publisher,
	}
}

// Handle processes the intake command and returns the registered parcel.
//
// Fails with ObjectNotFoundError when the address code does not resolve to
// an active address, or when an explicitly given category is unknown or
// inactive.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	attrs := cmd.Attributes()
	if attrs.CategoryID != nil {
		category, err := h.categories.FindCategory(ctx, *attrs.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || !category.IsActive {
			return nil, errs.NewObjectNotFoundError("category", attrs.CategoryID.String())
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	destination, err := uow.AddressRepository().GetByCode(ctx, cmd.AddressCode())
	if err != nil {
		return nil, err
	}
	if !destination.IsActive() {
		return nil, errs.NewObjectNotFoundError("address", cmd.AddressCode().String())
	}

	year := time.Now().Year()
	sequence, err := uow.CounterRepository().Next(ctx, ports.CounterTracking, strconv.Itoa(year))
	if err != nil {
		return nil, err
	}

	registered, err := parcel.NewParcel(
		kernel.NewUUID(),
		parcel.ComposeTrackingNumber(year, sequence),
		destination.UserID(),
		destination.ID(),
		attrs,
		cmd.CreatedBy(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ParcelRepository().Add(ctx, registered); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, uow.PopEvents()...)
	return registered, nil
}
