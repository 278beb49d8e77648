package commands

import (
	"context"
	"fmt"

	"forwarding/internal/core/domain/model/parcel"
)

// UpdateParcelStatusCommandHandler transitions a parcel through its
// lifecycle and publishes the resulting domain events.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	publisher  EventPublisher
}

// NewUpdateParcelStatusCommandHandler creates a handler with the provided
// unit of work factory and event publisher.
func NewUpdateParcelStatusCommandHandler(uowFactory ParcelUoWFactory, publisher EventPublisher) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle transitions the parcel to the requested status. Illegal
// transitions are rejected by the aggregate and surface unchanged.
func (h UpdateParcelStatusCommandHandler) Handle(ctx context.Context, command UpdateParcelStatusCommand) (*parcel.Parcel, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	aggregate, err := uow.ParcelRepository().Get(ctx, command.ParcelID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.TransitionTo(
		command.NewStatus(),
		command.Location(),
		command.Description(),
		command.ChangedBy(),
	); err != nil {
		return nil, err
	}

	if err := uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return nil, fmt.Errorf("update parcel: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	h.publisher.Publish(ctx, uow.PopEvents()...)

	return aggregate, nil
}
