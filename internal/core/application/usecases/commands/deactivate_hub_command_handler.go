package commands

import (
	"context"
)

// DeactivateHubCommandHandler takes a hub out of the allocation pool.
// Deactivation is idempotent; an already inactive hub commits unchanged.
type DeactivateHubCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewDeactivateHubCommandHandler creates a handler for hub deactivation.
func NewDeactivateHubCommandHandler(uowFactory AddressUoWFactory) DeactivateHubCommandHandler {
	return DeactivateHubCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hub deactivation command. An unknown hub code
// fails with ObjectNotFoundError.
func (h DeactivateHubCommandHandler) Handle(ctx context.Context, cmd DeactivateHubCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	hubRepo := uow.HubRepository()

	hub, err := hubRepo.GetByCode(ctx, cmd.Hub())
	if err != nil {
		return err
	}

	if err = hub.Deactivate(); err != nil {
		return err
	}

	if err = hubRepo.Upsert(ctx, hub); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
