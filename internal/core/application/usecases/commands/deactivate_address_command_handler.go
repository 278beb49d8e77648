package commands

import (
	"context"
)

// DeactivateAddressCommandHandler handles address deactivation. The
// operation is idempotent: deactivating an already inactive address
// commits without writing anything.
type DeactivateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewDeactivateAddressCommandHandler creates a handler for address
// deactivation operations.
func NewDeactivateAddressCommandHandler(uowFactory AddressUoWFactory) DeactivateAddressCommandHandler {
	return DeactivateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deactivation command.
func (h DeactivateAddressCommandHandler) Handle(ctx context.Context, cmd DeactivateAddressCommand) error {
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

	addressRepo := uow.AddressRepository()
	aggregate, err := addressRepo.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}

	changed, err := aggregate.Deactivate()
	if err != nil {
		return err
	}

	if changed {
		if err = addressRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
