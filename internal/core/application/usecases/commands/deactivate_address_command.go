package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"
)

var (
	ErrDeactivateAddressCommandIsNotConstructed = errors.New(
		"DeactivateAddressCommand must be created via NewDeactivateAddressCommand constructor",
	)
)

// DeactivateAddressCommand represents a request to soft-delete a custom
// address. Deactivation is idempotent; the code is never reassigned.
type DeactivateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateAddressCommand creates a command to deactivate an address.
func NewDeactivateAddressCommand(addressID kernel.UUID) (DeactivateAddressCommand, error) {
	command := DeactivateAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setAddressID(addressID); err != nil {
		return DeactivateAddressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeactivateAddressCommandIsNotConstructed if validation fails.
func (c DeactivateAddressCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateAddressCommandIsNotConstructed)
}

// AddressID returns the address to deactivate.
func (c DeactivateAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c *DeactivateAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}
