package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrUpdateParcelCommandIsNotConstructed = errors.New(
		"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
	)
)

// UpdateParcelCommand corrects the descriptive attributes of a parcel:
// carrier data, dimensions, declared value, notes. The parcel's status,
// tracking number and owner are out of its reach; status moves only
// through UpdateParcelStatusCommand and the payment flows.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	attrs     parcel.Attributes
	updatedBy string

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand creates a command to update a parcel's attributes.
func NewUpdateParcelCommand(parcelID kernel.UUID, attrs parcel.Attributes, updatedBy string) (UpdateParcelCommand, error) {
	command := UpdateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setUpdatedBy(updatedBy),
	); err != nil {
		return UpdateParcelCommand{}, err
	}

	command.attrs = attrs
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelCommandIsNotConstructed if validation fails.
func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to update.
func (c UpdateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Attributes returns the replacement attributes.
func (c UpdateParcelCommand) Attributes() parcel.Attributes {
	return c.attrs
}

// UpdatedBy returns the operator performing the update.
func (c UpdateParcelCommand) UpdatedBy() string {
	return c.updatedBy
}

func (c *UpdateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelCommand) setUpdatedBy(updatedBy string) error {
	if updatedBy == "" {
		return errs.NewValueIsRequiredError("updatedBy")
	}

	c.updatedBy = updatedBy
	return nil
}
