package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
		"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
	)
)

// UpdateParcelStatusCommand represents an operator-driven parcel status
// transition, optionally updating the parcel's location and attaching a
// description for the history trail.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	newStatus   parcel.Status
	location    string
	description string
	changedBy   string

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to transition a parcel.
// The target status must be a known status; whether the transition is
// permitted from the parcel's current status is decided by the aggregate.
func NewUpdateParcelStatusCommand(parcelID kernel.UUID, newStatus parcel.Status, location, description, changedBy string) (UpdateParcelStatusCommand, error) {
	command := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setNewStatus(newStatus),
		command.setChangedBy(changedBy),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	command.location = location
	command.description = description
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelStatusCommandIsNotConstructed if validation fails.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the parcel to transition.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// NewStatus returns the requested target status.
func (c UpdateParcelStatusCommand) NewStatus() parcel.Status {
	return c.newStatus
}

// Location returns the new physical location, or empty to keep the
// current one.
func (c UpdateParcelStatusCommand) Location() string {
	return c.location
}

// Description returns the free-form history note.
func (c UpdateParcelStatusCommand) Description() string {
	return c.description
}

// ChangedBy returns the operator performing the transition.
func (c UpdateParcelStatusCommand) ChangedBy() string {
	return c.changedBy
}

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setNewStatus(newStatus parcel.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *UpdateParcelStatusCommand) setChangedBy(changedBy string) error {
	if changedBy == "" {
		return errs.NewValueIsRequiredError("changedBy")
	}

	c.changedBy = changedBy
	return nil
}
