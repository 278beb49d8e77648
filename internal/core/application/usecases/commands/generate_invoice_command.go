package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrGenerateInvoiceCommandIsNotConstructed = errors.New(
		"GenerateInvoiceCommand must be created via NewGenerateInvoiceCommand constructor",
	)
)

// GenerateInvoiceCommand requests an invoice covering a set of parcels
// owned by a single user.
type GenerateInvoiceCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	parcelIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateInvoiceCommand creates a command to invoice the given parcels.
// At least one parcel is required.
func NewGenerateInvoiceCommand(userID kernel.UUID, parcelIDs []kernel.UUID) (GenerateInvoiceCommand, error) {
	command := GenerateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setParcelIDs(parcelIDs),
	); err != nil {
		return GenerateInvoiceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateInvoiceCommandIsNotConstructed if validation fails.
func (c GenerateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInvoiceCommandIsNotConstructed)
}

// UserID returns the invoiced user.
func (c GenerateInvoiceCommand) UserID() kernel.UUID {
	return c.userID
}

// ParcelIDs returns the parcels to invoice.
func (c GenerateInvoiceCommand) ParcelIDs() []kernel.UUID {
	return c.parcelIDs
}

func (c *GenerateInvoiceCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *GenerateInvoiceCommand) setParcelIDs(parcelIDs []kernel.UUID) error {
	if len(parcelIDs) == 0 {
		return errs.NewValueIsRequiredError("parcelIds")
	}
	for _, id := range parcelIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.parcelIDs = parcelIDs
	return nil
}
