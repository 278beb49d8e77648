package invoice

import (
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one line of an invoice, billing the shipping of a single parcel.
// Total is always Quantity * UnitPrice.
type Item struct {
	ID          kernel.UUID
	InvoiceID   kernel.UUID
	ParcelID    kernel.UUID
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// NewItem builds an invoice line for a parcel. The line total is derived
// from the quantity and unit price; callers never supply it.
func NewItem(parcelID kernel.UUID, description string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if err := parcelID.Validate(); err != nil {
		return Item{}, errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, nil)
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("unitPrice")
	}

	return Item{
		ID:          kernel.NewUUID(),
		ParcelID:    parcelID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}
