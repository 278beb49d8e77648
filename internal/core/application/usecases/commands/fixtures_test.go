package commands_test

import (
	"time"

	"forwarding/internal/core/domain/model/address"
	"forwarding/internal/core/domain/model/invoice"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var errNotFound = errs.NewObjectNotFoundError("fixture", "missing")

func miamiHubCode() kernel.HubCode {
	hub, err := kernel.NewHubCode("MIA")
	if err != nil {
		panic(err)
	}
	return hub
}

func miamiUSAddress() address.USAddress {
	return address.USAddress{
		Street: "8425 NW 68th St",
		City:   "Miami",
		State:  "FL",
		Zip:    "33166",
	}
}

func activeHub() *address.HubAddress {
	hub, err := address.NewHubAddress(kernel.NewUUID(), miamiHubCode(), "Miami Warehouse", miamiUSAddress())
	if err != nil {
		panic(err)
	}
	return hub
}

func inactiveHub() *address.HubAddress {
	hub := activeHub()
	if err := hub.Deactivate(); err != nil {
		panic(err)
	}
	return hub
}

func activeAddress(userID kernel.UUID) *address.CustomAddress {
	a, err := address.NewCustomAddress(kernel.NewUUID(), userID, miamiHubCode(), 1, miamiUSAddress())
	if err != nil {
		panic(err)
	}
	return a
}

func parcelInStatus(userID kernel.UUID, status parcel.Status) *parcel.Parcel {
	received := time.Now().Add(-72 * time.Hour)
	p, err := parcel.RestoreParcel(
		kernel.NewUUID(),
		parcel.ComposeTrackingNumber(received.Year(), 42),
		userID,
		kernel.NewUUID(),
		parcel.Attributes{CurrentLocation: parcel.DefaultLocation, Warehouse: parcel.DefaultWarehouse},
		status,
		&received, nil, nil,
	)
	if err != nil {
		panic(err)
	}
	return p
}

func pendingInvoice(userID kernel.UUID, parcelIDs ...kernel.UUID) *invoice.Invoice {
	items := make([]invoice.Item, 0, len(parcelIDs))
	for i, parcelID := range parcelIDs {
		item, err := invoice.NewItem(parcelID, "Shipping: PKG-2026-000042", 1, decimal.NewFromFloat(15.00+float64(i)))
		if err != nil {
			panic(err)
		}
		items = append(items, item)
	}

	inv, err := invoice.NewInvoice(
		kernel.NewUUID(),
		invoice.ComposeInvoiceNumber(time.Now().Year(), 7),
		userID,
		items,
		decimal.Zero,
		decimal.NewFromFloat(5.00),
		time.Now().AddDate(0, 0, 30),
	)
	if err != nil {
		panic(err)
	}
	return inv
}
