// Package services provides domain services that don't naturally belong to
// a single aggregate root.
//
// The package includes:
//   - Pricer: computes the shipping cost of a parcel from its category rate
//     and weight
//   - ReceiptPrinter: renders payment receipts for 80mm thermal printers
package services
