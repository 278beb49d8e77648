// Package invoice contains the Invoice aggregate and its line items.
//
// An invoice bills a user for the shipping of one or more parcels. Its
// monetary fields obey subtotal = sum of item totals and
// total = subtotal + tax + fees, both derived at construction. Settlement
// is one-shot: MarkPaid on an already paid invoice fails with
// AlreadySettledError.
package invoice
