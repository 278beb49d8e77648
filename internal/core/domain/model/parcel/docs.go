// Package parcel provides domain entities and business logic for the parcel
// ledger. It implements the Parcel aggregate root with lifecycle management,
// a table-driven status state machine, and an append-only status history.
//
// The package includes:
//   - Parcel: The aggregate root that manages parcel identity, attributes, and lifecycle
//   - Status: A state machine that enforces valid status transitions by set membership
//   - StatusChange: The append-only history record produced by every transition
//
// Key business rules:
//   - Tracking numbers are globally unique and immutable
//   - Status follows the fulfillment pipeline; DELIVERED, RETURNED and CANCELLED are terminal
//   - shippedAt/deliveredAt are stamped the first time those statuses are reached, never again
//   - Payment settlement drives its own transitions, distinct from the operator state machine
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package parcel
