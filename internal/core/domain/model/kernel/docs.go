// Package kernel provides core domain primitives shared across the
// parcel-forwarding domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - HubCode: A value object for the 3-letter code identifying a forwarding hub
//   - AddressCode: A value object for client mailing-address codes (HT-<hub>-<seq>/A)
//   - DomainEvent / EventRaiser: primitives for post-commit domain event publishing
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
