// Package address contains the CustomAddress aggregate and the HubAddress
// reference entity.
//
// A CustomAddress is a client's proxy mailing address at a forwarding hub.
// Its code (HT-<hub>-<NNNNN>/A) is composed from a hub-local sequence value
// and is immutable once issued; deactivation is soft and codes are never
// reassigned. A HubAddress holds the hub's display name and its physical
// US intake address, a copy of which is stamped onto every address
// allocated at the hub.
package address
