// Package payment contains the Payment record of an invoice settlement.
//
// Payments are append-only. Both settlement flows (card and
// cash-at-counter) complete synchronously, so payments are written directly
// in COMPLETED status with processedAt stamped.
package payment
