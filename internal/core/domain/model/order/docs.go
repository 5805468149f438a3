// Package order provides the Order aggregate and its lifecycle model for the
// laundry ordering flow.
//
// The package includes:
//   - Order: The aggregate root carrying service category, address, items, and total
//   - Status: The order lifecycle enum (pending, confirmed, in-progress, completed, cancelled)
//   - FlowStep: The display table mapping each status to its customer-facing step
//
// Key rules:
//   - Orders start in pending with createdAt stamped at creation
//   - Status writes check enum membership only; the intended progression is
//     not enforced and concurrent writers race with last-write-wins
//   - Orders are never deleted; completed and cancelled are terminal
//
// Order status is deliberately independent of the delivery tracking status in
// package tracking; the two are updated by different call sites and no
// invariant keeps them consistent.
package order
