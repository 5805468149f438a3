// Package services provides domain services that coordinate business operations
// across multiple aggregates. It hosts logic that does not naturally belong to
// a single aggregate root.
//
// The package includes:
//   - DriverDispatcher: picks a driver for an order from the available pool
package services
