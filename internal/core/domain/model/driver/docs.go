// Package driver provides the Driver aggregate for the delivery fleet.
//
// Drivers are created by admin action and carry contact details, vehicle
// information, an informational rating, and a lifetime delivery counter.
// Availability is a three-state enum (available, busy, offline): assignment
// marks a driver busy implicitly, while going back to available or offline is
// an explicit status call. Completing a delivery does not free the driver.
package driver
