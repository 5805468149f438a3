// Package tracking provides the DeliveryTracking aggregate linking orders to
// their assigned drivers.
//
// A tracking record is created when a driver is assigned to an order and is
// updated by driver-facing actions as the run progresses through assigned,
// pickup_started, picked_up, delivery_started, and delivered. Reaching
// picked_up stamps the actual pickup time and delivered stamps the actual
// delivery time.
//
// The tracking status is a separate enum from the order status and nothing
// reconciles the two; an order can read completed while its tracking record
// is still assigned. The store likewise has no uniqueness constraint on the
// order reference, so readers take the first matching record.
package tracking
