// Package jobs provides scheduled background tasks.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path cannot cover.
//
// # Available Jobs
//
// 1. DriverAssignmentJob - Runs every five seconds to dispatch available
// drivers to confirmed orders that are still waiting for one. An order whose
// confirmation found no free driver is not retried by the request path; this
// sweep is what eventually assigns it.
//
// JobManager wires the jobs together and offers StartAll/StopAll for the
// application lifecycle.
package jobs
