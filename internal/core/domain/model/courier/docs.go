// Package courier defines the courier aggregate: a delivery agent owned 1:1
// by a platform user, carrying an availability flag and the last position
// reported by the courier's own device.
//
// Courier rows are single-writer resources (only the owning device reports
// positions and toggles availability), so the aggregate's mutations are
// last-write-wins by design. Contrast with the job aggregate, whose claim is
// guarded against cross-courier races at the storage layer.
package courier
