// Package commands contains the write-side use cases of the dispatch core.
// Each command is a constructor-validated value; each handler depends on the
// narrowest storage contract it needs.
package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
)

// JobClaimer performs the guarded claim of a job for a courier. See
// ports.JobRepository.Claim for the atomicity contract.
type JobClaimer interface {
	Claim(ctx context.Context, jobID, courierID int64, pickupCode, deliveryCode string) (*job.Job, error)
}

// CourierStore reads and writes full courier profiles.
type CourierStore interface {
	GetByUserID(ctx context.Context, userID int64) (*courier.Courier, error)
	Update(ctx context.Context, courier *courier.Courier) error
}

// CourierLocationWriter overwrites a courier's last reported position.
type CourierLocationWriter interface {
	UpdateLocation(ctx context.Context, userID int64, location kernel.Location, at time.Time) error
}

// CourierLivenessStore marks stale couriers offline in bulk.
type CourierLivenessStore interface {
	MarkOfflineLastSeenBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
