// Package ports defines the persistence contracts between the dispatch core
// and its storage adapters, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Courier rows are single-writer resources (only the owning device mutates
// them), so all writes here are last-write-wins by design.
type CourierRepository interface {
	// Add persists a new courier profile.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists the full state of an existing courier profile.
	// Returns errs.ObjectNotFound when no profile exists for the courier.
	Update(ctx context.Context, courier *courier.Courier) error

	// GetByUserID retrieves a courier profile by its owning user id.
	// Returns errs.ObjectNotFound when the user has no courier profile.
	GetByUserID(ctx context.Context, userID int64) (*courier.Courier, error)

	// UpdateLocation overwrites the courier's position and last-seen
	// timestamp in a single statement, without reading first. A missing
	// profile is not an error: zero rows affected is a successful no-op,
	// matching the overwrite-only tracker semantics.
	UpdateLocation(ctx context.Context, userID int64, location kernel.Location, at time.Time) error

	// MarkOfflineLastSeenBefore flips the online flag off for every courier
	// whose last position report predates cutoff, returning how many rows
	// changed. Used by the liveness sweep.
	MarkOfflineLastSeenBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
