package ports

import (
	"context"

	"dispatch/internal/core/domain/model/job"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job. Jobs enter the system when a lab marks an
	// order ready for pickup.
	Add(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job by id.
	// Returns errs.ObjectNotFound when no such job exists.
	Get(ctx context.Context, id int64) (*job.Job, error)

	// Claim atomically transitions a job from {Ready, no courier} to
	// {Assigned, courierID} and stores the handoff codes, all in one
	// conditional UPDATE whose predicate re-checks availability against the
	// row's committed state:
	//
	//	UPDATE jobs
	//	SET status = 'assigned', courier_id = ?, pickup_code = ?, delivery_code = ?
	//	WHERE id = ? AND status = 'ready' AND courier_id IS NULL
	//	RETURNING *
	//
	// Under N concurrent claims on the same job exactly one commits; the
	// rest match zero rows. Zero rows affected (the job never existed, or
	// was already claimed) returns errs.ObjectNotFound and mutates
	// nothing. This is the only operation allowed to mutate the
	// job's courier binding; availability must never be checked with a
	// separate read before a plain write.
	Claim(ctx context.Context, jobID, courierID int64, pickupCode, deliveryCode string) (*job.Job, error)
}
