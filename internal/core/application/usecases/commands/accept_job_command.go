package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAcceptJobCommandIsNotConstructed = errors.New(
	"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
)

// AcceptJobCommand is a courier's attempt to claim a delivery job from the
// dispatch pool. Losing the claim race is an expected outcome, not a fault.
type AcceptJobCommand struct {
	jobID     int64
	courierID int64
	guard     guard.ConstructorGuard
}

// NewAcceptJobCommand creates a claim attempt for the given job by the given
// courier (identified by user id).
func NewAcceptJobCommand(jobID, courierID int64) (AcceptJobCommand, error) {
	if jobID <= 0 {
		return AcceptJobCommand{}, errs.NewValueIsRequiredError("orderId")
	}
	if courierID <= 0 {
		return AcceptJobCommand{}, errs.NewValueIsRequiredError("courierID")
	}

	return AcceptJobCommand{
		jobID:     jobID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// JobID returns the id of the job being claimed.
func (c AcceptJobCommand) JobID() int64 {
	return c.jobID
}

// CourierID returns the claiming courier's user id.
func (c AcceptJobCommand) CourierID() int64 {
	return c.courierID
}

// Validate ensures the command was created through the constructor.
func (c AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}
