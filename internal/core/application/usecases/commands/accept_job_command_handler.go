package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/pkg/codes"
	"dispatch/internal/pkg/errs"
)

// ErrJobNotAvailable is returned when the claimed job does not exist or was
// already claimed by another courier. The two cases are deliberately
// indistinguishable so the claim race leaks no timing information.
var ErrJobNotAvailable = errors.New("job is not available")

// AcceptJobCommandHandler executes a courier's claim on a job.
//
// Handoff codes are generated immediately before the claim and are persisted
// only if the claim commits; a failed attempt mutates nothing. There is no
// retry here: a courier who loses the race re-fetches the job list and picks
// another job.
type AcceptJobCommandHandler struct {
	jobs JobClaimer
}

// NewAcceptJobCommandHandler creates a handler for job claim attempts.
func NewAcceptJobCommandHandler(jobs JobClaimer) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{jobs: jobs}
}

// Handle attempts the claim and returns the bound job with its fresh handoff
// codes, or ErrJobNotAvailable when the conditional update matched no row.
func (h AcceptJobCommandHandler) Handle(ctx context.Context, command AcceptJobCommand) (*job.Job, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	pickupCode, err := codes.NewHandoffCode()
	if err != nil {
		return nil, err
	}

	deliveryCode, err := codes.NewHandoffCode()
	if err != nil {
		return nil, err
	}

	claimed, err := h.jobs.Claim(ctx, command.JobID(), command.CourierID(), pickupCode, deliveryCode)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrJobNotAvailable
	}
	if err != nil {
		return nil, err
	}

	return claimed, nil
}
