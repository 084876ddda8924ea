package job

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery job.
//
// State transitions (dispatch-relevant portion):
//
//	Ready ──> Assigned ──> InTransit ──> Delivered
//
// Only the Ready -> Assigned transition is performed by this service; later
// transitions belong to the pickup/handoff flows. There is no transition from
// Assigned back to Ready.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Ready means the job awaits pickup and no courier is bound. Jobs in
	// this status with no courier form the dispatch pool.
	Ready

	// Assigned means exactly one courier has claimed the job and handoff
	// codes have been issued.
	Assigned

	// InTransit means the courier has collected the package.
	InTransit

	// Delivered means the package reached its destination.
	Delivered
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Ready:     "READY_FOR_PICKUP",
		Assigned:  "DRIVER_ASSIGNED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Assign transitions the status to Assigned. The only valid source state is
// Ready: claimed jobs are never reassigned through this service.
func (s Status) Assign() (Status, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign", s))
	}
	return Assigned, nil
}

// ValidateCanHaveCourier checks the consistency between status and courier
// binding: a courier reference is present exactly when the job has moved
// past Ready.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Ready {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s must not have a courier", s))
	}

	if !courier && s != Ready {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s must have a courier", s))
	}

	return nil
}
