package job

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrJobIsNotConstructed is returned when a Job was not created via
	// NewJob or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

	// ErrHandoffCodesRequired is returned when Assign is called without both
	// handoff codes.
	ErrHandoffCodesRequired = errs.NewValueIsRequiredError("pickup and delivery codes")
)

// Job is the aggregate root for a delivery job.
//
// Invariants:
//   - ID and pickup organization are always set
//   - courier reference is non-nil exactly when status is past Ready
//   - courier reference, status and handoff codes change together, never
//     independently
type Job struct {
	id             int64
	organizationID uuid.UUID
	description    string
	status         Status
	courierID      *int64
	pickupCode     string
	deliveryCode   string
	deliveryFee    string
	createdAt      time.Time

	isConstructed bool
}

// NewJob creates a Job in Ready status with no courier bound. Jobs are
// created when a lab marks an order ready for pickup.
func NewJob(id int64, organizationID uuid.UUID, description, deliveryFee string, createdAt time.Time) (*Job, error) {
	j := &Job{
		status:        Ready,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setOrganizationID(organizationID),
	); err != nil {
		return nil, err
	}

	j.description = description
	j.deliveryFee = deliveryFee
	j.createdAt = createdAt
	return j, nil
}

// RestoreJob reconstructs a Job from persistence, including its status and
// courier binding. The status/courier consistency invariant is re-checked so
// corrupted rows surface as errors instead of silently flowing on.
func RestoreJob(
	id int64,
	organizationID uuid.UUID,
	description string,
	status Status,
	courierID *int64,
	pickupCode, deliveryCode string,
	deliveryFee string,
	createdAt time.Time,
) (*Job, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}

	j, err := NewJob(id, organizationID, description, deliveryFee, createdAt)
	if err != nil {
		return nil, err
	}

	j.status = status
	j.courierID = courierID
	j.pickupCode = pickupCode
	j.deliveryCode = deliveryCode
	return j, nil
}

// Validate ensures the Job was created through a constructor.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// ID returns the job's identifier.
func (j *Job) ID() int64 {
	return j.id
}

// OrganizationID returns the pickup organization's identifier.
func (j *Job) OrganizationID() uuid.UUID {
	return j.organizationID
}

// Description returns the human-readable job description.
func (j *Job) Description() string {
	return j.description
}

// Status returns the job's lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// Courier returns the bound courier's user id, or nil while the job is
// unassigned.
func (j *Job) Courier() *int64 {
	return j.courierID
}

// PickupCode returns the code verified at pickup, empty until assignment.
func (j *Job) PickupCode() string {
	return j.pickupCode
}

// DeliveryCode returns the code verified at delivery, empty until assignment.
func (j *Job) DeliveryCode() string {
	return j.deliveryCode
}

// DeliveryFee returns the delivery fee as a decimal string.
func (j *Job) DeliveryFee() string {
	return j.deliveryFee
}

// CreatedAt returns the job's creation timestamp.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// Assign binds the job to a courier and issues the handoff codes. This is
// the in-memory counterpart of the repository's guarded claim: courier,
// status and codes change together or not at all.
func (j *Job) Assign(courierID int64, pickupCode, deliveryCode string) error {
	if courierID <= 0 {
		return errs.NewValueIsRequiredError("courierID")
	}
	if pickupCode == "" || deliveryCode == "" {
		return ErrHandoffCodesRequired
	}

	newStatus, err := j.status.Assign()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.courierID = &courierID
	j.pickupCode = pickupCode
	j.deliveryCode = deliveryCode
	return nil
}

func (j *Job) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	j.id = id
	return nil
}

func (j *Job) setOrganizationID(organizationID uuid.UUID) error {
	if organizationID == uuid.Nil {
		return errs.NewValueIsRequiredError("organizationID")
	}
	j.organizationID = organizationID
	return nil
}
