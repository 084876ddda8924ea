// Package jobrepo provides GORM persistence for job aggregates, including
// the guarded claim that binds a job to exactly one courier.
package jobrepo

import (
	"time"

	"dispatch/internal/core/domain/model/job"

	"github.com/google/uuid"
)

// JobDTO is the database representation of a job aggregate. The composite
// index on (status, courier_id) serves the dispatch-pool scan.
type JobDTO struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;index"`
	Description    string     `gorm:"type:text"`
	Status         int        `gorm:"index:idx_jobs_dispatch_pool"`
	CourierID      *int64     `gorm:"index:idx_jobs_dispatch_pool"`
	PickupCode     *string    `gorm:"type:text"`
	DeliveryCode   *string    `gorm:"type:text"`
	DeliveryFee    string     `gorm:"type:numeric"`
	CreatedAt      time.Time
}

// TableName overrides GORM's default naming to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// OrganizationDTO is the read-only pickup-location table joined into the
// dispatch pool. Coordinates are kept as decimal strings, the way the legacy
// numeric columns store them; rows without coordinates are legal and are
// excluded from matching downstream.
type OrganizationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text"`
	Address   string    `gorm:"type:text"`
	Latitude  *string   `gorm:"type:numeric"`
	Longitude *string   `gorm:"type:numeric"`
}

// TableName overrides GORM's default naming to use "organizations".
func (OrganizationDTO) TableName() string {
	return "organizations"
}

// fromDomain converts a job aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	dto := JobDTO{
		ID:             aggregate.ID(),
		OrganizationID: aggregate.OrganizationID(),
		Description:    aggregate.Description(),
		Status:         int(aggregate.Status()),
		CourierID:      aggregate.Courier(),
		DeliveryFee:    aggregate.DeliveryFee(),
		CreatedAt:      aggregate.CreatedAt(),
	}

	if code := aggregate.PickupCode(); code != "" {
		dto.PickupCode = &code
	}
	if code := aggregate.DeliveryCode(); code != "" {
		dto.DeliveryCode = &code
	}

	return dto
}

// toDomain converts a database row to a job aggregate, re-validating the
// status/courier consistency invariant on the way in.
func toDomain(dto JobDTO) (*job.Job, error) {
	var pickupCode, deliveryCode string
	if dto.PickupCode != nil {
		pickupCode = *dto.PickupCode
	}
	if dto.DeliveryCode != nil {
		deliveryCode = *dto.DeliveryCode
	}

	return job.RestoreJob(
		dto.ID,
		dto.OrganizationID,
		dto.Description,
		job.Status(dto.Status),
		dto.CourierID,
		pickupCode,
		deliveryCode,
		dto.DeliveryFee,
		dto.CreatedAt,
	)
}
