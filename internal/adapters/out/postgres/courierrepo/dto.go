// Package courierrepo provides GORM persistence for courier profiles.
package courierrepo

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierDTO is the database representation of a courier profile. The row is
// keyed by the owning user's id (profiles are 1:1 with users). Position
// columns are null until the courier's device reports for the first time.
type CourierDTO struct {
	UserID      int64      `gorm:"primaryKey"`
	VehicleType string     `gorm:"type:text"`
	IsOnline    bool       `gorm:"index"`
	Latitude    *float64
	Longitude   *float64
	LastSeenAt  *time.Time
}

// TableName overrides GORM's default naming to use "courier_profiles".
func (CourierDTO) TableName() string {
	return "courier_profiles"
}

// fromDomain converts a courier aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	dto := CourierDTO{
		UserID:      aggregate.UserID(),
		VehicleType: aggregate.VehicleType(),
		IsOnline:    aggregate.IsOnline(),
		LastSeenAt:  aggregate.LastSeenAt(),
	}

	if loc := aggregate.Location(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}

	return dto
}

// toDomain converts a database row to a courier aggregate. A row with only
// one coordinate set is treated as having no position.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, err := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return nil, err
		}
		location = &loc
	}

	return courier.RestoreCourier(
		dto.UserID,
		dto.VehicleType,
		dto.IsOnline,
		location,
		dto.LastSeenAt,
	)
}
