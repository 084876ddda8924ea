// Package queries contains the read-side use cases of the dispatch core.
// Query handlers read straight through GORM with raw SQL; no caching.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetAvailableJobsQueryIsNotConstructed = errors.New(
	"GetAvailableJobsQuery must be created via NewGetAvailableJobsQuery constructor",
)

// GetAvailableJobsQuery asks for the dispatch pool as seen from one
// courier's position, radius-limited and sorted nearest-first.
type GetAvailableJobsQuery struct {
	courierID int64
	radiusKm  float64
	guard     guard.ConstructorGuard
}

// NewGetAvailableJobsQuery creates a pool query for the given courier using
// the default dispatch radius.
func NewGetAvailableJobsQuery(courierID int64) (GetAvailableJobsQuery, error) {
	if courierID <= 0 {
		return GetAvailableJobsQuery{}, errs.NewValueIsRequiredError("courierID")
	}

	return GetAvailableJobsQuery{
		courierID: courierID,
		radiusKm:  services.DefaultRadiusKm,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CourierID returns the requesting courier's user id.
func (q GetAvailableJobsQuery) CourierID() int64 {
	return q.courierID
}

// RadiusKm returns the dispatch radius in kilometers.
func (q GetAvailableJobsQuery) RadiusKm() float64 {
	return q.radiusKm
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableJobsQueryIsNotConstructed)
}
