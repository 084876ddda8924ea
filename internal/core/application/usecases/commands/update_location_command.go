package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateLocationCommandIsNotConstructed = errors.New(
	"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
)

// UpdateLocationCommand carries a position report from a courier's device.
// Both coordinates are required; a report with either one absent is rejected
// before any write is attempted.
type UpdateLocationCommand struct {
	courierID int64
	location  kernel.Location
	guard     guard.ConstructorGuard
}

// NewUpdateLocationCommand creates a position report. latitude and longitude
// are pointers because the transport layer distinguishes absent fields from
// zero values; nil means absent.
func NewUpdateLocationCommand(courierID int64, latitude, longitude *float64) (UpdateLocationCommand, error) {
	if courierID <= 0 {
		return UpdateLocationCommand{}, errs.NewValueIsRequiredError("courierID")
	}
	if latitude == nil {
		return UpdateLocationCommand{}, errs.NewValueIsRequiredError("latitude")
	}
	if longitude == nil {
		return UpdateLocationCommand{}, errs.NewValueIsRequiredError("longitude")
	}

	location, err := kernel.NewLocation(*latitude, *longitude)
	if err != nil {
		return UpdateLocationCommand{}, err
	}

	return UpdateLocationCommand{
		courierID: courierID,
		location:  location,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CourierID returns the reporting courier's user id.
func (c UpdateLocationCommand) CourierID() int64 {
	return c.courierID
}

// Location returns the reported position.
func (c UpdateLocationCommand) Location() kernel.Location {
	return c.location
}

// Validate ensures the command was created through the constructor.
func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}
