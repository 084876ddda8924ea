package courier

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrCourierIsNotConstructed is returned when a Courier was not created
	// via NewCourier or RestoreCourier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")

	// ErrUserIDIsRequired is returned when creating a courier without an
	// owning user.
	ErrUserIDIsRequired = errs.NewValueIsRequiredError("userID")
)

// Courier represents a delivery agent. The aggregate tracks the courier's
// availability flag and last reported position; it is keyed by the owning
// user's id.
type Courier struct {
	userID      int64
	vehicleType string
	isOnline    bool
	location    *kernel.Location
	lastSeenAt  *time.Time

	isConstructed bool
}

// NewCourier creates a Courier profile with no reported position, offline by
// default.
func NewCourier(userID int64, vehicleType string) (*Courier, error) {
	if userID <= 0 {
		return nil, ErrUserIDIsRequired
	}

	return &Courier{
		userID:        userID,
		vehicleType:   vehicleType,
		isConstructed: true,
	}, nil
}

// RestoreCourier reconstructs a Courier from persistence. location and
// lastSeenAt are nil for couriers that have never reported a position.
func RestoreCourier(
	userID int64,
	vehicleType string,
	isOnline bool,
	location *kernel.Location,
	lastSeenAt *time.Time,
) (*Courier, error) {
	c, err := NewCourier(userID, vehicleType)
	if err != nil {
		return nil, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	c.isOnline = isOnline
	c.location = location
	c.lastSeenAt = lastSeenAt
	return c, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// UserID returns the owning user's id.
func (c *Courier) UserID() int64 {
	return c.userID
}

// VehicleType returns the courier's vehicle descriptor.
func (c *Courier) VehicleType() string {
	return c.vehicleType
}

// IsOnline reports whether the courier is currently accepting work.
func (c *Courier) IsOnline() bool {
	return c.isOnline
}

// Location returns the last reported position, or nil if the courier has
// never reported one.
func (c *Courier) Location() *kernel.Location {
	return c.location
}

// LastSeenAt returns the time of the last position report, or nil.
func (c *Courier) LastSeenAt() *time.Time {
	return c.lastSeenAt
}

// ReportLocation overwrites the courier's position with a fresh device
// report. Last-write-wins: only the courier's own device writes this state.
func (c *Courier) ReportLocation(location kernel.Location, at time.Time) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = &location
	c.lastSeenAt = &at
	return nil
}

// ToggleOnline flips the availability flag and returns the new value.
func (c *Courier) ToggleOnline() bool {
	c.isOnline = !c.isOnline
	return c.isOnline
}
