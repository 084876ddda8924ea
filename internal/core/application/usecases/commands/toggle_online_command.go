package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrToggleOnlineCommandIsNotConstructed = errors.New(
	"ToggleOnlineCommand must be created via NewToggleOnlineCommand constructor",
)

// ToggleOnlineCommand flips a courier's availability flag.
type ToggleOnlineCommand struct {
	courierID int64
	guard     guard.ConstructorGuard
}

// NewToggleOnlineCommand creates a toggle request for the given courier.
func NewToggleOnlineCommand(courierID int64) (ToggleOnlineCommand, error) {
	if courierID <= 0 {
		return ToggleOnlineCommand{}, errs.NewValueIsRequiredError("courierID")
	}

	return ToggleOnlineCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CourierID returns the courier's user id.
func (c ToggleOnlineCommand) CourierID() int64 {
	return c.courierID
}

// Validate ensures the command was created through the constructor.
func (c ToggleOnlineCommand) Validate() error {
	return c.guard.Validate(ErrToggleOnlineCommandIsNotConstructed)
}
