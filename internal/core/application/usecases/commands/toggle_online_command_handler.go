package commands

import (
	"context"
)

// ToggleOnlineCommandHandler flips a courier's availability flag through a
// read-modify-write of the courier's own row. Last-write-wins is acceptable
// for the same single-writer reason as the location tracker.
type ToggleOnlineCommandHandler struct {
	couriers CourierStore
}

// NewToggleOnlineCommandHandler creates a handler for availability toggles.
func NewToggleOnlineCommandHandler(couriers CourierStore) ToggleOnlineCommandHandler {
	return ToggleOnlineCommandHandler{couriers: couriers}
}

// Handle flips the flag and returns its new value. Returns an
// errs.ObjectNotFound error when the caller has no courier profile.
func (h ToggleOnlineCommandHandler) Handle(ctx context.Context, command ToggleOnlineCommand) (bool, error) {
	if err := command.Validate(); err != nil {
		return false, err
	}

	profile, err := h.couriers.GetByUserID(ctx, command.CourierID())
	if err != nil {
		return false, err
	}

	isOnline := profile.ToggleOnline()

	if err := h.couriers.Update(ctx, profile); err != nil {
		return false, err
	}

	return isOnline, nil
}
