package commands

import (
	"context"
	"time"
)

// UpdateLocationCommandHandler persists courier position reports.
// Writes are overwrite-only and last-write-wins: the courier's own device is
// the only writer of its row, so no concurrency guard is needed here.
type UpdateLocationCommandHandler struct {
	couriers CourierLocationWriter
}

// NewUpdateLocationCommandHandler creates a handler for position reports.
func NewUpdateLocationCommandHandler(couriers CourierLocationWriter) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{couriers: couriers}
}

// Handle overwrites the courier's stored position with the reported one.
func (h UpdateLocationCommandHandler) Handle(ctx context.Context, command UpdateLocationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.couriers.UpdateLocation(ctx, command.CourierID(), command.Location(), time.Now().UTC())
}
