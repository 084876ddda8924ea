package commands

import (
	"context"
	"time"
)

// MarkStaleCouriersOfflineCommandHandler executes the courier liveness
// sweep: one conditional bulk UPDATE, no per-row reads.
type MarkStaleCouriersOfflineCommandHandler struct {
	couriers CourierLivenessStore
}

// NewMarkStaleCouriersOfflineCommandHandler creates a handler for liveness
// sweeps.
func NewMarkStaleCouriersOfflineCommandHandler(couriers CourierLivenessStore) MarkStaleCouriersOfflineCommandHandler {
	return MarkStaleCouriersOfflineCommandHandler{couriers: couriers}
}

// Handle marks stale couriers offline and returns the number affected.
func (h MarkStaleCouriersOfflineCommandHandler) Handle(
	ctx context.Context,
	command MarkStaleCouriersOfflineCommand,
) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-command.OlderThan())
	return h.couriers.MarkOfflineLastSeenBefore(ctx, cutoff)
}
