package commands

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrMarkStaleCouriersOfflineCommandIsNotConstructed = errors.New(
	"MarkStaleCouriersOfflineCommand must be created via NewMarkStaleCouriersOfflineCommand constructor",
)

// MarkStaleCouriersOfflineCommand requests that couriers whose devices have
// gone quiet be flipped offline. The flag is advisory for dispatch UIs; it
// never touches job assignments.
type MarkStaleCouriersOfflineCommand struct {
	olderThan time.Duration
	guard     guard.ConstructorGuard
}

// NewMarkStaleCouriersOfflineCommand creates a sweep for couriers silent for
// longer than olderThan.
func NewMarkStaleCouriersOfflineCommand(olderThan time.Duration) (MarkStaleCouriersOfflineCommand, error) {
	if olderThan <= 0 {
		return MarkStaleCouriersOfflineCommand{}, errs.NewValueIsInvalidErrorWithCause("olderThan",
			fmt.Errorf("%s is not a positive duration", olderThan))
	}

	return MarkStaleCouriersOfflineCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OlderThan returns the staleness threshold.
func (c MarkStaleCouriersOfflineCommand) OlderThan() time.Duration {
	return c.olderThan
}

// Validate ensures the command was created through the constructor.
func (c MarkStaleCouriersOfflineCommand) Validate() error {
	return c.guard.Validate(ErrMarkStaleCouriersOfflineCommandIsNotConstructed)
}
