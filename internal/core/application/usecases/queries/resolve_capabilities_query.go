package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrResolveCapabilitiesQueryIsNotConstructed = errors.New(
	"ResolveCapabilitiesQuery must be created via NewResolveCapabilitiesQuery constructor",
)

// Capabilities is the per-request capability set of a verified caller,
// resolved once from profile and membership existence. Handlers branch on
// these flags instead of performing ad hoc lookups.
type Capabilities struct {
	IsCourier            bool
	IsOrgAdmin           bool
	IsHealthProfessional bool
	IsPatient            bool
}

// ResolveCapabilitiesQuery asks for the capability set of one user.
type ResolveCapabilitiesQuery struct {
	userID int64
	guard  guard.ConstructorGuard
}

// NewResolveCapabilitiesQuery creates a capability lookup for the given
// verified user id.
func NewResolveCapabilitiesQuery(userID int64) (ResolveCapabilitiesQuery, error) {
	if userID <= 0 {
		return ResolveCapabilitiesQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return ResolveCapabilitiesQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the subject user id.
func (q ResolveCapabilitiesQuery) UserID() int64 {
	return q.userID
}

// Validate ensures the query was created through the constructor.
func (q ResolveCapabilitiesQuery) Validate() error {
	return q.guard.Validate(ErrResolveCapabilitiesQueryIsNotConstructed)
}
