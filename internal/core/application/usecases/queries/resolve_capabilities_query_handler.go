package queries

import (
	"context"

	"gorm.io/gorm"
)

// ResolveCapabilitiesQueryHandler derives a caller's capability set from a
// handful of existence predicates over related records, in one round trip.
type ResolveCapabilitiesQueryHandler struct {
	db *gorm.DB
}

// NewResolveCapabilitiesQueryHandler creates a handler for capability
// lookups.
func NewResolveCapabilitiesQueryHandler(db *gorm.DB) ResolveCapabilitiesQueryHandler {
	return ResolveCapabilitiesQueryHandler{db: db}
}

// Handle resolves the capability set for the query's user.
func (h ResolveCapabilitiesQueryHandler) Handle(
	ctx context.Context,
	query ResolveCapabilitiesQuery,
) (Capabilities, error) {
	if err := query.Validate(); err != nil {
		return Capabilities{}, err
	}

	var isCourier, isOrgAdmin, isHealthProfessional, isMember bool

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			EXISTS(SELECT 1 FROM courier_profiles WHERE user_id = ?),
			EXISTS(SELECT 1 FROM organization_members WHERE user_id = ? AND role = 'admin'),
			EXISTS(SELECT 1 FROM organization_members WHERE user_id = ? AND role IN ('dentist', 'lab_tech')),
			EXISTS(SELECT 1 FROM organization_members WHERE user_id = ?)
	`, query.UserID(), query.UserID(), query.UserID(), query.UserID()).Row()

	if err := row.Scan(&isCourier, &isOrgAdmin, &isHealthProfessional, &isMember); err != nil {
		return Capabilities{}, err
	}

	return Capabilities{
		IsCourier:            isCourier,
		IsOrgAdmin:           isOrgAdmin,
		IsHealthProfessional: isHealthProfessional,
		IsPatient:            !isCourier && !isHealthProfessional && !isMember,
	}, nil
}
