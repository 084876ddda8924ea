package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrCourierLocationUnknown is returned when the requesting courier has
// never reported a position. The pool is not queried in that case.
var ErrCourierLocationUnknown = errors.New("courier has no stored location")

// AvailableJob is one dispatch-pool entry within the courier's radius.
type AvailableJob struct {
	ID             int64
	Description    string
	PickupName     string
	PickupAddress  string
	PickupLocation kernel.Location
	DeliveryFee    string
	DistanceKm     float64
	CreatedAt      time.Time
}

// GetAvailableJobsQueryResponse is the radius-filtered, nearest-first view
// of the dispatch pool plus the center it was computed from.
type GetAvailableJobsQueryResponse struct {
	CourierLocation kernel.Location
	Jobs            []AvailableJob
}

// poolRow is the raw join of an unassigned-ready job with its pickup
// organization. Coordinates stay as decimal strings here; parsing happens in
// the proximity matcher, which silently drops rows it cannot resolve.
type poolRow struct {
	id          int64
	description string
	orgName     string
	orgAddress  string
	latitude    *string
	longitude   *string
	deliveryFee string
	createdAt   time.Time
}

// Coordinates implements services.Candidate.
func (r poolRow) Coordinates() (kernel.Location, bool) {
	if r.latitude == nil || r.longitude == nil {
		return kernel.Location{}, false
	}

	location, err := kernel.ParseLocation(*r.latitude, *r.longitude)
	if err != nil {
		return kernel.Location{}, false
	}
	return location, true
}

// GetAvailableJobsQueryHandler retrieves the dispatch pool for a courier.
//
// The returned list is a snapshot: it is stale the moment it is produced,
// and deliberately carries no availability guarantee. The only enforced
// guarantee lives in the claim's conditional update; adding a guard here
// would only hide the race without closing it.
type GetAvailableJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableJobsQueryHandler creates a handler for dispatch-pool
// queries.
func NewGetAvailableJobsQueryHandler(db *gorm.DB) GetAvailableJobsQueryHandler {
	return GetAvailableJobsQueryHandler{db: db}
}

// Handle returns the pool entries within the courier's radius, nearest
// first. Fails fast with ErrCourierLocationUnknown before touching the pool
// when the courier has no stored position, and with errs.ObjectNotFound when
// the courier has no profile at all.
func (h GetAvailableJobsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableJobsQuery,
) (GetAvailableJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAvailableJobsQueryResponse{}, err
	}

	center, err := h.courierLocation(ctx, query.CourierID())
	if err != nil {
		return GetAvailableJobsQueryResponse{}, err
	}

	rows, err := h.dispatchPool(ctx)
	if err != nil {
		return GetAvailableJobsQueryResponse{}, err
	}

	matches := services.MatchNearby(center, rows, query.RadiusKm())

	jobs := make([]AvailableJob, 0, len(matches))
	for _, match := range matches {
		location, _ := match.Candidate.Coordinates()
		jobs = append(jobs, AvailableJob{
			ID:             match.Candidate.id,
			Description:    match.Candidate.description,
			PickupName:     match.Candidate.orgName,
			PickupAddress:  match.Candidate.orgAddress,
			PickupLocation: location,
			DeliveryFee:    match.Candidate.deliveryFee,
			DistanceKm:     match.DistanceKm,
			CreatedAt:      match.Candidate.createdAt,
		})
	}

	return GetAvailableJobsQueryResponse{CourierLocation: center, Jobs: jobs}, nil
}

func (h GetAvailableJobsQueryHandler) courierLocation(ctx context.Context, courierID int64) (kernel.Location, error) {
	var latitude, longitude *float64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			latitude,
			longitude
		FROM courier_profiles
		WHERE user_id = ?
	`, courierID).Row()

	if err := row.Scan(&latitude, &longitude); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kernel.Location{}, errs.NewObjectNotFoundError("courier", courierID)
		}
		return kernel.Location{}, err
	}

	if latitude == nil || longitude == nil {
		return kernel.Location{}, ErrCourierLocationUnknown
	}

	return kernel.NewLocation(*latitude, *longitude)
}

func (h GetAvailableJobsQueryHandler) dispatchPool(ctx context.Context) ([]poolRow, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			j.id,
			j.description,
			COALESCE(o.name, ''),
			COALESCE(o.address, ''),
			o.latitude,
			o.longitude,
			j.delivery_fee,
			j.created_at
		FROM jobs j
		LEFT JOIN organizations o ON o.id = j.organization_id
		WHERE j.status = ? AND j.courier_id IS NULL
	`, int(job.Ready)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pool := make([]poolRow, 0)
	for rows.Next() {
		var r poolRow
		if err := rows.Scan(
			&r.id,
			&r.description,
			&r.orgName,
			&r.orgAddress,
			&r.latitude,
			&r.longitude,
			&r.deliveryFee,
			&r.createdAt,
		); err != nil {
			return nil, err
		}
		pool = append(pool, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pool, nil
}
