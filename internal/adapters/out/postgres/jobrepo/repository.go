package jobrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements ports.JobRepository using GORM.
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// Add saves a new job to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a job by id.
func (r *GormJobRepository) Get(ctx context.Context, id int64) (*job.Job, error) {
	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Claim performs the guarded assignment of a job to a courier.
//
// The availability check and the mutation are one conditional UPDATE: the
// WHERE clause re-checks `status = Ready AND courier_id IS NULL` against the
// row's committed state, so under concurrent claims exactly one statement
// matches the row and every other one affects zero rows. A separate
// SELECT-then-UPDATE here would let two couriers both observe "available"
// and silently overwrite each other's assignment.
func (r *GormJobRepository) Claim(
	ctx context.Context,
	jobID, courierID int64,
	pickupCode, deliveryCode string,
) (*job.Job, error) {
	if pickupCode == "" || deliveryCode == "" {
		return nil, job.ErrHandoffCodesRequired
	}

	var dto JobDTO
	result := r.db.WithContext(ctx).
		Model(&dto).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ? AND courier_id IS NULL", jobID, int(job.Ready)).
		Updates(map[string]any{
			"status":        int(job.Assigned),
			"courier_id":    courierID,
			"pickup_code":   pickupCode,
			"delivery_code": deliveryCode,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	// Zero rows means the job does not exist or someone else's claim already
	// committed; the two cases are deliberately indistinguishable.
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("job", jobID)
	}

	return toDomain(dto)
}
