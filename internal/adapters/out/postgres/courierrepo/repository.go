package courierrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Add saves a new courier profile to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the full state of an existing courier profile.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("user_id = ?", dto.UserID).
		Updates(map[string]any{
			"vehicle_type": dto.VehicleType,
			"is_online":    dto.IsOnline,
			"latitude":     dto.Latitude,
			"longitude":    dto.Longitude,
			"last_seen_at": dto.LastSeenAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", dto.UserID)
	}

	return nil
}

// GetByUserID retrieves a courier profile by its owning user id.
func (r *GormCourierRepository) GetByUserID(ctx context.Context, userID int64) (*courier.Courier, error) {
	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", userID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateLocation overwrites the courier's position in a single statement.
// No read precedes the write and zero rows affected is a successful no-op:
// the courier row has exactly one writer, so last-write-wins needs no guard.
func (r *GormCourierRepository) UpdateLocation(
	ctx context.Context,
	userID int64,
	location kernel.Location,
	at time.Time,
) error {
	if err := location.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"latitude":     location.Latitude(),
			"longitude":    location.Longitude(),
			"last_seen_at": at,
		}).Error
}

// MarkOfflineLastSeenBefore flips the online flag off for couriers whose
// last position report predates cutoff.
func (r *GormCourierRepository) MarkOfflineLastSeenBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("is_online = ? AND last_seen_at IS NOT NULL AND last_seen_at < ?", true, cutoff).
		Update("is_online", false)

	return result.RowsAffected, result.Error
}
