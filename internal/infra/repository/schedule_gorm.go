package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/petgroom/scheduler/internal/domain/schedule"
	"github.com/petgroom/scheduler/internal/httperr"
	"github.com/petgroom/scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// Create inserts inside a transaction that first takes FOR UPDATE
// locks on any row holding the same staff slot, so two concurrent
// creations for one (staff, instant) pair serialize and the loser gets
// the conflict instead of a duplicate booking.
func (r *ScheduleGormRepository) Create(
	ctx context.Context,
	s *models.Schedule,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if s.StaffID != nil {
			var conflicts []models.Schedule
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where(
					"staff_id = ? AND scheduled_at = ? AND status IN ?",
					*s.StaffID, s.ScheduledAt, domain.NonTerminalStatuses(),
				).
				Find(&conflicts).Error; err != nil {
				return err
			}

			if len(conflicts) > 0 {
				return httperr.ErrBusiness("time_conflict", "Staff member already booked for this time slot")
			}
		}

		return tx.Create(s).Error
	})
}

func (r *ScheduleGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Schedule, error) {

	var s models.Schedule
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleGormRepository) HasOverlap(
	ctx context.Context,
	staffID string,
	scheduledAt time.Time,
	excludeID string,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Where(
			"staff_id = ? AND scheduled_at = ? AND status IN ?",
			staffID, scheduledAt, domain.NonTerminalStatuses(),
		)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ScheduleGormRepository) Update(
	ctx context.Context,
	s *models.Schedule,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ScheduleGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).Delete(&models.Schedule{}, "id = ?", id).Error
}

func (r *ScheduleGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Schedule, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Pet").
		Preload("Staff").
		Model(&models.Schedule{})

	if f.From != nil {
		q = q.Where("scheduled_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("scheduled_at <= ?", *f.To)
	}
	if f.ServiceType != nil {
		q = q.Where("service_type = ?", string(*f.ServiceType))
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}
	if f.CustomerID != "" {
		q = q.Where("customer_id = ?", f.CustomerID)
	}
	if f.StaffID != "" {
		q = q.Where("staff_id = ?", f.StaffID)
	}

	var out []models.Schedule
	if err := q.Order("scheduled_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// --------------------------------------------------
// Reporting
// --------------------------------------------------

func (r *ScheduleGormRepository) CountCompleted(
	ctx context.Context,
	from, to time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Where(
			"status = ? AND scheduled_at >= ? AND scheduled_at <= ?",
			string(domain.StatusCompleted), from, to,
		).
		Count(&count).Error

	return count, err
}

func (r *ScheduleGormRepository) SumCompletedRevenue(
	ctx context.Context,
	from, to time.Time,
) (float64, error) {

	var revenue float64
	err := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Select("COALESCE(SUM(price), 0)").
		Where(
			"status = ? AND scheduled_at >= ? AND scheduled_at <= ?",
			string(domain.StatusCompleted), from, to,
		).
		Row().
		Scan(&revenue)

	return revenue, err
}

func (r *ScheduleGormRepository) CountDistinctPets(
	ctx context.Context,
	from, to time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Where("scheduled_at >= ? AND scheduled_at <= ?", from, to).
		Distinct("pet_id").
		Count(&count).Error

	return count, err
}

func (r *ScheduleGormRepository) CountByServiceType(
	ctx context.Context,
	from, to time.Time,
) ([]domain.ServiceTypeCount, error) {

	var out []domain.ServiceTypeCount
	err := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Select("service_type, COUNT(*) AS total").
		Where("scheduled_at >= ? AND scheduled_at <= ?", from, to).
		Group("service_type").
		Scan(&out).Error

	return out, err
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
