package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"petshop/internal/domain"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AppointmentRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) ListByTenant(ctx context.Context, tenantID int64) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("scheduled_at").
		Find(&out).Error
	return out, err
}

// CountOverlapping is the fast-path double-booking scan: appointments in the
// tenant that are still holding their slot (not CANCELLED/EXPIRED), touch
// the same pet or the same service, and truly overlap the half-open
// [start, end) candidate range. Adjacent ranges do not count. excludeID
// skips the appointment being rescheduled.
func (r *AppointmentRepository) CountOverlapping(ctx context.Context, tenantID, petID, serviceID int64, start, end time.Time, excludeID int64) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Appointment{}).
		Where("tenant_id = ?", tenantID).
		Where("status NOT IN ?", []string{string(domain.StatusCancelled), string(domain.StatusExpired)}).
		Where("pet_id = ? OR service_id = ?", petID, serviceID).
		Where("scheduled_at < ? AND end_time > ?", end, start)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var cnt int64
	err := q.Count(&cnt).Error
	return cnt, err
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tenantID, id int64, status domain.AppointmentStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Appointment{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Update("status", string(status)).Error
}

// ExpireDue moves stale tentative holds to EXPIRED in a single statement and
// returns how many rows were affected. The predicate is self-limiting, so
// concurrent sweeps are safe: a second run simply matches zero rows.
// Privileged cross-tenant access; only the sweeper may call it.
func (r *AppointmentRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.Appointment{}).
		Where("status = ? AND expires_at < ?", string(domain.StatusPreBooked), now).
		Update("status", string(domain.StatusExpired))
	return res.RowsAffected, res.Error
}
