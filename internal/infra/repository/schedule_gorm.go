package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/jdsalazarc/barberia-desk/internal/domain/schedule"
	"github.com/jdsalazarc/barberia-desk/internal/httperr"
	"github.com/jdsalazarc/barberia-desk/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Conflict check (shared by Create and Update)
// --------------------------------------------------

// assertSlotFree counts appointments holding (employee, date, time),
// ignoring excludeID so an update never conflicts with itself. Must be
// called inside the same transaction as the write it guards: with a
// single SQLite connection the whole check-then-write unit runs
// serialized, so no second caller can slip between check and insert.
func assertSlotFree(
	tx *gorm.DB,
	slot domain.Slot,
	excludeID uint,
) error {

	q := tx.Model(&models.Appointment{}).
		Where(
			"employee_id = ? AND date = ? AND time = ?",
			slot.EmployeeID, slot.Date, slot.Time,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("slot_conflict")
	}
	return nil
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *ScheduleGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slot := domain.Slot{
			EmployeeID: ap.EmployeeID,
			Date:       ap.Date,
			Time:       ap.Time,
		}
		if err := assertSlotFree(tx, slot, 0); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})

	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_conflict")
	}
	return err
}

// --------------------------------------------------
// Update
// --------------------------------------------------

func (r *ScheduleGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) (bool, error) {

	modified := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var current models.Appointment
		if err := tx.First(&current, ap.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		slot := domain.Slot{
			EmployeeID: ap.EmployeeID,
			Date:       ap.Date,
			Time:       ap.Time,
		}
		if err := assertSlotFree(tx, slot, ap.ID); err != nil {
			return err
		}

		res := tx.Model(&current).Updates(map[string]any{
			"client_name":  ap.ClientName,
			"client_phone": ap.ClientPhone,
			"date":         ap.Date,
			"time":         ap.Time,
			"service":      ap.Service,
			"employee_id":  ap.EmployeeID,
		})
		if res.Error != nil {
			return res.Error
		}

		modified = res.RowsAffected > 0
		return nil
	})

	if httperr.IsUniqueViolation(err) {
		return false, httperr.ErrBusiness("slot_conflict")
	}
	return modified, err
}

// --------------------------------------------------
// Delete / reads
// --------------------------------------------------

func (r *ScheduleGormRepository) Delete(
	ctx context.Context,
	id uint,
	ownerID uint,
) error {

	q := r.db.WithContext(ctx).Where("id = ?", id)
	if ownerID != 0 {
		q = q.Where("employee_id = ?", ownerID)
	}
	// Zero rows affected is fine: delete is idempotent.
	return q.Delete(&models.Appointment{}).Error
}

func (r *ScheduleGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) ListOwnForDay(
	ctx context.Context,
	date string,
	employeeID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAllForDay(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("date = ?", date).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
