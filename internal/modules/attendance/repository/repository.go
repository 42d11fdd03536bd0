package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
)

type AttendanceRepository interface {
	ReplaceDay(ctx context.Context, selector, date string, records []entity.AttendanceRecord) error
	FindDay(ctx context.Context, selector, date string) ([]entity.AttendanceRecord, error)
	FindByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.AttendanceRecord, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// ReplaceDay swaps the whole (selector, date) block in one transaction so a
// re-save never leaves stale rows behind.
func (r *attendanceRepository) ReplaceDay(ctx context.Context, selector, date string, records []entity.AttendanceRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_selector = ? AND date = ?", selector, date).
			Delete(&entity.AttendanceRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}

func (r *attendanceRepository) FindDay(ctx context.Context, selector, date string) ([]entity.AttendanceRecord, error) {
	var records []entity.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("class_selector = ? AND date = ?", selector, date).
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.AttendanceRecord, error) {
	var records []entity.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date desc").
		Find(&records).Error
	return records, err
}
