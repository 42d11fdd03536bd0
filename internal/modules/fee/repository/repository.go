package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
)

type FeeRepository interface {
	Create(ctx context.Context, fee *entity.FeeRecord) error
	FindByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.FeeRecord, error)
	FindAll(ctx context.Context) ([]entity.FeeRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FeeStatus) error
	MarkOverdueBefore(ctx context.Context, date string) (int64, error)
}

type feeRepository struct {
	db *gorm.DB
}

func NewFeeRepository(db *gorm.DB) FeeRepository {
	return &feeRepository{db: db}
}

func (r *feeRepository) Create(ctx context.Context, fee *entity.FeeRecord) error {
	return r.db.WithContext(ctx).Create(fee).Error
}

func (r *feeRepository) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.FeeRecord, error) {
	var fees []entity.FeeRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("due_date").
		Find(&fees).Error
	return fees, err
}

func (r *feeRepository) FindAll(ctx context.Context) ([]entity.FeeRecord, error) {
	var fees []entity.FeeRecord
	err := r.db.WithContext(ctx).Order("due_date").Find(&fees).Error
	return fees, err
}

func (r *feeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FeeStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.FeeRecord{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// MarkOverdueBefore flips pending fees whose due date has passed. Dates are
// ISO strings, so lexicographic comparison is date comparison.
func (r *feeRepository) MarkOverdueBefore(ctx context.Context, date string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.FeeRecord{}).
		Where("status = ? AND due_date < ?", entity.FeePending, date).
		Update("status", entity.FeeOverdue)
	return result.RowsAffected, result.Error
}
