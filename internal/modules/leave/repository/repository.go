package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
)

type LeaveRepository interface {
	Create(ctx context.Context, leave *entity.LeaveRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LeaveRequest, error)
	FindByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.LeaveRequest, error)
	FindByStatus(ctx context.Context, status entity.LeaveStatus) ([]entity.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LeaveStatus) error
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) Create(ctx context.Context, leave *entity.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *leaveRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LeaveRequest, error) {
	var leave entity.LeaveRequest
	if err := r.db.WithContext(ctx).First(&leave, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.LeaveRequest, error) {
	var leaves []entity.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&leaves).Error
	return leaves, err
}

func (r *leaveRepository) FindByStatus(ctx context.Context, status entity.LeaveStatus) ([]entity.LeaveRequest, error) {
	var leaves []entity.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at").
		Find(&leaves).Error
	return leaves, err
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LeaveStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.LeaveRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
