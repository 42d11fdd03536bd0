package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
)

type NoticeRepository interface {
	Create(ctx context.Context, notice *entity.Notice) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notice, error)
	FindForAudiences(ctx context.Context, audiences []string) ([]entity.Notice, error)
	FindAll(ctx context.Context) ([]entity.Notice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type noticeRepository struct {
	db *gorm.DB
}

func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, notice *entity.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notice, error) {
	var notice entity.Notice
	if err := r.db.WithContext(ctx).First(&notice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

func (r *noticeRepository) FindForAudiences(ctx context.Context, audiences []string) ([]entity.Notice, error) {
	var notices []entity.Notice
	err := r.db.WithContext(ctx).
		Where("audience IN ?", audiences).
		Order("created_at desc").
		Find(&notices).Error
	return notices, err
}

func (r *noticeRepository) FindAll(ctx context.Context) ([]entity.Notice, error) {
	var notices []entity.Notice
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&notices).Error
	return notices, err
}

func (r *noticeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Notice{}, "id = ?", id).Error
}

func (r *noticeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Notice{}).Count(&count).Error
	return count, err
}
