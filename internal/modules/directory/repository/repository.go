package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
)

type ClassRepository interface {
	Create(ctx context.Context, class *entity.Class) error
	CreateSection(ctx context.Context, section *entity.Section) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error)
	FindAll(ctx context.Context) ([]entity.Class, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteSection(ctx context.Context, classID, sectionID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *entity.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) CreateSection(ctx context.Context, section *entity.Section) error {
	return r.db.WithContext(ctx).Create(section).Error
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	var class entity.Class
	if err := r.db.WithContext(ctx).Preload("Sections").First(&class, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) FindAll(ctx context.Context) ([]entity.Class, error) {
	var classes []entity.Class
	if err := r.db.WithContext(ctx).Preload("Sections").Order("created_at").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Sections").Delete(&entity.Class{ID: id}).Error
}

func (r *classRepository) DeleteSection(ctx context.Context, classID, sectionID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Delete(&entity.Section{}, "id = ?", sectionID).Error
}

func (r *classRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Class{}).Count(&count).Error
	return count, err
}
