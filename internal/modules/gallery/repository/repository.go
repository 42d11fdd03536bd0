package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
)

type GalleryRepository interface {
	Create(ctx context.Context, image *entity.GalleryImage) error
	FindVisible(ctx context.Context) ([]entity.GalleryImage, error)
	FindOrphaned(ctx context.Context) ([]entity.GalleryImage, error)
	MarkOrphaned(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, image *entity.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *galleryRepository) FindVisible(ctx context.Context) ([]entity.GalleryImage, error) {
	var images []entity.GalleryImage
	err := r.db.WithContext(ctx).
		Where("orphaned = ?", false).
		Order("created_at desc").
		Find(&images).Error
	return images, err
}

func (r *galleryRepository) FindOrphaned(ctx context.Context) ([]entity.GalleryImage, error) {
	var images []entity.GalleryImage
	err := r.db.WithContext(ctx).Where("orphaned = ?", true).Find(&images).Error
	return images, err
}

func (r *galleryRepository) MarkOrphaned(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.GalleryImage{}).
		Where("id = ?", id).
		Update("orphaned", true).Error
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.GalleryImage{}, "id = ?", id).Error
}
