package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
)

type HomeworkRepository interface {
	Create(ctx context.Context, homework *entity.Homework) error
	FindBySelector(ctx context.Context, selector string) ([]entity.Homework, error)
	FindAll(ctx context.Context) ([]entity.Homework, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type homeworkRepository struct {
	db *gorm.DB
}

func NewHomeworkRepository(db *gorm.DB) HomeworkRepository {
	return &homeworkRepository{db: db}
}

func (r *homeworkRepository) Create(ctx context.Context, homework *entity.Homework) error {
	return r.db.WithContext(ctx).Create(homework).Error
}

func (r *homeworkRepository) FindBySelector(ctx context.Context, selector string) ([]entity.Homework, error) {
	var homework []entity.Homework
	err := r.db.WithContext(ctx).
		Where("class_selector = ?", selector).
		Order("created_at desc").
		Find(&homework).Error
	return homework, err
}

func (r *homeworkRepository) FindAll(ctx context.Context) ([]entity.Homework, error) {
	var homework []entity.Homework
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&homework).Error
	return homework, err
}

func (r *homeworkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Homework{}, "id = ?", id).Error
}
