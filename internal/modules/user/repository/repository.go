package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User, profile *entity.Profile) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	SaveProfile(ctx context.Context, profile *entity.Profile) error
	UpdateStatus(ctx context.Context, userID uuid.UUID, status entity.Status) error
	Delete(ctx context.Context, userID uuid.UUID) error
	ListProfilesByRole(ctx context.Context, role entity.Role) ([]entity.Profile, error)
	ListProfilesByStatus(ctx context.Context, status entity.Status) ([]entity.Profile, error)
	ListStudentsByClass(ctx context.Context, class string) ([]entity.Profile, error)
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User, profile *entity.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if profile != nil {
			profile.UserID = user.ID
			if err := tx.Create(profile).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Preload("Profile").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Preload("Profile").First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) SaveProfile(ctx context.Context, profile *entity.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *userRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, status entity.Status) error {
	return r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Where("user_id = ?", userID).
		Update("status", status).Error
}

func (r *userRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.Profile{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.User{}, "id = ?", userID).Error
	})
}

func (r *userRepository) ListProfilesByRole(ctx context.Context, role entity.Role) ([]entity.Profile, error) {
	var profiles []entity.Profile
	if err := r.db.WithContext(ctx).Where("role = ?", role).Order("created_at").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *userRepository) ListProfilesByStatus(ctx context.Context, status entity.Status) ([]entity.Profile, error) {
	var profiles []entity.Profile
	if err := r.db.WithContext(ctx).Where("status = ?", status).Order("created_at").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *userRepository) ListStudentsByClass(ctx context.Context, class string) ([]entity.Profile, error) {
	var profiles []entity.Profile
	query := r.db.WithContext(ctx).Where("role = ?", entity.RoleStudent)
	if class != "" {
		query = query.Where("class = ?", class)
	}
	if err := query.Order("name").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *userRepository) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Profile{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
