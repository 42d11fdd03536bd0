package server

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	userRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/user/repository"
)

// SeedSuperAdmin creates the bootstrap super admin account from
// SUPERADMIN_EMAIL / SUPERADMIN_PASSWORD when none exists yet. Without the
// env vars, or with one already present, it does nothing.
func SeedSuperAdmin(ctx context.Context, db *gorm.DB) error {
	email := os.Getenv("SUPERADMIN_EMAIL")
	password := os.Getenv("SUPERADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	users := userRepo.NewUserRepository(db)
	count, err := users.CountByRole(ctx, entity.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entity.User{Email: email, PasswordHash: string(hash)}
	profile := &entity.Profile{
		Name:   "Super Admin",
		Email:  email,
		Role:   entity.RoleSuperAdmin,
		Status: entity.StatusApproved,
	}
	if err := users.Create(ctx, user, profile); err != nil {
		return err
	}

	log.Printf("seeded super admin %s", email)
	return nil
}
