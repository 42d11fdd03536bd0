package service

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/admin/dto"
	classRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/directory/repository"
	noticeRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/notice/repository"
	searchSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/search/service"
	userRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/user/repository"
	"github.com/zaheerabbaspac-hue/PAC/pkg/apperror"
)

// AdminService is the super-admin user management surface: provisioning admin
// and teacher accounts, working the approval queue and deleting accounts.
type AdminService interface {
	CreateSystemUser(ctx context.Context, req dto.CreateSystemUserRequest) (*entity.Profile, error)
	ListByRole(ctx context.Context, role entity.Role) ([]entity.Profile, error)
	ListPending(ctx context.Context) ([]entity.Profile, error)
	SetStatus(ctx context.Context, userID uuid.UUID, status entity.Status) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	Analytics(ctx context.Context) (*dto.AnalyticsResponse, error)
}

type adminService struct {
	users   userRepo.UserRepository
	classes classRepo.ClassRepository
	notices noticeRepo.NoticeRepository
	search  searchSvc.SearchService
}

func NewAdminService(users userRepo.UserRepository, classes classRepo.ClassRepository, notices noticeRepo.NoticeRepository, search searchSvc.SearchService) AdminService {
	return &adminService{users: users, classes: classes, notices: notices, search: search}
}

// CreateSystemUser provisions an admin or teacher account, already approved.
// The binding layer restricts role to those two.
func (s *adminService) CreateSystemUser(ctx context.Context, req dto.CreateSystemUserRequest) (*entity.Profile, error) {
	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return nil, apperror.New(http.StatusBadRequest, "unknown role", apperror.ErrInvalidInput)
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperror.New(http.StatusConflict, "email already registered", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Email: req.Email, PasswordHash: string(hash)}
	profile := &entity.Profile{
		Name:   req.Name,
		Email:  req.Email,
		Role:   role,
		Status: entity.StatusApproved,
	}
	if req.Subject != "" {
		profile.Subject = &req.Subject
	}

	if err := s.users.Create(ctx, user, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *adminService) ListByRole(ctx context.Context, role entity.Role) ([]entity.Profile, error) {
	if !role.Valid() {
		return nil, apperror.New(http.StatusBadRequest, "unknown role", apperror.ErrInvalidInput)
	}
	return s.users.ListProfilesByRole(ctx, role)
}

func (s *adminService) ListPending(ctx context.Context) ([]entity.Profile, error) {
	return s.users.ListProfilesByStatus(ctx, entity.StatusPending)
}

func (s *adminService) SetStatus(ctx context.Context, userID uuid.UUID, status entity.Status) error {
	if !status.Valid() {
		return apperror.New(http.StatusBadRequest, "unknown status", apperror.ErrInvalidInput)
	}

	profile, err := s.users.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusNotFound, "profile not found", apperror.ErrNotFound)
		}
		return err
	}

	if err := s.users.UpdateStatus(ctx, userID, status); err != nil {
		return err
	}

	if profile.Role == entity.RoleStudent && s.search != nil {
		profile.Status = status
		if err := s.search.IndexStudent(profile); err != nil {
			log.Printf("admin: failed to re-index student %s: %v", userID, err)
		}
	}
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	profile, err := s.users.FindProfileByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	if profile != nil && profile.Role == entity.RoleStudent && s.search != nil {
		if err := s.search.DeleteStudent(userID.String()); err != nil {
			log.Printf("admin: failed to remove student %s from index: %v", userID, err)
		}
	}
	return nil
}

func (s *adminService) Analytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	out := &dto.AnalyticsResponse{}

	counts := []struct {
		role entity.Role
		dst  *int64
	}{
		{entity.RoleStudent, &out.Students},
		{entity.RoleTeacher, &out.Teachers},
		{entity.RoleParent, &out.Parents},
		{entity.RoleAdmin, &out.Admins},
	}
	for _, c := range counts {
		n, err := s.users.CountByRole(ctx, c.role)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	classes, err := s.classes.Count(ctx)
	if err != nil {
		return nil, err
	}
	out.Classes = classes

	notices, err := s.notices.Count(ctx)
	if err != nil {
		return nil, err
	}
	out.Notices = notices

	pending, err := s.users.ListProfilesByStatus(ctx, entity.StatusPending)
	if err != nil {
		return nil, err
	}
	out.Pending = int64(len(pending))

	return out, nil
}
