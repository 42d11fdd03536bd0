package service

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/profile/dto"
	searchSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/search/service"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/user/repository"
	"github.com/zaheerabbaspac-hue/PAC/internal/navigation"
	"github.com/zaheerabbaspac-hue/PAC/pkg/apperror"
)

type ProfileService interface {
	Me(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*entity.Profile, error)
}

type profileService struct {
	repo   repository.UserRepository
	search searchSvc.SearchService
}

func NewProfileService(repo repository.UserRepository, search searchSvc.SearchService) ProfileService {
	return &profileService{repo: repo, search: search}
}

func (s *profileService) Me(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.repo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "profile not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return profile, nil
}

// Update patches the caller's own profile. Role and status are deliberately
// not updatable here; those transitions belong to the admin surface.
func (s *profileService) Update(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*entity.Profile, error) {
	profile, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Class != "" {
		profile.Class = req.Class
	}
	if req.Section != "" {
		profile.Section = req.Section
	}
	if req.Subject != "" {
		profile.Subject = &req.Subject
	}
	if req.ParentName != "" {
		profile.ParentName = &req.ParentName
	}

	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	if profile.Role == entity.RoleStudent && s.search != nil {
		if err := s.search.IndexStudent(profile); err != nil {
			log.Printf("profile: failed to re-index student %s: %v", profile.UserID, err)
		}
	}
	return profile, nil
}

// resolver adapts the user repository to the navigation controller's
// ProfileResolver port. A missing record is (nil, nil): the controller treats
// that as an unprovisioned identity, not a failure.
type resolver struct {
	repo repository.UserRepository
}

func NewProfileResolver(repo repository.UserRepository) navigation.ProfileResolver {
	return &resolver{repo: repo}
}

func (r *resolver) Resolve(ctx context.Context, identityID string) (*entity.Profile, error) {
	userID, err := uuid.Parse(identityID)
	if err != nil {
		return nil, err
	}
	profile, err := r.repo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}
