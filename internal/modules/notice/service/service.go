package service

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/notice/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/notice/repository"
	realtime "github.com/zaheerabbaspac-hue/PAC/internal/modules/realtime/service"
	searchSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/search/service"
	"github.com/zaheerabbaspac-hue/PAC/pkg/apperror"
)

type NoticeService interface {
	Create(ctx context.Context, createdBy uuid.UUID, req dto.CreateNoticeRequest) (*entity.Notice, error)
	ListForRole(ctx context.Context, role entity.Role) ([]entity.Notice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noticeService struct {
	repo      repository.NoticeRepository
	search    searchSvc.SearchService
	publisher realtime.SnapshotPublisher
	sanitizer *bluemonday.Policy
}

func NewNoticeService(repo repository.NoticeRepository, search searchSvc.SearchService, publisher realtime.SnapshotPublisher) NoticeService {
	return &noticeService{
		repo:      repo,
		search:    search,
		publisher: publisher,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *noticeService) Create(ctx context.Context, createdBy uuid.UUID, req dto.CreateNoticeRequest) (*entity.Notice, error) {
	audience := req.Audience
	if audience == "" {
		audience = "all"
	}

	notice := &entity.Notice{
		Title:     req.Title,
		Body:      s.sanitizer.Sanitize(req.Body),
		Audience:  audience,
		CreatedBy: createdBy,
	}
	if err := s.repo.Create(ctx, notice); err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexNotice(notice); err != nil {
			log.Printf("notice: failed to index %s: %v", notice.ID, err)
		}
	}
	s.publishSnapshot(ctx)
	return notice, nil
}

// ListForRole filters by the audiences visible to the role; admin tiers see
// everything.
func (s *noticeService) ListForRole(ctx context.Context, role entity.Role) ([]entity.Notice, error) {
	switch role {
	case entity.RoleAdmin, entity.RoleSuperAdmin:
		return s.repo.FindAll(ctx)
	case entity.RoleTeacher:
		return s.repo.FindForAudiences(ctx, []string{"teachers", "all"})
	case entity.RoleParent:
		return s.repo.FindForAudiences(ctx, []string{"parents", "all"})
	case entity.RoleStudent:
		return s.repo.FindForAudiences(ctx, []string{"students", "all"})
	}
	return nil, apperror.New(http.StatusBadRequest, "unknown role", apperror.ErrInvalidInput)
}

func (s *noticeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusNotFound, "notice not found", apperror.ErrNotFound)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.search != nil {
		if err := s.search.DeleteNotice(id.String()); err != nil {
			log.Printf("notice: failed to remove %s from index: %v", id, err)
		}
	}
	s.publishSnapshot(ctx)
	return nil
}

func (s *noticeService) publishSnapshot(ctx context.Context) {
	if s.publisher == nil {
		return
	}
	notices, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Printf("notice: failed to load snapshot for publish: %v", err)
		return
	}
	s.publisher.Publish(ctx, realtime.ChannelNotices, notices)
}
