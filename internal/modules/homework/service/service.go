package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	directory "github.com/zaheerabbaspac-hue/PAC/internal/modules/directory/service"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/homework/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/homework/repository"
	"github.com/zaheerabbaspac-hue/PAC/pkg/apperror"
)

type HomeworkService interface {
	Create(ctx context.Context, createdBy uuid.UUID, req dto.CreateHomeworkRequest) (*entity.Homework, error)
	ListBySelector(ctx context.Context, selector string) ([]entity.Homework, error)
	ListForStudent(ctx context.Context, profile *entity.Profile) ([]entity.Homework, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type homeworkService struct {
	repo      repository.HomeworkRepository
	directory directory.DirectoryService
	sanitizer *bluemonday.Policy
}

func NewHomeworkService(repo repository.HomeworkRepository, dir directory.DirectoryService) HomeworkService {
	return &homeworkService{
		repo:      repo,
		directory: dir,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Create resolves the selector against the directory so homework is never
// addressed to a class that does not exist, then stores the denormalized
// class/section pair alongside the selector.
func (s *homeworkService) Create(ctx context.Context, createdBy uuid.UUID, req dto.CreateHomeworkRequest) (*entity.Homework, error) {
	options, err := s.directory.ListOptions(ctx)
	if err != nil {
		return nil, err
	}

	var className, section string
	found := false
	for _, opt := range options {
		if opt.Value == req.Selector {
			className, section = opt.ClassName, opt.Section
			found = true
			break
		}
	}
	if !found {
		return nil, apperror.New(http.StatusNotFound, "unknown class selector", apperror.ErrNotFound)
	}

	homework := &entity.Homework{
		ClassSelector: req.Selector,
		ClassName:     className,
		Section:       section,
		Title:         req.Title,
		Subject:       req.Subject,
		Description:   s.sanitizer.Sanitize(req.Description),
		DueDate:       req.DueDate,
		CreatedBy:     createdBy,
	}
	if err := s.repo.Create(ctx, homework); err != nil {
		return nil, err
	}
	return homework, nil
}

func (s *homeworkService) ListBySelector(ctx context.Context, selector string) ([]entity.Homework, error) {
	return s.repo.FindBySelector(ctx, selector)
}

// ListForStudent derives the selector from the student's own class and
// section, the same composite the option list produces.
func (s *homeworkService) ListForStudent(ctx context.Context, profile *entity.Profile) ([]entity.Homework, error) {
	if profile == nil || profile.Class == "" {
		return []entity.Homework{}, nil
	}
	selector := profile.Class
	if profile.Section != "" {
		selector = profile.Class + "-" + profile.Section
	}
	return s.repo.FindBySelector(ctx, selector)
}

func (s *homeworkService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
