package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/leave/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/leave/repository"
	"github.com/zaheerabbaspac-hue/PAC/pkg/apperror"
)

type LeaveService interface {
	Apply(ctx context.Context, studentID uuid.UUID, req dto.ApplyLeaveRequest) (*entity.LeaveRequest, error)
	ListMine(ctx context.Context, studentID uuid.UUID) ([]entity.LeaveRequest, error)
	ListPending(ctx context.Context) ([]entity.LeaveRequest, error)
	Decide(ctx context.Context, id uuid.UUID, approve bool) error
}

type leaveService struct {
	repo repository.LeaveRepository
}

func NewLeaveService(repo repository.LeaveRepository) LeaveService {
	return &leaveService{repo: repo}
}

func (s *leaveService) Apply(ctx context.Context, studentID uuid.UUID, req dto.ApplyLeaveRequest) (*entity.LeaveRequest, error) {
	if req.ToDate < req.FromDate {
		return nil, apperror.New(http.StatusBadRequest, "leave ends before it starts", apperror.ErrInvalidInput)
	}

	leave := &entity.LeaveRequest{
		StudentID: studentID,
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
		Reason:    req.Reason,
		Status:    entity.LeavePending,
	}
	if err := s.repo.Create(ctx, leave); err != nil {
		return nil, err
	}
	return leave, nil
}

func (s *leaveService) ListMine(ctx context.Context, studentID uuid.UUID) ([]entity.LeaveRequest, error) {
	return s.repo.FindByStudent(ctx, studentID)
}

func (s *leaveService) ListPending(ctx context.Context) ([]entity.LeaveRequest, error) {
	return s.repo.FindByStatus(ctx, entity.LeavePending)
}

// Decide settles a pending request; already-decided requests stay decided.
func (s *leaveService) Decide(ctx context.Context, id uuid.UUID, approve bool) error {
	leave, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusNotFound, "leave request not found", apperror.ErrNotFound)
		}
		return err
	}
	if leave.Status != entity.LeavePending {
		return apperror.New(http.StatusConflict, "leave request already decided", apperror.ErrConflict)
	}

	status := entity.LeaveRejected
	if approve {
		status = entity.LeaveApproved
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
