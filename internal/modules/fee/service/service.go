package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/fee/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/fee/repository"
)

type FeeService interface {
	Create(ctx context.Context, req dto.CreateFeeRequest) (*entity.FeeRecord, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.FeeRecord, error)
	ListAll(ctx context.Context) ([]entity.FeeRecord, error)
	MarkPaid(ctx context.Context, id uuid.UUID) error
	SweepOverdue(ctx context.Context) error
}

type feeService struct {
	repo repository.FeeRepository
}

func NewFeeService(repo repository.FeeRepository) FeeService {
	return &feeService{repo: repo}
}

func (s *feeService) Create(ctx context.Context, req dto.CreateFeeRequest) (*entity.FeeRecord, error) {
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return nil, err
	}

	fee := &entity.FeeRecord{
		StudentID: studentID,
		Term:      req.Term,
		Amount:    req.Amount,
		DueDate:   req.DueDate,
		Status:    entity.FeePending,
	}
	if err := s.repo.Create(ctx, fee); err != nil {
		return nil, err
	}
	return fee, nil
}

func (s *feeService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.FeeRecord, error) {
	return s.repo.FindByStudent(ctx, studentID)
}

func (s *feeService) ListAll(ctx context.Context) ([]entity.FeeRecord, error) {
	return s.repo.FindAll(ctx)
}

func (s *feeService) MarkPaid(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, entity.FeePaid)
}

// SweepOverdue is run nightly by the scheduler.
func (s *feeService) SweepOverdue(ctx context.Context) error {
	today := time.Now().Format("2006-01-02")
	n, err := s.repo.MarkOverdueBefore(ctx, today)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("fee: marked %d records overdue", n)
	}
	return nil
}
