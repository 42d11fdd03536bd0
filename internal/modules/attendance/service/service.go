package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/attendance/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/attendance/repository"
	directory "github.com/zaheerabbaspac-hue/PAC/internal/modules/directory/service"
	userRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/user/repository"
	"github.com/zaheerabbaspac-hue/PAC/pkg/apperror"
)

type AttendanceService interface {
	BuildDaySheet(ctx context.Context, selector, date string) (*dto.DaySheetResponse, error)
	SaveDay(ctx context.Context, markedBy uuid.UUID, req dto.SaveAttendanceRequest) error
	StudentHistory(ctx context.Context, studentID uuid.UUID) ([]entity.AttendanceRecord, error)
}

type attendanceService struct {
	repo      repository.AttendanceRepository
	users     userRepo.UserRepository
	directory directory.DirectoryService
}

func NewAttendanceService(repo repository.AttendanceRepository, users userRepo.UserRepository, dir directory.DirectoryService) AttendanceService {
	return &attendanceService{repo: repo, users: users, directory: dir}
}

// BuildDaySheet assembles the marking sheet for a class selector and day.
// Every student on the roster appears; anyone without a saved record for that
// day shows as present, which is the starting state of a fresh sheet.
func (s *attendanceService) BuildDaySheet(ctx context.Context, selector, date string) (*dto.DaySheetResponse, error) {
	options, err := s.directory.ListOptions(ctx)
	if err != nil {
		return nil, err
	}

	allStudents, err := s.users.ListStudentsByClass(ctx, "")
	if err != nil {
		return nil, err
	}
	roster := directory.FilterRoster(allStudents, selector, options)
	if roster == nil {
		return nil, apperror.New(http.StatusNotFound, "unknown class selector", apperror.ErrNotFound)
	}

	saved, err := s.repo.FindDay(ctx, selector, date)
	if err != nil {
		return nil, err
	}
	byStudent := make(map[uuid.UUID]entity.AttendanceStatus, len(saved))
	for _, rec := range saved {
		byStudent[rec.StudentID] = rec.Status
	}

	entries := make([]dto.RosterEntry, 0, len(roster))
	for _, student := range roster {
		status, ok := byStudent[student.UserID]
		if !ok {
			status = entity.AttendancePresent
		}
		entries = append(entries, dto.RosterEntry{
			StudentID: student.UserID,
			Name:      student.Name,
			Status:    status,
		})
	}

	return &dto.DaySheetResponse{Selector: selector, Date: date, Entries: entries}, nil
}

// SaveDay validates every entry and replaces the (selector, date) block.
// Entries for students outside the selector's roster are rejected rather than
// silently stored.
func (s *attendanceService) SaveDay(ctx context.Context, markedBy uuid.UUID, req dto.SaveAttendanceRequest) error {
	options, err := s.directory.ListOptions(ctx)
	if err != nil {
		return err
	}

	allStudents, err := s.users.ListStudentsByClass(ctx, "")
	if err != nil {
		return err
	}
	roster := directory.FilterRoster(allStudents, req.Selector, options)
	if roster == nil {
		return apperror.New(http.StatusNotFound, "unknown class selector", apperror.ErrNotFound)
	}
	onRoster := make(map[uuid.UUID]struct{}, len(roster))
	for _, student := range roster {
		onRoster[student.UserID] = struct{}{}
	}

	records := make([]entity.AttendanceRecord, 0, len(req.Entries))
	for idStr, statusStr := range req.Entries {
		studentID, err := uuid.Parse(idStr)
		if err != nil {
			return apperror.New(http.StatusBadRequest, "invalid student id "+idStr, apperror.ErrInvalidInput)
		}
		if _, ok := onRoster[studentID]; !ok {
			return apperror.New(http.StatusBadRequest, "student not on this roster", apperror.ErrInvalidInput)
		}
		status := entity.AttendanceStatus(statusStr)
		if !status.Valid() {
			return apperror.New(http.StatusBadRequest, "invalid attendance status "+statusStr, apperror.ErrInvalidInput)
		}
		records = append(records, entity.AttendanceRecord{
			ClassSelector: req.Selector,
			Date:          req.Date,
			StudentID:     studentID,
			Status:        status,
			MarkedBy:      markedBy,
		})
	}

	return s.repo.ReplaceDay(ctx, req.Selector, req.Date, records)
}

func (s *attendanceService) StudentHistory(ctx context.Context, studentID uuid.UUID) ([]entity.AttendanceRecord, error) {
	return s.repo.FindByStudent(ctx, studentID)
}
