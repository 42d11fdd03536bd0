package dto

import (
	"github.com/google/uuid"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
)

type SaveAttendanceRequest struct {
	Selector string            `json:"selector" binding:"required"`
	Date     string            `json:"date" binding:"required,datetime=2006-01-02"`
	Entries  map[string]string `json:"entries" binding:"required"`
}

// RosterEntry is one line of the marking sheet: the student plus their status
// for the day, defaulting to present for anyone not yet marked.
type RosterEntry struct {
	StudentID uuid.UUID               `json:"student_id"`
	Name      string                  `json:"name"`
	Status    entity.AttendanceStatus `json:"status"`
}

type DaySheetResponse struct {
	Selector string        `json:"selector"`
	Date     string        `json:"date"`
	Entries  []RosterEntry `json:"entries"`
}
