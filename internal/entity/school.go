package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Class struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Code      string    `gorm:"size:20" json:"code"`
	Sections  []Section `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE" json:"sections"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Class) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Section struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClassID   uuid.UUID `gorm:"type:uuid;not null;index" json:"class_id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Code      string    `gorm:"size:20" json:"code"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// AttendanceStatus for one student on one day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// AttendanceRecord is keyed by (class selector, date, student). Saving a day
// replaces the whole (selector, date) block, last write wins.
type AttendanceRecord struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ClassSelector string           `gorm:"size:120;not null;index:idx_attendance_day" json:"class_selector"`
	Date          string           `gorm:"size:10;not null;index:idx_attendance_day" json:"date"`
	StudentID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"student_id"`
	Status        AttendanceStatus `gorm:"size:10;not null" json:"status"`
	MarkedBy      uuid.UUID        `gorm:"type:uuid" json:"marked_by"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type Homework struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClassSelector string    `gorm:"size:120;not null;index" json:"class_selector"`
	ClassName     string    `gorm:"size:100;not null" json:"class_name"`
	Section       string    `gorm:"size:50" json:"section"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Subject       string    `gorm:"size:100" json:"subject"`
	Description   string    `gorm:"type:text" json:"description"`
	DueDate       string    `gorm:"size:10" json:"due_date"`
	CreatedBy     uuid.UUID `gorm:"type:uuid" json:"created_by"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (h *Homework) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// NoticeAudience tags who a notice is for; "all" is visible to every role.
type Notice struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Audience  string    `gorm:"size:20;not null;default:all;index" json:"audience"`
	CreatedBy uuid.UUID `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (n *Notice) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

type FeeStatus string

const (
	FeePending FeeStatus = "pending"
	FeePaid    FeeStatus = "paid"
	FeeOverdue FeeStatus = "overdue"
)

type FeeRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Term      string    `gorm:"size:50;not null" json:"term"`
	Amount    int64     `gorm:"not null" json:"amount"`
	DueDate   string    `gorm:"size:10" json:"due_date"`
	Status    FeeStatus `gorm:"size:10;not null;default:pending" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (f *FeeRecord) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

type LeaveRequest struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID uuid.UUID   `gorm:"type:uuid;not null;index" json:"student_id"`
	FromDate  string      `gorm:"size:10;not null" json:"from_date"`
	ToDate    string      `gorm:"size:10;not null" json:"to_date"`
	Reason    string      `gorm:"type:text" json:"reason"`
	Status    LeaveStatus `gorm:"size:10;not null;default:pending" json:"status"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (l *LeaveRequest) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

type GalleryImage struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	Caption    string    `gorm:"size:200" json:"caption"`
	UploadedBy uuid.UUID `gorm:"type:uuid" json:"uploaded_by"`
	Orphaned   bool      `gorm:"default:false" json:"-"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Setting is a single keyed value (school logo URL and friends).
type Setting struct {
	Key       string    `gorm:"size:50;primaryKey" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
