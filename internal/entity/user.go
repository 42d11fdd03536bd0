package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status of a profile in the approval workflow.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// User carries the credentials; everything role- and school-shaped lives on
// the Profile, which is what the navigation controller resolves.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	Profile      *Profile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Profile struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100" json:"email"`
	Role       Role      `gorm:"size:20;not null;index" json:"role"`
	Status     Status    `gorm:"size:20;default:approved" json:"status"`
	Class      string    `gorm:"size:50" json:"class,omitempty"`
	Section    string    `gorm:"size:50" json:"section,omitempty"`
	Subject    *string   `gorm:"size:100" json:"subject,omitempty"`
	ParentName *string   `gorm:"size:100" json:"parent_name,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
