package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Method string

const (
	MethodPortal Method = "portal"
	MethodCard   Method = "card"
)

// AttendanceLog is one attendance event row. A check-in creates the row;
// the matching check-out is written onto the same row, so an open session
// is a row with CheckIn set and CheckOut still NULL.
type AttendanceLog struct {
	ID       uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	UserID   uuid.UUID  `gorm:"type:char(36);index;not null" json:"user_id"`
	CheckIn  *time.Time `gorm:"index" json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Method   Method     `gorm:"type:varchar(20);not null;default:portal" json:"method"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"created_at"`
}

func (AttendanceLog) TableName() string {
	return "attendance_logs"
}

func (l *AttendanceLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Open reports whether the row is an unmatched check-in.
func (l *AttendanceLog) Open() bool {
	return l.CheckIn != nil && l.CheckOut == nil
}
