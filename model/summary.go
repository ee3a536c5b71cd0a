package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailySummary is a derived aggregate over one user's attendance logs for one
// calendar date. It is recomputed in full on every event and can always be
// rebuilt from the logs; it is never a source of truth on its own.
//
// Grain: (user_id, date), at most one row.
type DailySummary struct {
	ID     uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:char(36);uniqueIndex:idx_summary_user_date,priority:1;not null" json:"user_id"`
	Date   time.Time `gorm:"type:date;uniqueIndex:idx_summary_user_date,priority:2;not null" json:"date"`

	FirstIn  *time.Time `json:"first_in"`
	FinalOut *time.Time `json:"final_out"`
	// TotalSeconds is the summed worked duration in whole seconds.
	TotalSeconds int64 `gorm:"not null;default:0" json:"total_seconds"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updated_at"`
}

func (DailySummary) TableName() string {
	return "attendance_summaries"
}

func (s *DailySummary) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
