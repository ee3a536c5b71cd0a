package handlers

import (
	"time"

	"easattend.com/easattend/model"
)

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CheckInOutDTO struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Method string `json:"method" binding:"omitempty,oneof=portal card"`
}

type UserCreateDTO struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=8"`
	Role       string  `json:"role" binding:"required,oneof=admin employee"`
	Department *string `json:"department"`
}

type AttendanceLogDTO struct {
	ID       string     `json:"id"`
	UserID   string     `json:"user_id"`
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Method   string     `json:"method"`
}

func toLogDTO(log model.AttendanceLog) AttendanceLogDTO {
	return AttendanceLogDTO{
		ID:       log.ID.String(),
		UserID:   log.UserID.String(),
		CheckIn:  log.CheckIn,
		CheckOut: log.CheckOut,
		Method:   string(log.Method),
	}
}

// SummaryDTO is the wire shape for a daily summary. The zero placeholder
// (nil times, "00:00:00") stands in for a summary that was never computed.
type SummaryDTO struct {
	FirstIn       *time.Time `json:"first_in"`
	FinalOut      *time.Time `json:"final_out"`
	TotalDuration string     `json:"total_duration"`
}
