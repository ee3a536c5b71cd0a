package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"easattend.com/easattend/attendance"
	"easattend.com/easattend/core"
	"easattend.com/easattend/infrastructure/communication"
	"easattend.com/easattend/model"
	"easattend.com/easattend/utils"
	"easattend.com/easattend/web/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CheckInHandler(dm *core.DatabaseManager, notifier *communication.Slack) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordEvent(c, dm, notifier, attendance.ActionCheckIn)
	}
}

func CheckOutHandler(dm *core.DatabaseManager, notifier *communication.Slack) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordEvent(c, dm, notifier, attendance.ActionCheckOut)
	}
}

func recordEvent(c *gin.Context, dm *core.DatabaseManager, notifier *communication.Slack, action attendance.Action) {
	var body CheckInOutDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid user_id"))
		return
	}

	method := model.MethodPortal
	if body.Method != "" {
		method = model.Method(body.Method)
	}

	now := time.Now()
	var user model.User
	var log *model.AttendanceLog

	// Guard, event write and summary recompute share one transaction; the
	// guard's locked read is what makes concurrent double check-ins lose.
	err = dm.Tx(c.Request.Context(), func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		var txErr error
		switch action {
		case attendance.ActionCheckIn:
			log, txErr = attendance.RecordCheckIn(tx, userID, method, now)
		case attendance.ActionCheckOut:
			log, txErr = attendance.RecordCheckOut(tx, userID, now)
		}
		return txErr
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, common.NewErrorResponse("User not found"))
		return
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrNoOpenCheckIn):
		c.JSON(http.StatusConflict, common.NewErrorResponse(err.Error()))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	go func() {
		_ = notifier.Info(fmt.Sprintf("%s: %s at %s", user.Name, action, now.Format(time.RFC3339)))
	}()

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"message": fmt.Sprintf("%s recorded at %s", action, now.Format(time.RFC3339)),
		"log":     toLogDTO(*log),
	}))
}

func UserLogsHandler(dm *core.DatabaseManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid user_id"))
			return
		}

		var logs []model.AttendanceLog
		if err := dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
			return db.Where("user_id = ?", userID).
				Order("check_in DESC, id DESC").
				Find(&logs).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, common.NewSuccessResponse(utils.Map(logs, toLogDTO)))
	}
}

func CheckStatusHandler(dm *core.DatabaseManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.Query("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid user_id"))
			return
		}

		var open bool
		if err := dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
			open, err = attendance.HasOpenSession(db, userID)
			return err
		}); err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
			"user_id":    userID.String(),
			"checked_in": open,
		}))
	}
}
