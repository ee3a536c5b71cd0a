package handlers

import (
	"errors"
	"net/http"
	"time"

	"easattend.com/easattend/core"
	"easattend.com/easattend/infrastructure/devops"
	"easattend.com/easattend/model"
	"easattend.com/easattend/security"
	"easattend.com/easattend/utils"
	"easattend.com/easattend/web/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CreateUserHandler(dm *core.DatabaseManager, cfg devops.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body UserCreateDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
			return
		}

		hash, err := security.HashPassword(body.Password, cfg.BcryptCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		user := model.User{
			Name:         body.Name,
			Email:        body.Email,
			Role:         model.Role(body.Role),
			PasswordHash: hash,
			Department:   body.Department,
		}

		err = dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
			var count int64
			if err := db.Model(&model.User{}).Where("email = ?", body.Email).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return errEmailTaken
			}
			return db.Create(&user).Error
		})
		switch {
		case errors.Is(err, errEmailTaken):
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Email already registered"))
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, common.NewSuccessResponse(user))
	}
}

var errEmailTaken = errors.New("email already registered")

func ListUsersHandler(dm *core.DatabaseManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []model.User
		if err := dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
			return db.Where("role = ?", model.RoleEmployee).Order("name").Find(&users).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, common.NewSuccessResponse(users))
	}
}

func DeleteUserHandler(dm *core.DatabaseManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid user id"))
			return
		}

		err = dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
			result := db.Delete(&model.User{}, "id = ?", userID)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, common.NewErrorResponse("User not found"))
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"message": "User deleted successfully"}))
	}
}

// AdminLogsHandler lists logs across all users with optional ?user_id= and
// ?date= (yyyy-MM-dd) filters, newest check-in first.
func AdminLogsHandler(dm *core.DatabaseManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters, err := parseLogFilters(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
			return
		}

		var logs []model.AttendanceLog
		if err := dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
			return filters.apply(db).Find(&logs).Error
		}); err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, common.NewSearchResponse(utils.Map(logs, toLogDTO), int64(len(logs))))
	}
}

var (
	errBadUserFilter = errors.New("Invalid user_id")
	errBadDateFilter = errors.New("Invalid date format. Use YYYY-MM-DD")
)

// logFilters holds the parsed admin log query filters. Each distinct filter
// fails with its own error so the caller can report which one was malformed.
type logFilters struct {
	userID *uuid.UUID
	date   *time.Time
}

func parseLogFilters(c *gin.Context) (logFilters, error) {
	var filters logFilters

	if raw := c.Query("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return filters, errBadUserFilter
		}
		filters.userID = &userID
	}

	if raw := c.Query("date"); raw != "" {
		date, err := utils.ParseDate(raw)
		if err != nil {
			return filters, errBadDateFilter
		}
		filters.date = &date
	}

	return filters, nil
}

func (f logFilters) apply(db *gorm.DB) *gorm.DB {
	query := db.Model(&model.AttendanceLog{})
	if f.userID != nil {
		query = query.Where("user_id = ?", *f.userID)
	}
	if f.date != nil {
		query = query.Where("DATE(check_in) = ?", f.date.Format("2006-01-02"))
	}
	return query.Order("check_in DESC, id DESC")
}
