package handlers

import (
	"errors"
	"net/http"
	"time"

	"easattend.com/easattend/attendance"
	"easattend.com/easattend/core"
	"easattend.com/easattend/model"
	"easattend.com/easattend/utils"
	"easattend.com/easattend/web/common"
	"easattend.com/easattend/web/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TodaySummaryHandler returns today's summary for the target user. Employees
// always get their own; admins name a target with ?user_id=. An absent
// summary row is "not yet computed", answered with a zero placeholder rather
// than an error.
func TodaySummaryHandler(dm *core.DatabaseManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middlewares.CurrentIdentity(c)
		if identity == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		target := identity.UserID
		if identity.IsAdmin() {
			target = c.Query("user_id")
			if target == "" {
				c.JSON(http.StatusBadRequest, common.NewErrorResponse("Admin must provide user_id"))
				return
			}
		}

		userID, err := uuid.Parse(target)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid user_id"))
			return
		}

		today := utils.StartOfDay(time.Now())
		var summary model.DailySummary
		err = dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
			return db.Where("user_id = ? AND date = ?", userID, today.Format("2006-01-02")).
				First(&summary).Error
		})
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		dto := SummaryDTO{TotalDuration: attendance.FormatDuration(0)}
		if err == nil {
			dto = SummaryDTO{
				FirstIn:       summary.FirstIn,
				FinalOut:      summary.FinalOut,
				TotalDuration: attendance.FormatDuration(summary.TotalSeconds),
			}
		}

		c.JSON(http.StatusOK, common.NewSuccessResponse(dto))
	}
}
