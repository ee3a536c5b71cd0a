package handlers

import (
	"net/http"
	"time"

	"easattend.com/easattend/core"
	"easattend.com/easattend/model"
	"easattend.com/easattend/utils"
	"easattend.com/easattend/web/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportLogsHandler streams the filtered log set as an .xlsx workbook, one
// row per event, with the owning user's name and email resolved.
func ExportLogsHandler(dm *core.DatabaseManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters, err := parseLogFilters(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
			return
		}

		var logs []model.AttendanceLog
		var users []model.User
		err = dm.Exec(c.Request.Context(), func(db *gorm.DB) error {
			if err := filters.apply(db).Find(&logs).Error; err != nil {
				return err
			}
			userIDs := utils.Map(logs, func(l model.AttendanceLog) uuid.UUID { return l.UserID })
			if len(userIDs) == 0 {
				return nil
			}
			return db.Where("id IN ?", userIDs).Find(&users).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		byID := make(map[uuid.UUID]model.User, len(users))
		for _, u := range users {
			byID[u.ID] = u
		}

		f := excelize.NewFile()
		defer f.Close()

		const sheet = "Attendance Logs"
		index, err := f.NewSheet(sheet)
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		header := []interface{}{"Name", "Email", "Check In", "Check Out", "Method"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		for i, log := range logs {
			user := byID[log.UserID]
			row := []interface{}{
				user.Name,
				user.Email,
				formatCell(log.CheckIn),
				formatCell(log.CheckOut),
				string(log.Method),
			}
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
				return
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
				return
			}
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="attendance-logs.xlsx"`)
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		}
	}
}

func formatCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
