package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func filterContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/admin/logs"+query, nil)
	return c
}

func TestParseLogFilters(t *testing.T) {
	userID := uuid.New()

	t.Run("No filters", func(t *testing.T) {
		filters, err := parseLogFilters(filterContext(t, ""))
		assert.NoError(t, err)
		assert.Nil(t, filters.userID)
		assert.Nil(t, filters.date)
	})

	t.Run("Valid user and date", func(t *testing.T) {
		filters, err := parseLogFilters(filterContext(t, "?user_id="+userID.String()+"&date=2025-03-14"))
		assert.NoError(t, err)
		if assert.NotNil(t, filters.userID) {
			assert.Equal(t, userID, *filters.userID)
		}
		if assert.NotNil(t, filters.date) {
			assert.Equal(t, "2025-03-14", filters.date.Format("2006-01-02"))
		}
	})

	t.Run("Malformed user_id", func(t *testing.T) {
		_, err := parseLogFilters(filterContext(t, "?user_id=not-a-uuid"))
		assert.ErrorIs(t, err, errBadUserFilter)
		assert.Equal(t, "Invalid user_id", err.Error())
	})

	t.Run("Malformed date", func(t *testing.T) {
		_, err := parseLogFilters(filterContext(t, "?date=14-03-2025"))
		assert.ErrorIs(t, err, errBadDateFilter)
		assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", err.Error())
	})

	t.Run("Each filter reports its own error", func(t *testing.T) {
		_, userErr := parseLogFilters(filterContext(t, "?user_id=nope&date=2025-03-14"))
		_, dateErr := parseLogFilters(filterContext(t, "?user_id="+userID.String()+"&date=nope"))
		assert.NotEqual(t, userErr.Error(), dateErr.Error())
	})
}
