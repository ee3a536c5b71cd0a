package attendance

import (
	"testing"
	"time"

	"easattend.com/easattend/model"
	"easattend.com/easattend/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2023, 6, 5, hour, min, 0, 0, time.UTC)
}

func entry(userID uuid.UUID, in time.Time, out *time.Time) model.AttendanceLog {
	return model.AttendanceLog{
		ID:       uuid.New(),
		UserID:   userID,
		CheckIn:  utils.Ptr(in),
		CheckOut: out,
	}
}

func TestRecomputeSummary(t *testing.T) {
	userID := uuid.New()
	date := utils.MustParseDate("2023-06-05")

	t.Run("Empty log set produces nothing", func(t *testing.T) {
		_, ok := RecomputeSummary(userID, date, nil)
		assert.False(t, ok)
	})

	t.Run("Single closed session", func(t *testing.T) {
		t1 := at(9, 0)
		t2 := at(12, 30)
		logs := []model.AttendanceLog{entry(userID, t1, utils.Ptr(t2))}

		summary, ok := RecomputeSummary(userID, date, logs)
		assert.True(t, ok)
		assert.Equal(t, t1, *summary.FirstIn)
		assert.Equal(t, t2, *summary.FinalOut)
		assert.Equal(t, int64(3*3600+30*60), summary.TotalSeconds)
	})

	t.Run("Two sessions with a lunch gap", func(t *testing.T) {
		logs := []model.AttendanceLog{
			entry(userID, at(9, 0), utils.Ptr(at(12, 0))),
			entry(userID, at(13, 0), utils.Ptr(at(17, 0))),
		}

		summary, ok := RecomputeSummary(userID, date, logs)
		assert.True(t, ok)
		assert.Equal(t, at(9, 0), *summary.FirstIn)
		assert.Equal(t, at(17, 0), *summary.FinalOut)
		assert.Equal(t, "08:00:00", FormatDuration(summary.TotalSeconds))
	})

	t.Run("Open session contributes no duration", func(t *testing.T) {
		logs := []model.AttendanceLog{entry(userID, at(9, 0), nil)}

		summary, ok := RecomputeSummary(userID, date, logs)
		assert.True(t, ok)
		assert.Equal(t, at(9, 0), *summary.FirstIn)
		assert.Nil(t, summary.FinalOut)
		assert.Equal(t, "00:00:00", FormatDuration(summary.TotalSeconds))
	})

	t.Run("Open session still moves first_in", func(t *testing.T) {
		logs := []model.AttendanceLog{
			entry(userID, at(10, 0), utils.Ptr(at(12, 0))),
			entry(userID, at(8, 0), nil),
		}

		summary, ok := RecomputeSummary(userID, date, logs)
		assert.True(t, ok)
		assert.Equal(t, at(8, 0), *summary.FirstIn)
		assert.Equal(t, at(12, 0), *summary.FinalOut)
		assert.Equal(t, int64(2*3600), summary.TotalSeconds)
	})

	t.Run("Recompute is idempotent", func(t *testing.T) {
		logs := []model.AttendanceLog{
			entry(userID, at(9, 0), utils.Ptr(at(12, 0))),
			entry(userID, at(13, 0), utils.Ptr(at(17, 0))),
		}

		first, ok := RecomputeSummary(userID, date, logs)
		assert.True(t, ok)
		second, ok := RecomputeSummary(userID, date, logs)
		assert.True(t, ok)

		assert.Equal(t, first.FirstIn, second.FirstIn)
		assert.Equal(t, first.FinalOut, second.FinalOut)
		assert.Equal(t, first.TotalSeconds, second.TotalSeconds)
		assert.Equal(t, first.Date, second.Date)
	})

	t.Run("Summary date is the day at midnight", func(t *testing.T) {
		logs := []model.AttendanceLog{entry(userID, at(9, 0), nil)}

		summary, ok := RecomputeSummary(userID, at(9, 0), logs)
		assert.True(t, ok)
		assert.Equal(t, date, summary.Date)
		assert.Equal(t, userID, summary.UserID)
	})
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{"Zero", 0, "00:00:00"},
		{"Seconds only", 45, "00:00:45"},
		{"Full day shape", 8*3600 + 5*60 + 9, "08:05:09"},
		{"Hours not clamped to 24", 26*3600 + 90, "26:01:30"},
		{"Negative total renders as zero", -90, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds))
		})
	}
}
