package attendance

import (
	"fmt"
	"time"

	"easattend.com/easattend/model"
	"easattend.com/easattend/utils"
	"github.com/google/uuid"
)

// RecomputeSummary derives the daily summary for one user's logs on one
// calendar date. It returns ok=false for an empty log set: the caller must
// then skip the upsert, so "never computed" stays distinguishable from
// "computed as zero".
//
// first_in is the earliest check-in, final_out the latest check-out, and the
// total counts only rows where both sides are present. Rows with a single
// side still move first_in/final_out. Recomputation with unchanged logs is
// idempotent.
func RecomputeSummary(userID uuid.UUID, date time.Time, logs []model.AttendanceLog) (model.DailySummary, bool) {
	if len(logs) == 0 {
		return model.DailySummary{}, false
	}

	summary := model.DailySummary{
		UserID: userID,
		Date:   utils.StartOfDay(date),
	}

	for i := range logs {
		log := &logs[i]
		if log.CheckIn != nil {
			if summary.FirstIn == nil || log.CheckIn.Before(*summary.FirstIn) {
				summary.FirstIn = log.CheckIn
			}
		}
		if log.CheckOut != nil {
			if summary.FinalOut == nil || log.CheckOut.After(*summary.FinalOut) {
				summary.FinalOut = log.CheckOut
			}
		}
		if log.CheckIn != nil && log.CheckOut != nil {
			summary.TotalSeconds += int64(log.CheckOut.Sub(*log.CheckIn) / time.Second)
		}
	}

	return summary, true
}

// FormatDuration renders whole seconds as zero-padded HH:MM:SS. Hours are
// not clamped to 24. Negative totals (reachable through hand-edited rows
// where check_out precedes check_in) render as zero, never as signed
// components.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
