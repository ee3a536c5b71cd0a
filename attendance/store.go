package attendance

import (
	"errors"
	"time"

	"easattend.com/easattend/model"
	"easattend.com/easattend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LatestLog returns the user's most recent log ordered by
// (check_in DESC, id DESC), or nil when none exists. Rows with a NULL
// check_in carry no ordering key and are excluded. When forUpdate is set the
// row is read under SELECT ... FOR UPDATE so concurrent writers for the same
// user serialize on it; that only holds inside a transaction. When no row
// exists there is nothing to lock, so callers racing on a first-ever write
// fall back to the storage engine's conflict handling.
func LatestLog(db *gorm.DB, userID uuid.UUID, forUpdate bool) (*model.AttendanceLog, error) {
	query := db.Where("user_id = ? AND check_in IS NOT NULL", userID).
		Order("check_in DESC, id DESC")
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var last model.AttendanceLog
	if err := query.First(&last).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &last, nil
}

// LogsForDay returns all of a user's logs whose check-in falls on the given
// calendar date. Bucketing is by check-in date only; a check-out written
// after midnight stays with its check-in's day.
func LogsForDay(db *gorm.DB, userID uuid.UUID, date time.Time) ([]model.AttendanceLog, error) {
	var logs []model.AttendanceLog
	err := db.Where("user_id = ? AND DATE(check_in) = ?", userID, date.Format("2006-01-02")).
		Order("check_in ASC, id ASC").
		Find(&logs).Error
	return logs, err
}

// UpsertSummary recomputes and stores the user's summary for date from the
// day's full log set. An empty log set leaves storage untouched. An existing
// summary row keeps its id; only the derived fields are overwritten.
func UpsertSummary(db *gorm.DB, userID uuid.UUID, date time.Time) (*model.DailySummary, error) {
	logs, err := LogsForDay(db, userID, date)
	if err != nil {
		return nil, err
	}

	computed, ok := RecomputeSummary(userID, date, logs)
	if !ok {
		return nil, nil
	}

	var existing model.DailySummary
	err = db.Where("user_id = ? AND date = ?", userID, computed.Date.Format("2006-01-02")).
		First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := db.Create(&computed).Error; err != nil {
			return nil, err
		}
		return &computed, nil
	case err != nil:
		return nil, err
	}

	updates := map[string]interface{}{
		"first_in":      computed.FirstIn,
		"final_out":     computed.FinalOut,
		"total_seconds": computed.TotalSeconds,
	}
	if err := db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	existing.FirstIn = computed.FirstIn
	existing.FinalOut = computed.FinalOut
	existing.TotalSeconds = computed.TotalSeconds
	return &existing, nil
}

// RecordCheckIn validates and persists a check-in at now, then recomputes the
// day's summary. db must be a transaction: the guard read locks the user's
// latest row so a concurrent check-in observes the committed state and fails
// with ErrAlreadyCheckedIn rather than double-opening a session. A user with
// no rows yet has nothing to lock, so two simultaneous first-ever check-ins
// resolve at the storage layer: the loser gets a storage error instead of
// ErrAlreadyCheckedIn and may simply retry.
func RecordCheckIn(db *gorm.DB, userID uuid.UUID, method model.Method, now time.Time) (*model.AttendanceLog, error) {
	last, err := LatestLog(db, userID, true)
	if err != nil {
		return nil, err
	}
	if err := ValidateSequence(last, ActionCheckIn); err != nil {
		return nil, err
	}

	log := model.AttendanceLog{
		UserID:  userID,
		CheckIn: utils.Ptr(now),
		Method:  method,
	}
	if err := db.Create(&log).Error; err != nil {
		return nil, err
	}

	if _, err := UpsertSummary(db, userID, now); err != nil {
		return nil, err
	}
	return &log, nil
}

// RecordCheckOut closes the user's open session at now by writing check_out
// onto the check-in's row, then recomputes the summary for the check-in's
// date. Same transactional contract as RecordCheckIn.
func RecordCheckOut(db *gorm.DB, userID uuid.UUID, now time.Time) (*model.AttendanceLog, error) {
	last, err := LatestLog(db, userID, true)
	if err != nil {
		return nil, err
	}
	if err := ValidateSequence(last, ActionCheckOut); err != nil {
		return nil, err
	}

	if err := db.Model(last).Update("check_out", now).Error; err != nil {
		return nil, err
	}
	last.CheckOut = utils.Ptr(now)

	// Summaries bucket by check-in date, so an overnight check-out lands on
	// the day the session opened.
	if _, err := UpsertSummary(db, userID, *last.CheckIn); err != nil {
		return nil, err
	}
	return last, nil
}

// HasOpenSession reports whether the user currently has an unmatched
// check-in.
func HasOpenSession(db *gorm.DB, userID uuid.UUID) (bool, error) {
	last, err := LatestLog(db, userID, false)
	if err != nil {
		return false, err
	}
	return last != nil && last.Open(), nil
}
