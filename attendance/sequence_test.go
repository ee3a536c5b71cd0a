package attendance

import (
	"testing"
	"time"

	"easattend.com/easattend/model"
	"easattend.com/easattend/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func openLog(checkIn time.Time) *model.AttendanceLog {
	return &model.AttendanceLog{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		CheckIn: utils.Ptr(checkIn),
	}
}

func closedLog(checkIn, checkOut time.Time) *model.AttendanceLog {
	log := openLog(checkIn)
	log.CheckOut = utils.Ptr(checkOut)
	return log
}

func TestValidateSequence(t *testing.T) {
	nine := time.Date(2023, 6, 5, 9, 0, 0, 0, time.UTC)
	noon := time.Date(2023, 6, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		last    *model.AttendanceLog
		action  Action
		wantErr error
	}{
		{
			name:   "First ever check-in",
			last:   nil,
			action: ActionCheckIn,
		},
		{
			name:    "Check-in with open session",
			last:    openLog(nine),
			action:  ActionCheckIn,
			wantErr: ErrAlreadyCheckedIn,
		},
		{
			name:   "Check-in after closed session",
			last:   closedLog(nine, noon),
			action: ActionCheckIn,
		},
		{
			name:   "Check-out with open session",
			last:   openLog(nine),
			action: ActionCheckOut,
		},
		{
			name:    "Check-out with no history",
			last:    nil,
			action:  ActionCheckOut,
			wantErr: ErrNoOpenCheckIn,
		},
		{
			name:    "Check-out after closed session",
			last:    closedLog(nine, noon),
			action:  ActionCheckOut,
			wantErr: ErrNoOpenCheckIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSequence(tt.last, tt.action)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSequenceDeterministic(t *testing.T) {
	// Same state must always produce the same decision.
	last := openLog(time.Date(2023, 6, 5, 9, 0, 0, 0, time.UTC))
	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, ValidateSequence(last, ActionCheckIn), ErrAlreadyCheckedIn)
	}
}
