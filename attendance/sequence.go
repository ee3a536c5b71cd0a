package attendance

import (
	"errors"

	"easattend.com/easattend/model"
)

type Action string

const (
	ActionCheckIn  Action = "check-in"
	ActionCheckOut Action = "check-out"
)

var (
	// ErrAlreadyCheckedIn rejects a check-in while an open session exists.
	ErrAlreadyCheckedIn = errors.New("already checked in")
	// ErrNoOpenCheckIn rejects a check-out with no open session to close.
	ErrNoOpenCheckIn = errors.New("no open check-in")
)

// ValidateSequence enforces strict check-in/check-out alternation for one
// user. last is the user's most recent log row ordered by
// (check_in DESC, id DESC), or nil when the user has no logs yet.
//
// The decision is a pure function of the supplied state; callers must read
// last and persist the accepted event inside one transaction so two
// concurrent check-ins cannot both see "no open session".
func ValidateSequence(last *model.AttendanceLog, action Action) error {
	switch action {
	case ActionCheckIn:
		if last != nil && last.Open() {
			return ErrAlreadyCheckedIn
		}
	case ActionCheckOut:
		if last == nil || !last.Open() {
			return ErrNoOpenCheckIn
		}
	}
	return nil
}
