package schedule

import (
	"strings"

	"github.com/petgroom/scheduler/internal/httperr"
)

type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToUpper(s)) {
	case StatusScheduled:
		return StatusScheduled, true
	case StatusInProgress:
		return StatusInProgress, true
	case StatusCompleted:
		return StatusCompleted, true
	case StatusCancelled:
		return StatusCancelled, true
	}
	return "", false
}

// Terminal reports whether the appointment reached a final state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// NonTerminalStatuses are the states that block a staff slot.
func NonTerminalStatuses() []string {
	return []string{string(StatusScheduled), string(StatusInProgress)}
}

// CanCustomerReschedule guards the customer-initiated reschedule path.
// Administrative updates intentionally bypass this check.
func CanCustomerReschedule(current Status) error {
	if current.Terminal() {
		return httperr.ErrBusiness("invalid_state", "Cannot reschedule a finalized appointment")
	}
	return nil
}

// CanCustomerCancel guards the customer-initiated cancel path. A
// cancelled appointment may be cancelled again (no-op by design).
func CanCustomerCancel(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrBusiness("invalid_state", "Cannot cancel a completed appointment")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
