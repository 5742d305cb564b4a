package schedule

import (
	"context"
	"time"

	"github.com/petgroom/scheduler/internal/audit"
	domain "github.com/petgroom/scheduler/internal/domain/schedule"
	"github.com/petgroom/scheduler/internal/httperr"
)

type CustomerCancel struct {
	schedules domain.Repository
	audit     *audit.Dispatcher
	loc       *time.Location
}

func NewCustomerCancel(
	schedules domain.Repository,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *CustomerCancel {
	return &CustomerCancel{
		schedules: schedules,
		audit:     auditDispatcher,
		loc:       loc,
	}
}

func (uc *CustomerCancel) Execute(ctx context.Context, scheduleID, customerID string) error {

	s, err := uc.schedules.FindByID(ctx, scheduleID)
	if err != nil {
		return err
	}

	// Same masking as reschedule: foreign appointments look absent.
	if s == nil || s.CustomerID != customerID {
		return httperr.ErrBusiness("schedule_not_found", "Schedule not found")
	}

	if err := domain.CanCustomerCancel(domain.Status(s.Status)); err != nil {
		return err
	}

	now := time.Now().In(uc.loc)
	s.Status = string(domain.StatusCancelled)
	s.CancelledAt = &now

	if err := uc.schedules.Update(ctx, s); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &customerID,
		Action:   "schedule_cancelled",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	return nil
}
