package schedule

import (
	"context"
	"time"

	"github.com/petgroom/scheduler/internal/audit"
	domain "github.com/petgroom/scheduler/internal/domain/schedule"
	"github.com/petgroom/scheduler/internal/httperr"
	"github.com/petgroom/scheduler/internal/models"
)

type CustomerRescheduleInput struct {
	ScheduleID  string
	CustomerID  string
	ScheduledAt time.Time
	Notes       *string
}

type CustomerReschedule struct {
	schedules domain.Repository
	audit     *audit.Dispatcher
}

func NewCustomerReschedule(
	schedules domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CustomerReschedule {
	return &CustomerReschedule{
		schedules: schedules,
		audit:     auditDispatcher,
	}
}

func (uc *CustomerReschedule) Execute(ctx context.Context, in CustomerRescheduleInput) (*models.Schedule, error) {

	s, err := uc.schedules.FindByID(ctx, in.ScheduleID)
	if err != nil {
		return nil, err
	}

	// Ownership failures answer exactly like a missing record so one
	// customer cannot probe another's appointments.
	if s == nil || s.CustomerID != in.CustomerID {
		return nil, httperr.ErrBusiness("schedule_not_found", "Schedule not found")
	}

	if err := domain.CanCustomerReschedule(domain.Status(s.Status)); err != nil {
		return nil, err
	}

	s.ScheduledAt = in.ScheduledAt
	if in.Notes != nil {
		s.Notes = *in.Notes
	}

	if err := uc.schedules.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.CustomerID,
		Action:   "schedule_rescheduled",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	return s, nil
}
