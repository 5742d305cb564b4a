package schedule

import (
	"context"

	"github.com/petgroom/scheduler/internal/audit"
	domain "github.com/petgroom/scheduler/internal/domain/schedule"
	"github.com/petgroom/scheduler/internal/httperr"
)

// Delete hard-deletes an appointment. Customers never reach this path;
// they only get the soft cancel.
type Delete struct {
	schedules domain.Repository
	audit     *audit.Dispatcher
}

func NewDelete(
	schedules domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *Delete {
	return &Delete{
		schedules: schedules,
		audit:     auditDispatcher,
	}
}

func (uc *Delete) Execute(ctx context.Context, id string) error {

	s, err := uc.schedules.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return httperr.ErrBusiness("schedule_not_found", "Schedule not found")
	}

	if err := uc.schedules.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_deleted",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	return nil
}
