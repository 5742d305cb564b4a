package schedule

import (
	"context"

	"github.com/petgroom/scheduler/internal/audit"
	domain "github.com/petgroom/scheduler/internal/domain/schedule"
	"github.com/petgroom/scheduler/internal/httperr"
	"github.com/petgroom/scheduler/internal/models"
)

// UpdateStatus assigns any status to any appointment. No transition
// graph is enforced: operators may move COMPLETED back to SCHEDULED to
// correct mistakes.
type UpdateStatus struct {
	schedules domain.Repository
	audit     *audit.Dispatcher
}

func NewUpdateStatus(
	schedules domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		schedules: schedules,
		audit:     auditDispatcher,
	}
}

func (uc *UpdateStatus) Execute(ctx context.Context, id string, status domain.Status) (*models.Schedule, error) {

	s, err := uc.schedules.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, httperr.ErrBusiness("schedule_not_found", "Schedule not found")
	}

	previous := s.Status
	s.Status = string(status)

	if err := uc.schedules.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_status_changed",
		Entity:   "schedule",
		EntityID: &s.ID,
		Metadata: map[string]string{"from": previous, "to": s.Status},
	})

	return s, nil
}
