package schedule

import (
	"context"
	"time"

	"github.com/petgroom/scheduler/internal/audit"
	domain "github.com/petgroom/scheduler/internal/domain/schedule"
	"github.com/petgroom/scheduler/internal/httperr"
	"github.com/petgroom/scheduler/internal/models"
)

// UpdateInput carries a partial administrative update; nil fields keep
// their stored value. This path deliberately has no status-lifecycle
// restriction so operators can correct finalized records.
type UpdateInput struct {
	ID          string
	ScheduledAt *time.Time
	Notes       *string
	Price       *float64
	StaffID     *string
}

type Update struct {
	schedules domain.Repository
	users     domain.UserDirectory
	audit     *audit.Dispatcher
}

func NewUpdate(
	schedules domain.Repository,
	users domain.UserDirectory,
	auditDispatcher *audit.Dispatcher,
) *Update {
	return &Update{
		schedules: schedules,
		users:     users,
		audit:     auditDispatcher,
	}
}

func (uc *Update) Execute(ctx context.Context, in UpdateInput) (*models.Schedule, error) {

	s, err := uc.schedules.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, httperr.ErrBusiness("schedule_not_found", "Schedule not found")
	}

	if in.StaffID != nil {
		staff, err := uc.users.FindUserByID(ctx, *in.StaffID)
		if err != nil {
			return nil, err
		}
		if staff == nil || staff.Role != models.RoleStaff {
			return nil, httperr.ErrBusiness("staff_not_found", "Assigned staff not found")
		}
	}

	// Re-checked only when both halves of the slot key change; the
	// appointment never conflicts with itself.
	if in.StaffID != nil && in.ScheduledAt != nil {
		booked, err := uc.schedules.HasOverlap(ctx, *in.StaffID, *in.ScheduledAt, s.ID)
		if err != nil {
			return nil, err
		}
		if booked {
			return nil, httperr.ErrBusiness("time_conflict", "Staff member already booked for this time slot")
		}
	}

	if in.ScheduledAt != nil {
		s.ScheduledAt = *in.ScheduledAt
	}
	if in.Notes != nil {
		s.Notes = *in.Notes
	}
	if in.Price != nil {
		s.Price = in.Price
	}
	if in.StaffID != nil {
		s.StaffID = in.StaffID
	}

	if err := uc.schedules.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_updated",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	return s, nil
}
