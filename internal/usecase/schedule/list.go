package schedule

import (
	"context"
	"time"

	domain "github.com/petgroom/scheduler/internal/domain/schedule"
	"github.com/petgroom/scheduler/internal/models"
)

type List struct {
	schedules domain.Repository
	loc       *time.Location
}

func NewList(schedules domain.Repository, loc *time.Location) *List {
	return &List{schedules: schedules, loc: loc}
}

func (uc *List) Execute(ctx context.Context, f domain.Filter) ([]models.Schedule, error) {
	return uc.schedules.List(ctx, f)
}

// ExecuteMine narrows the listing to the requester's own appointments
// (staff column for STAFF, customer column for CUSTOMER, no id filter
// for ADMIN) and defaults the range to the current calendar day in the
// configured timezone when the caller supplied no bounds.
func (uc *List) ExecuteMine(ctx context.Context, userID, role string, f domain.Filter) ([]models.Schedule, error) {

	switch role {
	case models.RoleStaff:
		f.StaffID = userID
	case models.RoleCustomer:
		f.CustomerID = userID
	}

	if f.From == nil && f.To == nil {
		now := time.Now().In(uc.loc)
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, uc.loc)
		f.From = &start
		f.To = &end
	}

	return uc.schedules.List(ctx, f)
}
