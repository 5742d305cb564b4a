package schedule

import (
	"context"
	"time"

	domain "github.com/petgroom/scheduler/internal/domain/schedule"
)

type ReportInput struct {
	From *time.Time
	To   *time.Time
}

type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type Summary struct {
	Range          DateRange                 `json:"range"`
	TotalCompleted int64                     `json:"total_completed"`
	Revenue        float64                   `json:"revenue"`
	PetsAttended   int64                     `json:"pets_attended"`
	ByServiceType  []domain.ServiceTypeCount `json:"by_service_type"`
}

// Report aggregates completed-service counts, revenue, distinct pets
// and per-service-type volume over a date range. Read-only.
type Report struct {
	schedules domain.Repository
	loc       *time.Location
}

func NewReport(schedules domain.Repository, loc *time.Location) *Report {
	return &Report{schedules: schedules, loc: loc}
}

func (uc *Report) Execute(ctx context.Context, in ReportInput) (*Summary, error) {

	now := time.Now().In(uc.loc)

	from := now.AddDate(0, 0, -30)
	if in.From != nil {
		from = *in.From
	}

	to := now
	if in.To != nil {
		to = *in.To
	}

	totalCompleted, err := uc.schedules.CountCompleted(ctx, from, to)
	if err != nil {
		return nil, err
	}

	revenue, err := uc.schedules.SumCompletedRevenue(ctx, from, to)
	if err != nil {
		return nil, err
	}

	petsAttended, err := uc.schedules.CountDistinctPets(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byServiceType, err := uc.schedules.CountByServiceType(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Range:          DateRange{From: from, To: to},
		TotalCompleted: totalCompleted,
		Revenue:        revenue,
		PetsAttended:   petsAttended,
		ByServiceType:  byServiceType,
	}, nil
}
