package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/petgroom/scheduler/internal/domain/schedule"
	"github.com/petgroom/scheduler/internal/models"
)

func price(v float64) *float64 { return &v }

func TestReportAggregatesCompletedOnly(t *testing.T) {
	repo := newFakeRepo()
	uc := NewReport(repo, time.UTC)
	at := time.Now().UTC().AddDate(0, 0, -1)

	repo.add(models.Schedule{
		ServiceType: string(domain.ServiceBath),
		ScheduledAt: at,
		Status:      string(domain.StatusCompleted),
		Price:       price(100),
		CustomerID:  "cust-1",
		PetID:       "pet-1",
	})
	repo.add(models.Schedule{
		ServiceType: string(domain.ServiceGrooming),
		ScheduledAt: at,
		Status:      string(domain.StatusCompleted),
		Price:       price(50),
		CustomerID:  "cust-1",
		PetID:       "pet-2",
	})
	repo.add(models.Schedule{
		ServiceType: string(domain.ServiceBath),
		ScheduledAt: at,
		Status:      string(domain.StatusCancelled),
		Price:       price(30),
		CustomerID:  "cust-2",
		PetID:       "pet-1",
	})

	summary, err := uc.Execute(context.Background(), ReportInput{})

	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalCompleted)
	assert.Equal(t, 150.0, summary.Revenue)
	assert.Equal(t, int64(2), summary.PetsAttended)

	byType := map[string]int64{}
	for _, c := range summary.ByServiceType {
		byType[c.ServiceType] = c.Total
	}
	assert.Equal(t, int64(2), byType[string(domain.ServiceBath)])
	assert.Equal(t, int64(1), byType[string(domain.ServiceGrooming)])
}

func TestReportDefaultsToLastThirtyDays(t *testing.T) {
	repo := newFakeRepo()
	uc := NewReport(repo, time.UTC)

	summary, err := uc.Execute(context.Background(), ReportInput{})

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), summary.Range.To, 5*time.Second)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), summary.Range.From, 5*time.Second)
}

func TestReportHonorsExplicitRange(t *testing.T) {
	repo := newFakeRepo()
	uc := NewReport(repo, time.UTC)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	repo.add(models.Schedule{
		ServiceType: string(domain.ServiceBath),
		ScheduledAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		Status:      string(domain.StatusCompleted),
		Price:       price(80),
		CustomerID:  "cust-1",
		PetID:       "pet-1",
	})
	repo.add(models.Schedule{
		ServiceType: string(domain.ServiceBath),
		ScheduledAt: time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC),
		Status:      string(domain.StatusCompleted),
		Price:       price(999),
		CustomerID:  "cust-1",
		PetID:       "pet-1",
	})

	summary, err := uc.Execute(context.Background(), ReportInput{From: &from, To: &to})

	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalCompleted)
	assert.Equal(t, 80.0, summary.Revenue)
	assert.True(t, summary.Range.From.Equal(from))
	assert.True(t, summary.Range.To.Equal(to))
}
