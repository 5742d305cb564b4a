package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/petgroom/scheduler/internal/domain/schedule"
	"github.com/petgroom/scheduler/internal/httperr"
	"github.com/petgroom/scheduler/internal/models"
)

func newUpdateFixture() (*Update, *fakeRepo, *fakeDirectory) {
	repo := newFakeRepo()
	dir := newFakeDirectory()
	return NewUpdate(repo, dir, nil), repo, dir
}

func TestUpdateUnknownSchedule(t *testing.T) {
	uc, _, _ := newUpdateFixture()

	_, err := uc.Execute(context.Background(), UpdateInput{ID: "ghost"})

	assert.True(t, httperr.IsBusiness(err, "schedule_not_found"))
}

func TestUpdateNotesOnlyKeepsOtherFields(t *testing.T) {
	uc, repo, _ := newUpdateFixture()
	price := 120.0
	staffID := "staff-1"
	slot := time.Date(2026, 9, 3, 11, 0, 0, 0, time.UTC)
	s := repo.add(models.Schedule{
		ServiceType: string(domain.ServiceBath),
		ScheduledAt: slot,
		Status:      string(domain.StatusScheduled),
		Price:       &price,
		StaffID:     &staffID,
		CustomerID:  "cust-1",
		PetID:       "pet-1",
	})

	notes := "bring the special shampoo"
	updated, err := uc.Execute(context.Background(), UpdateInput{ID: s.ID, Notes: &notes})

	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)
	assert.True(t, updated.ScheduledAt.Equal(slot))
	require.NotNil(t, updated.Price)
	assert.Equal(t, price, *updated.Price)
	require.NotNil(t, updated.StaffID)
	assert.Equal(t, staffID, *updated.StaffID)
}

func TestUpdateDoesNotConflictWithItself(t *testing.T) {
	uc, repo, dir := newUpdateFixture()
	dir.addUser("staff-1", "Carlos", "carlos@example.com", models.RoleStaff)
	staffID := "staff-1"
	slot := time.Date(2026, 9, 3, 11, 0, 0, 0, time.UTC)
	s := repo.add(models.Schedule{
		ServiceType: string(domain.ServiceBath),
		ScheduledAt: slot,
		Status:      string(domain.StatusScheduled),
		StaffID:     &staffID,
		CustomerID:  "cust-1",
		PetID:       "pet-1",
	})

	// Same staff, same slot: the record must not block its own update.
	_, err := uc.Execute(context.Background(), UpdateInput{
		ID:          s.ID,
		ScheduledAt: &slot,
		StaffID:     &staffID,
	})

	assert.NoError(t, err)
}

func TestUpdateConflictsWithAnotherAppointment(t *testing.T) {
	uc, repo, dir := newUpdateFixture()
	dir.addUser("staff-1", "Carlos", "carlos@example.com", models.RoleStaff)
	staffID := "staff-1"
	slot := time.Date(2026, 9, 3, 11, 0, 0, 0, time.UTC)

	repo.add(models.Schedule{
		ID:          "taken",
		ServiceType: string(domain.ServiceBath),
		ScheduledAt: slot,
		Status:      string(domain.StatusInProgress),
		StaffID:     &staffID,
		CustomerID:  "cust-1",
		PetID:       "pet-1",
	})
	s := repo.add(models.Schedule{
		ID:          "moving",
		ServiceType: string(domain.ServiceGrooming),
		ScheduledAt: slot.Add(2 * time.Hour),
		Status:      string(domain.StatusScheduled),
		CustomerID:  "cust-2",
		PetID:       "pet-2",
	})

	_, err := uc.Execute(context.Background(), UpdateInput{
		ID:          s.ID,
		ScheduledAt: &slot,
		StaffID:     &staffID,
	})

	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestUpdateRejectsNonStaffAssignee(t *testing.T) {
	uc, repo, dir := newUpdateFixture()
	dir.addUser("cust-9", "Maria", "maria@example.com", models.RoleCustomer)
	s := repo.add(models.Schedule{
		ServiceType: string(domain.ServiceBath),
		ScheduledAt: time.Now(),
		Status:      string(domain.StatusScheduled),
		CustomerID:  "cust-1",
		PetID:       "pet-1",
	})

	badStaff := "cust-9"
	_, err := uc.Execute(context.Background(), UpdateInput{ID: s.ID, StaffID: &badStaff})

	assert.True(t, httperr.IsBusiness(err, "staff_not_found"))
}

func TestDeleteUnknownSchedule(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDelete(repo, nil)

	err := uc.Execute(context.Background(), "ghost")

	assert.True(t, httperr.IsBusiness(err, "schedule_not_found"))
}

func TestDeleteRemovesRecord(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDelete(repo, nil)
	s := repo.add(models.Schedule{
		ServiceType: string(domain.ServiceBath),
		ScheduledAt: time.Now(),
		Status:      string(domain.StatusScheduled),
		CustomerID:  "cust-1",
		PetID:       "pet-1",
	})

	require.NoError(t, uc.Execute(context.Background(), s.ID))

	got, err := repo.FindByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateStatusIsUnrestricted(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateStatus(repo, nil)
	s := repo.add(models.Schedule{
		ServiceType: string(domain.ServiceBath),
		ScheduledAt: time.Now(),
		Status:      string(domain.StatusCompleted),
		CustomerID:  "cust-1",
		PetID:       "pet-1",
	})

	// Operators may move a finalized record back.
	updated, err := uc.Execute(context.Background(), s.ID, domain.StatusInProgress)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusInProgress), updated.Status)
}
