package schedule

import (
	"context"
	"time"

	"github.com/petgroom/scheduler/internal/models"
)

// Filter narrows schedule listings. Zero-valued fields do not
// constrain; From/To are inclusive on both bounds.
type Filter struct {
	From        *time.Time
	To          *time.Time
	ServiceType *ServiceType
	Status      *Status
	CustomerID  string
	StaffID     string
}

type ServiceTypeCount struct {
	ServiceType string `json:"service_type"`
	Total       int64  `json:"total"`
}

type Repository interface {
	// Create persists a new appointment. Implementations must rerun
	// the staff-slot overlap check atomically with the insert and
	// return a time_conflict business error when the slot was taken
	// by a concurrent writer.
	Create(ctx context.Context, s *models.Schedule) error

	// FindByID returns (nil, nil) when the appointment does not exist.
	FindByID(ctx context.Context, id string) (*models.Schedule, error)

	// HasOverlap reports whether staffID already holds a non-terminal
	// appointment at exactly scheduledAt. excludeID, when non-empty,
	// removes that appointment from the match so an update never
	// conflicts with itself.
	HasOverlap(ctx context.Context, staffID string, scheduledAt time.Time, excludeID string) (bool, error)

	Update(ctx context.Context, s *models.Schedule) error

	Delete(ctx context.Context, id string) error

	// List returns appointments matching the filter, scheduled_at
	// descending, with customer/pet/staff preloaded.
	List(ctx context.Context, f Filter) ([]models.Schedule, error)

	// -------- Reporting --------

	CountCompleted(ctx context.Context, from, to time.Time) (int64, error)

	SumCompletedRevenue(ctx context.Context, from, to time.Time) (float64, error)

	CountDistinctPets(ctx context.Context, from, to time.Time) (int64, error)

	CountByServiceType(ctx context.Context, from, to time.Time) ([]ServiceTypeCount, error)
}

// UserDirectory is the slice of the user store the engine needs to
// validate referenced identities. Returns (nil, nil) when absent.
type UserDirectory interface {
	FindUserByID(ctx context.Context, id string) (*models.User, error)
}

// PetRegistry resolves pets for customer/pet pairing checks. Returns
// (nil, nil) when absent.
type PetRegistry interface {
	FindPetByID(ctx context.Context, id string) (*models.Pet, error)
}
