package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	domain "github.com/petgroom/scheduler/internal/domain/schedule"
	"github.com/petgroom/scheduler/internal/httperr"
	"github.com/petgroom/scheduler/internal/models"
	"github.com/petgroom/scheduler/internal/notify"
)

// fakeRepo is an in-memory stand-in for the gorm repository. It keeps
// the same contracts: (nil, nil) lookups, point-equality overlap on
// non-terminal records, inclusive range bounds.
type fakeRepo struct {
	mu      sync.Mutex
	seq     int
	records map[string]*models.Schedule
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[string]*models.Schedule{}}
}

func (r *fakeRepo) add(s models.Schedule) *models.Schedule {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		r.seq++
		s.ID = fmt.Sprintf("sched-%d", r.seq)
	}
	copied := s
	r.records[copied.ID] = &copied
	return &copied
}

func (r *fakeRepo) overlapLocked(staffID string, at time.Time, excludeID string) bool {
	for _, s := range r.records {
		if s.ID == excludeID || s.StaffID == nil || *s.StaffID != staffID {
			continue
		}
		if !s.ScheduledAt.Equal(at) {
			continue
		}
		if !domain.Status(s.Status).Terminal() {
			return true
		}
	}
	return false
}

func (r *fakeRepo) Create(_ context.Context, s *models.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.StaffID != nil && r.overlapLocked(*s.StaffID, s.ScheduledAt, "") {
		return errTimeConflict()
	}
	r.seq++
	s.ID = fmt.Sprintf("sched-%d", r.seq)
	copied := *s
	r.records[s.ID] = &copied
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*models.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeRepo) HasOverlap(_ context.Context, staffID string, at time.Time, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overlapLocked(staffID, at, excludeID), nil
}

func (r *fakeRepo) Update(_ context.Context, s *models.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *s
	r.records[s.ID] = &copied
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

func (r *fakeRepo) List(_ context.Context, f domain.Filter) ([]models.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Schedule
	for _, s := range r.records {
		if f.CustomerID != "" && s.CustomerID != f.CustomerID {
			continue
		}
		if f.StaffID != "" && (s.StaffID == nil || *s.StaffID != f.StaffID) {
			continue
		}
		if f.Status != nil && s.Status != string(*f.Status) {
			continue
		}
		if f.ServiceType != nil && s.ServiceType != string(*f.ServiceType) {
			continue
		}
		if f.From != nil && s.ScheduledAt.Before(*f.From) {
			continue
		}
		if f.To != nil && s.ScheduledAt.After(*f.To) {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeRepo) inRange(s *models.Schedule, from, to time.Time) bool {
	return !s.ScheduledAt.Before(from) && !s.ScheduledAt.After(to)
}

func (r *fakeRepo) CountCompleted(_ context.Context, from, to time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, s := range r.records {
		if s.Status == string(domain.StatusCompleted) && r.inRange(s, from, to) {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) SumCompletedRevenue(_ context.Context, from, to time.Time) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum float64
	for _, s := range r.records {
		if s.Status == string(domain.StatusCompleted) && r.inRange(s, from, to) && s.Price != nil {
			sum += *s.Price
		}
	}
	return sum, nil
}

func (r *fakeRepo) CountDistinctPets(_ context.Context, from, to time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pets := map[string]struct{}{}
	for _, s := range r.records {
		if r.inRange(s, from, to) {
			pets[s.PetID] = struct{}{}
		}
	}
	return int64(len(pets)), nil
}

func (r *fakeRepo) CountByServiceType(_ context.Context, from, to time.Time) ([]domain.ServiceTypeCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int64{}
	for _, s := range r.records {
		if r.inRange(s, from, to) {
			counts[s.ServiceType]++
		}
	}
	out := make([]domain.ServiceTypeCount, 0, len(counts))
	for st, n := range counts {
		out = append(out, domain.ServiceTypeCount{ServiceType: st, Total: n})
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeDirectory serves both user and pet lookups.
type fakeDirectory struct {
	users map[string]*models.User
	pets  map[string]*models.Pet
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		users: map[string]*models.User{},
		pets:  map[string]*models.Pet{},
	}
}

func (d *fakeDirectory) addUser(id, name, email, role string) *models.User {
	u := &models.User{ID: id, Name: name, Email: email, Role: role, IsActive: true}
	d.users[id] = u
	return u
}

func (d *fakeDirectory) addPet(id, name, customerID string) *models.Pet {
	p := &models.Pet{ID: id, Name: name, Species: "DOG", CustomerID: customerID}
	d.pets[id] = p
	return p
}

func (d *fakeDirectory) FindUserByID(_ context.Context, id string) (*models.User, error) {
	return d.users[id], nil
}

func (d *fakeDirectory) FindPetByID(_ context.Context, id string) (*models.Pet, error) {
	return d.pets[id], nil
}

var (
	_ domain.UserDirectory = (*fakeDirectory)(nil)
	_ domain.PetRegistry   = (*fakeDirectory)(nil)
)

type fakeNotifier struct {
	sent []notify.Message
	err  error
}

func (n *fakeNotifier) Send(_ context.Context, msg notify.Message) error {
	n.sent = append(n.sent, msg)
	return n.err
}

var _ notify.Notifier = (*fakeNotifier)(nil)

func errTimeConflict() error {
	return httperr.ErrBusiness("time_conflict", "Staff member already booked for this time slot")
}
