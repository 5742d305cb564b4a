package schedule

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/petgroom/scheduler/internal/audit"
	domain "github.com/petgroom/scheduler/internal/domain/schedule"
	"github.com/petgroom/scheduler/internal/httperr"
	"github.com/petgroom/scheduler/internal/models"
	"github.com/petgroom/scheduler/internal/notify"
)

type CreateInput struct {
	ServiceType domain.ServiceType
	ScheduledAt time.Time
	Notes       string
	Price       *float64
	CustomerID  string
	PetID       string
	StaffID     *string
}

type Create struct {
	schedules domain.Repository
	users     domain.UserDirectory
	pets      domain.PetRegistry
	notifier  notify.Notifier
	audit     *audit.Dispatcher
	loc       *time.Location
}

func NewCreate(
	schedules domain.Repository,
	users domain.UserDirectory,
	pets domain.PetRegistry,
	notifier notify.Notifier,
	auditDispatcher *audit.Dispatcher,
	loc *time.Location,
) *Create {
	return &Create{
		schedules: schedules,
		users:     users,
		pets:      pets,
		notifier:  notifier,
		audit:     auditDispatcher,
		loc:       loc,
	}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Schedule, error) {

	customer, err := uc.users.FindUserByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.Role != models.RoleCustomer {
		return nil, httperr.ErrBusiness("customer_not_found", "Customer not found")
	}

	pet, err := uc.pets.FindPetByID(ctx, in.PetID)
	if err != nil {
		return nil, err
	}
	if pet == nil || pet.CustomerID != customer.ID {
		return nil, httperr.ErrBusiness("pet_not_found", "Pet not found for this customer")
	}

	if in.StaffID != nil {
		staff, err := uc.users.FindUserByID(ctx, *in.StaffID)
		if err != nil {
			return nil, err
		}
		if staff == nil || staff.Role != models.RoleStaff {
			return nil, httperr.ErrBusiness("staff_not_found", "Assigned staff not found")
		}

		booked, err := uc.schedules.HasOverlap(ctx, *in.StaffID, in.ScheduledAt, "")
		if err != nil {
			return nil, err
		}
		if booked {
			return nil, httperr.ErrBusiness("time_conflict", "Staff member already booked for this time slot")
		}
	}

	// Status is forced regardless of caller input; the repository
	// reruns the overlap check under lock before inserting.
	s := &models.Schedule{
		ServiceType: string(in.ServiceType),
		ScheduledAt: in.ScheduledAt,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
		Price:       in.Price,
		CustomerID:  customer.ID,
		PetID:       pet.ID,
		StaffID:     in.StaffID,
	}

	if err := uc.schedules.Create(ctx, s); err != nil {
		return nil, err
	}

	// Best-effort confirmation: a failed notification never rolls
	// back the booking.
	msg := notify.Message{
		To:      customer.Email,
		Subject: "Confirmacao de agendamento",
		Body: fmt.Sprintf(
			"Ola %s, seu agendamento para %s do pet %s foi registrado para %s.",
			customer.Name,
			strings.ToLower(string(in.ServiceType)),
			pet.Name,
			in.ScheduledAt.In(uc.loc).Format("02/01/2006 15:04"),
		),
	}
	if err := uc.notifier.Send(ctx, msg); err != nil {
		log.Printf("schedule %s: confirmation notification failed: %v", s.ID, err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.StaffID,
		Action:   "schedule_created",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	return s, nil
}
