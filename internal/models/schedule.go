package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Schedule struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ServiceType string    `gorm:"size:20;not null" json:"service_type"`
	ScheduledAt time.Time `gorm:"not null;index:idx_schedules_staff_slot,priority:2" json:"scheduled_at"`
	Status      string    `gorm:"size:20;not null;default:'SCHEDULED';index" json:"status"`

	Notes string   `gorm:"size:255" json:"notes"`
	Price *float64 `json:"price"`

	CustomerID string `gorm:"size:36;index;not null" json:"customer_id"`
	Customer   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PetID string `gorm:"size:36;index;not null" json:"pet_id"`
	Pet   Pet    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StaffID *string `gorm:"size:36;index:idx_schedules_staff_slot,priority:1" json:"staff_id"`
	Staff   *User   `gorm:"foreignKey:StaffID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Schedule) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
