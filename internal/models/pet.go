package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Pet struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name         string   `gorm:"size:100;not null" json:"name"`
	Species      string   `gorm:"size:50;not null" json:"species"`
	Breed        string   `gorm:"size:50" json:"breed"`
	Age          *int     `json:"age"`
	Weight       *float64 `json:"weight"`
	MedicalNotes string   `gorm:"type:text" json:"medical_notes"`

	CustomerID string `gorm:"size:36;index;not null" json:"customer_id"`
	Customer   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Pet) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
