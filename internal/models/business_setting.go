package models

import "time"

// DefaultSettingID pins the single business-setting row.
const DefaultSettingID = "default-setting"

type BusinessSetting struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	OpeningTime  int `gorm:"not null" json:"opening_time"`
	ClosingTime  int `gorm:"not null" json:"closing_time"`
	SlotDuration int `gorm:"not null" json:"slot_duration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
