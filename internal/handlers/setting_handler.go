package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/petgroom/scheduler/internal/httperr"
	"github.com/petgroom/scheduler/internal/httpresp"
	"github.com/petgroom/scheduler/internal/models"
)

// SettingHandler manages the single business-setting record. The
// stored hours are informational for the dashboard; scheduling does
// not enforce them.
type SettingHandler struct {
	db *gorm.DB
}

func NewSettingHandler(db *gorm.DB) *SettingHandler {
	return &SettingHandler{db: db}
}

type UpdateSettingRequest struct {
	OpeningTime  *int `json:"opening_time" binding:"required,min=0,max=23"`
	ClosingTime  *int `json:"closing_time" binding:"required,min=0,max=23"`
	SlotDuration *int `json:"slot_duration" binding:"required,min=1,max=180"`
}

// Get lazily creates the defaults so a fresh install always has a row.
func (h *SettingHandler) Get(c *gin.Context) {
	var setting models.BusinessSetting
	err := h.db.First(&setting, "id = ?", models.DefaultSettingID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.BusinessSetting{
			ID:           models.DefaultSettingID,
			OpeningTime:  8,
			ClosingTime:  18,
			SlotDuration: 60,
		}
		if err := h.db.Create(&setting).Error; err != nil {
			httperr.Internal(c, "failed_to_create_setting", "Failed to initialize business settings.")
			return
		}
		httpresp.OK(c, setting)
		return
	}

	if err != nil {
		httperr.Internal(c, "failed_to_get_setting", "Failed to load business settings.")
		return
	}

	httpresp.OK(c, setting)
}

func (h *SettingHandler) Update(c *gin.Context) {
	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if *req.ClosingTime <= *req.OpeningTime {
		httperr.BadRequest(c, "invalid_hours", "closing_time must be greater than opening_time")
		return
	}

	setting := models.BusinessSetting{
		ID:           models.DefaultSettingID,
		OpeningTime:  *req.OpeningTime,
		ClosingTime:  *req.ClosingTime,
		SlotDuration: *req.SlotDuration,
	}

	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"opening_time", "closing_time", "slot_duration", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		httperr.Internal(c, "failed_to_update_setting", "Failed to save business settings.")
		return
	}

	httpresp.OK(c, setting)
}
