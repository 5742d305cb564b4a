package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petgroom/scheduler/internal/httperr"
	"github.com/petgroom/scheduler/internal/httpresp"
	"github.com/petgroom/scheduler/internal/middleware"
	"github.com/petgroom/scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found")
		return
	}

	httpresp.OK(c, user)
}
