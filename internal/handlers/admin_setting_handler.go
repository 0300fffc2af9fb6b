package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dgsoftwash/booking-api/internal/httperr"
	"github.com/dgsoftwash/booking-api/internal/models"
)

// AdminSettingHandler serves the generic key/value figures the console
// shows alongside reports (available balance, credit lines, ...).
type AdminSettingHandler struct {
	db *gorm.DB
}

func NewAdminSettingHandler(db *gorm.DB) *AdminSettingHandler {
	return &AdminSettingHandler{db: db}
}

func (h *AdminSettingHandler) Get(c *gin.Context) {
	var settings []models.Setting
	if err := h.db.Order("key ASC").Find(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_settings", "Failed to load settings.")
		return
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}

	c.JSON(http.StatusOK, gin.H{"settings": values})
}

func (h *AdminSettingHandler) Patch(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil || len(req) == 0 {
		httperr.BadRequest(c, "invalid_request", "Invalid settings patch.")
		return
	}

	for key, value := range req {
		setting := models.Setting{Key: key, Value: value}
		if err := h.db.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).
			Create(&setting).Error; err != nil {
			httperr.Internal(c, "failed_to_save_setting", "Failed to save setting.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
