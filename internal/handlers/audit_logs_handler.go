package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/jdsalazarc/barberia-desk/internal/domain/employee"
	"github.com/jdsalazarc/barberia-desk/internal/httperr"
	"github.com/jdsalazarc/barberia-desk/internal/httpresp"
	"github.com/jdsalazarc/barberia-desk/internal/middleware"
	"github.com/jdsalazarc/barberia-desk/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	role := domain.Role(c.MustGet(middleware.ContextUserRole).(string))
	if role != domain.RoleAdministrator {
		httperr.Forbidden(c, "Solo un administrador puede ver el registro de actividad.")
		return
	}

	limit := 100
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	var logs []models.AuditLog
	if err := h.db.
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "Ocurrió un error en el servidor.")
		return
	}

	httpresp.List(c, logs)
}
