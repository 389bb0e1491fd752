package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jdsalazarc/barberia-desk/internal/audit"
	domain "github.com/jdsalazarc/barberia-desk/internal/domain/employee"
	"github.com/jdsalazarc/barberia-desk/internal/httperr"
	"github.com/jdsalazarc/barberia-desk/internal/httpresp"
	"github.com/jdsalazarc/barberia-desk/internal/middleware"
)

type EmployeeHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *logrus.Logger
}

func NewEmployeeHandler(
	repo domain.Repository,
	auditd *audit.Dispatcher,
	log *logrus.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		repo:  repo,
		audit: auditd,
		log:   log,
	}
}

type BarberSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// ListBarbers feeds the "assign to barber" picker on the booking form.
func (h *EmployeeHandler) ListBarbers(c *gin.Context) {
	emps, err := h.repo.ListByRole(c.Request.Context(), domain.RoleBarber)
	if err != nil {
		h.log.WithError(err).Error("list barbers failed")
		httperr.Internal(c, "Ocurrió un error en el servidor.")
		return
	}

	out := make([]BarberSummary, 0, len(emps))
	for _, e := range emps {
		out = append(out, BarberSummary{
			ID:      e.ID,
			Name:    e.Name,
			Surname: e.Surname,
		})
	}

	httpresp.List(c, out)
}

// Delete removes an employee together with their credential and
// appointments (schema cascades). Administrator only.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)
	role := domain.Role(c.MustGet(middleware.ContextUserRole).(string))

	if role != domain.RoleAdministrator {
		httperr.Forbidden(c, "Solo un administrador puede eliminar empleados.")
		return
	}

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "Identificador inválido.")
		return
	}
	id := uint(id64)

	if id == requesterID {
		httperr.BadRequest(c, "No puede eliminar su propio usuario.")
		return
	}

	if _, err := h.repo.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "El empleado no existe.")
			return
		}
		h.log.WithError(err).Error("employee lookup failed")
		httperr.Internal(c, "Ocurrió un error en el servidor.")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.log.WithError(err).Error("employee delete failed")
		httperr.Internal(c, "Ocurrió un error al eliminar el empleado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &requesterID,
		Action:   "employee_deleted",
		Entity:   "employee",
		EntityID: &id,
	})

	httpresp.OKMessage(c, "Empleado eliminado.")
}
