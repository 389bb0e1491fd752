package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/jdsalazarc/barberia-desk/internal/domain/schedule"
	"github.com/jdsalazarc/barberia-desk/internal/httperr"
	"github.com/jdsalazarc/barberia-desk/internal/httpresp"
	"github.com/jdsalazarc/barberia-desk/internal/middleware"
	ucschedule "github.com/jdsalazarc/barberia-desk/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC       *ucschedule.BookAppointment
	rescheduleUC *ucschedule.RescheduleAppointment
	listDayUC    *ucschedule.ListDayAppointments
	removeUC     *ucschedule.RemoveAppointment
	log          *logrus.Logger
}

func NewAppointmentHandler(
	bookUC *ucschedule.BookAppointment,
	rescheduleUC *ucschedule.RescheduleAppointment,
	listDayUC *ucschedule.ListDayAppointments,
	removeUC *ucschedule.RemoveAppointment,
	log *logrus.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:       bookUC,
		rescheduleUC: rescheduleUC,
		listDayUC:    listDayUC,
		removeUC:     removeUC,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Service     string `json:"service"`
	EmployeeID  uint   `json:"employee_id"`
}

func requesterFrom(c *gin.Context) domain.Requester {
	return domain.Requester{
		EmployeeID: c.MustGet(middleware.ContextUserID).(uint),
		Role:       c.MustGet(middleware.ContextUserRole).(string),
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Faltan campos obligatorios.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), requesterFrom(c), ucschedule.BookAppointmentInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Date:        req.Date,
		Time:        req.Time,
		Service:     req.Service,
		EmployeeID:  req.EmployeeID,
	})
	if err != nil {
		h.writeScheduleError(c, err)
		return
	}

	httpresp.Created(c, gin.H{"id": ap.ID})
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Faltan campos obligatorios.")
		return
	}

	modified, err := h.rescheduleUC.Execute(c.Request.Context(), requesterFrom(c), id, ucschedule.RescheduleAppointmentInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Date:        req.Date,
		Time:        req.Time,
		Service:     req.Service,
		EmployeeID:  req.EmployeeID,
	})
	if err != nil {
		h.writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"modified": modified})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "La fecha es obligatoria.")
		return
	}

	out, err := h.listDayUC.Execute(c.Request.Context(), requesterFrom(c), dateStr)
	if err != nil {
		h.writeScheduleError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), requesterFrom(c), id); err != nil {
		h.writeScheduleError(c, err)
		return
	}

	httpresp.OKMessage(c, "Cita eliminada.")
}

// ======================================================
// HELPERS
// ======================================================

func idParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "Identificador inválido.")
		return 0, false
	}
	return uint(id64), true
}

// writeScheduleError is the one place ledger failures turn into user
// messages. Anything unrecognized is logged and surfaced generically.
func (h *AppointmentHandler) writeScheduleError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slot_conflict"):
		httperr.Conflict(c, "El barbero ya tiene una cita en esa fecha y hora.")
	case httperr.IsBusiness(err, "forbidden_reassignment"):
		httperr.Forbidden(c, "Solo un administrador puede asignar citas a otros barberos.")
	case httperr.IsBusiness(err, "missing_client_name"):
		httperr.BadRequest(c, "El nombre del cliente es obligatorio.")
	case httperr.IsBusiness(err, "missing_employee"):
		httperr.BadRequest(c, "Debe seleccionar un barbero.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "La fecha no es válida.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "La hora no es válida.")
	default:
		h.log.WithError(err).Error("schedule operation failed")
		httperr.Internal(c, "Ocurrió un error en el servidor.")
	}
}
