package schedule

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/jdsalazarc/barberia-desk/internal/audit"
	employee "github.com/jdsalazarc/barberia-desk/internal/domain/employee"
	domain "github.com/jdsalazarc/barberia-desk/internal/domain/schedule"
	"github.com/jdsalazarc/barberia-desk/internal/httperr"
	"github.com/jdsalazarc/barberia-desk/internal/models"
)

type RescheduleAppointmentInput struct {
	ClientName  string
	ClientPhone string
	Date        string
	Time        string
	Service     string
	EmployeeID  uint
}

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute edits an existing appointment. Returns whether a row was
// actually modified; an unknown id yields (false, nil), matching the
// ledger contract.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	requester domain.Requester,
	appointmentID uint,
	in RescheduleAppointmentInput,
) (bool, error) {

	current, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	role := employee.Role(requester.Role)

	// Barbers edit only their own book. Moving the appointment to
	// another employee is an administrator action.
	if !role.SeesAllSchedules() && current.EmployeeID != requester.EmployeeID {
		return false, httperr.ErrBusiness("forbidden_reassignment")
	}

	targetID := in.EmployeeID
	if targetID == 0 {
		targetID = current.EmployeeID
	}
	if targetID != current.EmployeeID && !role.CanAssignOthers() {
		return false, httperr.ErrBusiness("forbidden_reassignment")
	}

	if strings.TrimSpace(in.ClientName) == "" {
		return false, httperr.ErrBusiness("missing_client_name")
	}

	slot := domain.Slot{
		EmployeeID: targetID,
		Date:       in.Date,
		Time:       in.Time,
	}
	if err := slot.Validate(); err != nil {
		return false, err
	}

	modified, err := uc.repo.Update(ctx, &models.Appointment{
		ID:          appointmentID,
		ClientName:  strings.TrimSpace(in.ClientName),
		ClientPhone: strings.TrimSpace(in.ClientPhone),
		Date:        in.Date,
		Time:        in.Time,
		Service:     strings.TrimSpace(in.Service),
		EmployeeID:  targetID,
	})
	if err != nil {
		return false, err
	}

	if modified {
		uc.audit.Dispatch(audit.Event{
			ActorID:  &requester.EmployeeID,
			Action:   "appointment_updated",
			Entity:   "appointment",
			EntityID: &appointmentID,
		})
	}

	return modified, nil
}
