package schedule

import (
	"context"
	"strings"

	"github.com/jdsalazarc/barberia-desk/internal/audit"
	employee "github.com/jdsalazarc/barberia-desk/internal/domain/employee"
	domain "github.com/jdsalazarc/barberia-desk/internal/domain/schedule"
	"github.com/jdsalazarc/barberia-desk/internal/httperr"
	"github.com/jdsalazarc/barberia-desk/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientName  string
	ClientPhone string
	Date        string
	Time        string
	Service     string
	EmployeeID  uint
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	requester domain.Requester,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if strings.TrimSpace(in.ClientName) == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}

	// A barber books onto their own schedule; only an administrator
	// may pick somebody else's.
	targetID := in.EmployeeID
	if targetID == 0 {
		targetID = requester.EmployeeID
	}
	if targetID != requester.EmployeeID &&
		!employee.Role(requester.Role).CanAssignOthers() {
		return nil, httperr.ErrBusiness("forbidden_reassignment")
	}

	slot := domain.Slot{
		EmployeeID: targetID,
		Date:       in.Date,
		Time:       in.Time,
	}
	if err := slot.Validate(); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientName:  strings.TrimSpace(in.ClientName),
		ClientPhone: strings.TrimSpace(in.ClientPhone),
		Date:        in.Date,
		Time:        in.Time,
		Service:     strings.TrimSpace(in.Service),
		EmployeeID:  targetID,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_conflict") {
			uc.audit.Dispatch(audit.Event{
				ActorID: &requester.EmployeeID,
				Action:  "appointment_conflict",
				Entity:  "appointment",
				Metadata: map[string]any{
					"employee_id": targetID,
					"date":        in.Date,
					"time":        in.Time,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &requester.EmployeeID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
