package schedule

import (
	"context"

	"github.com/jdsalazarc/barberia-desk/internal/audit"
	employee "github.com/jdsalazarc/barberia-desk/internal/domain/employee"
	domain "github.com/jdsalazarc/barberia-desk/internal/domain/schedule"
)

type RemoveAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemoveAppointment {
	return &RemoveAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes an appointment by id. Idempotent: a missing id
// succeeds silently. Non-administrators can only remove from their own
// book, which the owner filter enforces without a separate lookup.
func (uc *RemoveAppointment) Execute(
	ctx context.Context,
	requester domain.Requester,
	appointmentID uint,
) error {

	ownerID := requester.EmployeeID
	if employee.Role(requester.Role).SeesAllSchedules() {
		ownerID = 0
	}

	if err := uc.repo.Delete(ctx, appointmentID, ownerID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &requester.EmployeeID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
