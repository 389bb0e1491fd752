package schedule

import (
	"context"

	"github.com/jdsalazarc/barberia-desk/internal/models"
)

// Requester identifies who is asking; the Role predicate decides
// visibility, nothing else does.
type Requester struct {
	EmployeeID uint
	Role       string
}

type Repository interface {
	// Create inserts the appointment unless its slot is already taken.
	// Conflict check and insert run as one transaction; on a taken
	// slot it returns the slot_conflict business error and writes
	// nothing.
	Create(ctx context.Context, ap *models.Appointment) error

	// Update applies the new fields unless a different appointment
	// occupies the target slot. Returns false when the id does not
	// exist.
	Update(ctx context.Context, ap *models.Appointment) (bool, error)

	// Delete removes by id. Deleting a missing id is not an error.
	// A non-zero ownerID restricts the removal to that employee's own
	// appointments.
	Delete(ctx context.Context, id uint, ownerID uint) error

	GetByID(ctx context.Context, id uint) (*models.Appointment, error)

	// ListOwnForDay returns one employee's appointments on a date,
	// time ascending.
	ListOwnForDay(ctx context.Context, date string, employeeID uint) ([]models.Appointment, error)

	// ListAllForDay returns every employee's appointments on a date
	// with the owning employee preloaded, time ascending.
	ListAllForDay(ctx context.Context, date string) ([]models.Appointment, error)
}
