package schedule

import (
	"context"
	"strings"

	employee "github.com/jdsalazarc/barberia-desk/internal/domain/employee"
	domain "github.com/jdsalazarc/barberia-desk/internal/domain/schedule"
	"github.com/jdsalazarc/barberia-desk/internal/dto"
	"github.com/jdsalazarc/barberia-desk/internal/httperr"
)

type ListDayAppointments struct {
	repo domain.Repository
}

func NewListDayAppointments(repo domain.Repository) *ListDayAppointments {
	return &ListDayAppointments{repo: repo}
}

// Execute returns the day's schedule scoped by the requester's role:
// administrators get every employee's appointments with the owner's
// name attached, everyone else only their own. Not a permission error
// path: a barber simply never sees other books.
func (uc *ListDayAppointments) Execute(
	ctx context.Context,
	requester domain.Requester,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if !domain.ValidDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if employee.Role(requester.Role).SeesAllSchedules() {
		aps, err := uc.repo.ListAllForDay(ctx, date)
		if err != nil {
			return nil, err
		}

		out := make([]dto.AppointmentListDTO, 0, len(aps))
		for _, ap := range aps {
			name := strings.TrimSpace(ap.Employee.Name + " " + ap.Employee.Surname)
			out = append(out, dto.AppointmentListDTO{
				ID:           ap.ID,
				ClientName:   ap.ClientName,
				ClientPhone:  ap.ClientPhone,
				Date:         ap.Date,
				Time:         ap.Time,
				Service:      ap.Service,
				EmployeeID:   ap.EmployeeID,
				EmployeeName: name,
			})
		}
		return out, nil
	}

	aps, err := uc.repo.ListOwnForDay(ctx, date, requester.EmployeeID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			ClientName:  ap.ClientName,
			ClientPhone: ap.ClientPhone,
			Date:        ap.Date,
			Time:        ap.Time,
			Service:     ap.Service,
			EmployeeID:  ap.EmployeeID,
		})
	}
	return out, nil
}
