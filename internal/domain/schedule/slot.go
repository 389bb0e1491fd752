package schedule

import (
	"time"

	"github.com/jdsalazarc/barberia-desk/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slot is the unit the double-booking rule is stated over: one employee,
// one calendar date, one time of day.
type Slot struct {
	EmployeeID uint
	Date       string
	Time       string
}

func (s Slot) Validate() error {
	if s.EmployeeID == 0 {
		return httperr.ErrBusiness("missing_employee")
	}
	if _, err := time.Parse(DateLayout, s.Date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse(TimeLayout, s.Time); err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	return nil
}

func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
