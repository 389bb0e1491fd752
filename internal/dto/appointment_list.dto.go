package dto

type AppointmentListDTO struct {
	ID          uint   `json:"id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Service     string `json:"service,omitempty"`
	EmployeeID  uint   `json:"employee_id"`

	// EmployeeName is filled only on the administrator listing, where
	// rows from every barber share one table.
	EmployeeName string `json:"employee_name,omitempty"`
}
