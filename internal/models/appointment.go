package models

import "time"

// Appointment stores date and time as plain strings ("2006-01-02",
// "15:04"): slots are exact-match values, never time ranges. The
// composite unique index is the storage-level backstop for the
// no-double-booking rule; writers still pre-check inside a transaction
// so the caller gets a proper conflict result.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_employee_slot" json:"date"`
	Time string `gorm:"size:5;not null;uniqueIndex:idx_employee_slot" json:"time"`

	Service string `gorm:"size:100" json:"service"`

	EmployeeID uint     `gorm:"not null;uniqueIndex:idx_employee_slot" json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
