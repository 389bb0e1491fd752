package models

import "time"

// Credential is the login record, exactly one per employee. Email is
// duplicated from Employee so authentication is a single lookup.
type Credential struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	EmployeeID uint     `gorm:"uniqueIndex;not null" json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
