package models

import "time"

type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Surname string `gorm:"size:100;not null" json:"surname"`

	DocumentType   string `gorm:"size:20" json:"document_type"`
	DocumentNumber string `gorm:"size:30;uniqueIndex" json:"document_number"`

	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	// Role is one of barber/administrator/other; RoleLabel carries the
	// free-text description when Role is "other".
	Role      string `gorm:"size:20;not null" json:"role"`
	RoleLabel string `gorm:"size:50" json:"role_label,omitempty"`

	HireDate string `gorm:"size:10" json:"hire_date"`

	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100" json:"city"`
	Province    string `gorm:"size:100" json:"province"`
	Country     string `gorm:"size:100" json:"country"`
	Nationality string `gorm:"size:100" json:"nationality"`

	PhotoPath string `gorm:"size:255" json:"photo_path,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
