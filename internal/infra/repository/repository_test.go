package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	domain "github.com/jdsalazarc/barberia-desk/internal/domain/employee"
	"github.com/jdsalazarc/barberia-desk/internal/models"
)

// testDB opens a fresh in-memory database per test, mirroring the
// production setup: one connection, foreign keys on, translated errors.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Employee{},
		&models.Credential{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func registerInput(email, doc string, role domain.Role) domain.RegisterInput {
	return domain.RegisterInput{
		Name:           "Carlos",
		Surname:        "Mejía",
		DocumentType:   "C.C.",
		DocumentNumber: doc,
		Phone:          "3001112233",
		Email:          email,
		Role:           role,
		HireDate:       "2024-03-01",
		City:           "Medellín",
		Country:        "Colombia",
		Password:       "secret123",
	}
}
