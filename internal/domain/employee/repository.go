package employee

import (
	"context"

	"github.com/jdsalazarc/barberia-desk/internal/models"
)

// RegisterInput carries the full profile plus the plaintext password.
// The repository owns hashing and the all-or-nothing insert of the
// Employee and Credential rows.
type RegisterInput struct {
	Name    string
	Surname string

	DocumentType   string
	DocumentNumber string

	Phone string
	Email string

	Role      Role
	RoleLabel string

	HireDate string

	Address     string
	City        string
	Province    string
	Country     string
	Nationality string

	Password string
}

type Repository interface {
	// Register creates the Employee and its Credential atomically.
	// Returns ErrDuplicateIdentity when email or document number is
	// already taken.
	Register(ctx context.Context, in RegisterInput) (*models.Employee, error)

	// Authenticate returns the full profile so callers can branch on
	// role without a second lookup. Fails with ErrUnknownEmail or
	// ErrWrongPassword.
	Authenticate(ctx context.Context, email, password string) (*models.Employee, error)

	GetByID(ctx context.Context, id uint) (*models.Employee, error)

	// ListByRole returns employees with the given role in insertion
	// order.
	ListByRole(ctx context.Context, role Role) ([]models.Employee, error)

	// Delete removes the employee; credentials and appointments go
	// with it via the schema's cascades.
	Delete(ctx context.Context, id uint) error

	SetPhotoPath(ctx context.Context, id uint, path string) error
}
