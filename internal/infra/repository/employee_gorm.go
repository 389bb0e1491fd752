package repository

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "github.com/jdsalazarc/barberia-desk/internal/domain/employee"
	"github.com/jdsalazarc/barberia-desk/internal/httperr"
	"github.com/jdsalazarc/barberia-desk/internal/models"
)

type EmployeeGormRepository struct {
	db *gorm.DB

	// hash is swappable so tests can force the hashing step to fail
	// mid-registration.
	hash func(password []byte) ([]byte, error)
}

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{
		db: db,
		hash: func(password []byte) ([]byte, error) {
			return bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
		},
	}
}

// --------------------------------------------------
// Register
// --------------------------------------------------

// Register runs the whole registration as one transaction: uniqueness
// checks, employee insert, password hash, credential insert. Any
// failure leaves neither row behind.
func (r *EmployeeGormRepository) Register(
	ctx context.Context,
	in domain.RegisterInput,
) (*models.Employee, error) {

	var created models.Employee

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.Model(&models.Employee{}).
			Where("email = ? OR document_number = ?", in.Email, in.DocumentNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateIdentity
		}

		emp := models.Employee{
			Name:           in.Name,
			Surname:        in.Surname,
			DocumentType:   in.DocumentType,
			DocumentNumber: in.DocumentNumber,
			Phone:          in.Phone,
			Email:          in.Email,
			Role:           string(in.Role),
			RoleLabel:      in.RoleLabel,
			HireDate:       in.HireDate,
			Address:        in.Address,
			City:           in.City,
			Province:       in.Province,
			Country:        in.Country,
			Nationality:    in.Nationality,
		}

		if err := tx.Create(&emp).Error; err != nil {
			return err
		}

		hashed, err := r.hash([]byte(in.Password))
		if err != nil {
			return err
		}

		cred := models.Credential{
			Email:        in.Email,
			PasswordHash: string(hashed),
			EmployeeID:   emp.ID,
		}

		if err := tx.Create(&cred).Error; err != nil {
			return err
		}

		created = emp
		return nil
	})

	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, domain.ErrDuplicateIdentity
		}
		return nil, err
	}

	return &created, nil
}

// --------------------------------------------------
// Authenticate
// --------------------------------------------------

func (r *EmployeeGormRepository) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (*models.Employee, error) {

	var cred models.Credential
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&cred).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnknownEmail
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(cred.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, domain.ErrWrongPassword
	}

	var emp models.Employee
	if err := r.db.WithContext(ctx).First(&emp, cred.EmployeeID).Error; err != nil {
		return nil, err
	}

	return &emp, nil
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *EmployeeGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeGormRepository) ListByRole(
	ctx context.Context,
	role domain.Role,
) ([]models.Employee, error) {

	var emps []models.Employee
	if err := r.db.WithContext(ctx).
		Where("role = ?", string(role)).
		Order("id ASC").
		Find(&emps).Error; err != nil {
		return nil, err
	}
	return emps, nil
}

func (r *EmployeeGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Employee{}, id).Error
}

func (r *EmployeeGormRepository) SetPhotoPath(
	ctx context.Context,
	id uint,
	path string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", id).
		Update("photo_path", path).Error
}

// Compile-time check
var _ domain.Repository = (*EmployeeGormRepository)(nil)
