package employee

import "github.com/jdsalazarc/barberia-desk/internal/httperr"

// ===============================
// Employee Role
// ===============================

type Role string

const (
	RoleBarber        Role = "barber"
	RoleAdministrator Role = "administrator"
	RoleOther         Role = "other"
)

// ParseRole accepts both the wire values and the Spanish labels the UI
// forms submit.
func ParseRole(s string) (Role, error) {
	switch s {
	case "barber", "Barbero":
		return RoleBarber, nil
	case "administrator", "Administrador":
		return RoleAdministrator, nil
	case "other", "Otro":
		return RoleOther, nil
	}
	return "", httperr.ErrBusiness("invalid_role")
}

// SeesAllSchedules is the single visibility predicate for schedule
// reads: administrators see every employee's day, everyone else only
// their own.
func (r Role) SeesAllSchedules() bool {
	return r == RoleAdministrator
}

// CanAssignOthers reports whether the role may book or move an
// appointment onto a different employee's schedule.
func (r Role) CanAssignOthers() bool {
	return r == RoleAdministrator
}

func (r Role) Valid() bool {
	switch r {
	case RoleBarber, RoleAdministrator, RoleOther:
		return true
	}
	return false
}
