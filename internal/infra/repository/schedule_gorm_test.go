package repository

import (
	"context"
	"testing"

	domainEmployee "github.com/jdsalazarc/barberia-desk/internal/domain/employee"
	"github.com/jdsalazarc/barberia-desk/internal/httperr"
	"github.com/jdsalazarc/barberia-desk/internal/models"
)

func seedBarber(t *testing.T, repo *EmployeeGormRepository, email, doc string) *models.Employee {
	t.Helper()
	emp, err := repo.Register(context.Background(), registerInput(email, doc, domainEmployee.RoleBarber))
	if err != nil {
		t.Fatalf("seed barber %s: %v", email, err)
	}
	return emp
}

func appointment(employeeID uint, date, hour string) *models.Appointment {
	return &models.Appointment{
		ClientName: "Juan Pérez",
		Date:       date,
		Time:       hour,
		Service:    "Corte clásico",
		EmployeeID: employeeID,
	}
}

func TestCreateRejectsTakenSlot(t *testing.T) {
	db := testDB(t)
	employees := NewEmployeeGormRepository(db)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	a := seedBarber(t, employees, "a@barberia.co", "1")
	b := seedBarber(t, employees, "b@barberia.co", "2")

	if err := repo.Create(ctx, appointment(a.ID, "2026-09-01", "10:00")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := repo.Create(ctx, appointment(a.ID, "2026-09-01", "10:00"))
	if !httperr.IsBusiness(err, "slot_conflict") {
		t.Errorf("same slot same barber: got %v, want slot_conflict", err)
	}

	// Same slot, different barber: no conflict.
	if err := repo.Create(ctx, appointment(b.ID, "2026-09-01", "10:00")); err != nil {
		t.Errorf("same slot other barber: %v", err)
	}

	// Conflict must not have written anything.
	var count int64
	db.Model(&models.Appointment{}).Where("employee_id = ?", a.ID).Count(&count)
	if count != 1 {
		t.Errorf("barber A has %d appointments, want 1", count)
	}
}

func TestUpdateExcludesItselfFromConflictCheck(t *testing.T) {
	db := testDB(t)
	employees := NewEmployeeGormRepository(db)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	a := seedBarber(t, employees, "a@barberia.co", "1")

	ap := appointment(a.ID, "2026-09-01", "10:00")
	if err := repo.Create(ctx, ap); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Moving X to a free hour succeeds even though X held 10:00.
	moved := *ap
	moved.Time = "11:00"
	modified, err := repo.Update(ctx, &moved)
	if err != nil || !modified {
		t.Fatalf("move to free hour: modified=%v err=%v", modified, err)
	}

	// Saving X back onto its own current slot is not a conflict.
	modified, err = repo.Update(ctx, &moved)
	if err != nil || !modified {
		t.Errorf("re-save own slot: modified=%v err=%v", modified, err)
	}
}

func TestUpdateRejectsSlotHeldByAnother(t *testing.T) {
	db := testDB(t)
	employees := NewEmployeeGormRepository(db)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	a := seedBarber(t, employees, "a@barberia.co", "1")

	first := appointment(a.ID, "2026-09-01", "10:00")
	second := appointment(a.ID, "2026-09-01", "11:00")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	second.Time = "10:00"
	if _, err := repo.Update(ctx, second); !httperr.IsBusiness(err, "slot_conflict") {
		t.Errorf("got %v, want slot_conflict", err)
	}

	// The rejected update must not have touched the row.
	current, err := repo.GetByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if current.Time != "11:00" {
		t.Errorf("time = %q after rejected update, want 11:00", current.Time)
	}
}

func TestUpdateUnknownIDReportsNotModified(t *testing.T) {
	db := testDB(t)
	employees := NewEmployeeGormRepository(db)
	repo := NewScheduleGormRepository(db)

	a := seedBarber(t, employees, "a@barberia.co", "1")

	ap := appointment(a.ID, "2026-09-01", "10:00")
	ap.ID = 9999
	modified, err := repo.Update(context.Background(), ap)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if modified {
		t.Error("modified = true for unknown id, want false")
	}
}

func TestDeleteIsIdempotentAndOwnerScoped(t *testing.T) {
	db := testDB(t)
	employees := NewEmployeeGormRepository(db)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	a := seedBarber(t, employees, "a@barberia.co", "1")
	b := seedBarber(t, employees, "b@barberia.co", "2")

	ap := appointment(a.ID, "2026-09-01", "10:00")
	if err := repo.Create(ctx, ap); err != nil {
		t.Fatalf("create: %v", err)
	}

	// B cannot remove A's appointment through the owner filter, and
	// the no-op still succeeds.
	if err := repo.Delete(ctx, ap.ID, b.ID); err != nil {
		t.Fatalf("scoped delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, ap.ID); err != nil {
		t.Fatal("appointment vanished under foreign owner filter")
	}

	if err := repo.Delete(ctx, ap.ID, a.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := repo.Delete(ctx, ap.ID, a.ID); err != nil {
		t.Errorf("repeat delete: %v, want nil", err)
	}
}

func TestListForDayOrderingAndScope(t *testing.T) {
	db := testDB(t)
	employees := NewEmployeeGormRepository(db)
	repo := NewScheduleGormRepository(db)
	ctx := context.Background()

	a := seedBarber(t, employees, "a@barberia.co", "1")
	b := seedBarber(t, employees, "b@barberia.co", "2")

	for _, ap := range []*models.Appointment{
		appointment(a.ID, "2026-09-01", "15:00"),
		appointment(a.ID, "2026-09-01", "09:30"),
		appointment(b.ID, "2026-09-01", "11:00"),
		appointment(a.ID, "2026-09-02", "09:00"), // other day
	} {
		if err := repo.Create(ctx, ap); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	own, err := repo.ListOwnForDay(ctx, "2026-09-01", a.ID)
	if err != nil {
		t.Fatalf("own: %v", err)
	}
	if len(own) != 2 || own[0].Time != "09:30" || own[1].Time != "15:00" {
		t.Errorf("own listing wrong: %+v", own)
	}

	all, err := repo.ListAllForDay(ctx, "2026-09-01")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d rows, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Time > all[i].Time {
			t.Errorf("not ordered by time: %q before %q", all[i-1].Time, all[i].Time)
		}
	}
	// Owner join is loaded for the admin view.
	if all[0].Employee.Name == "" {
		t.Error("expected owning employee preloaded")
	}
}
