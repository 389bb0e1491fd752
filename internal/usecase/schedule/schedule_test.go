package schedule_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jdsalazarc/barberia-desk/internal/audit"
	domainEmployee "github.com/jdsalazarc/barberia-desk/internal/domain/employee"
	domain "github.com/jdsalazarc/barberia-desk/internal/domain/schedule"
	"github.com/jdsalazarc/barberia-desk/internal/httperr"
	infraRepo "github.com/jdsalazarc/barberia-desk/internal/infra/repository"
	"github.com/jdsalazarc/barberia-desk/internal/models"
	ucschedule "github.com/jdsalazarc/barberia-desk/internal/usecase/schedule"
)

type fixture struct {
	db      *gorm.DB
	book    *ucschedule.BookAppointment
	resched *ucschedule.RescheduleAppointment
	listDay *ucschedule.ListDayAppointments
	remove  *ucschedule.RemoveAppointment
	barberA *models.Employee
	barberB *models.Employee
	admin   *models.Employee
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Employee{},
		&models.Credential{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db), log)

	employees := infraRepo.NewEmployeeGormRepository(db)
	seed := func(email, doc string, role domainEmployee.Role) *models.Employee {
		emp, err := employees.Register(context.Background(), domainEmployee.RegisterInput{
			Name:           "Luis",
			Surname:        "Rojas",
			DocumentNumber: doc,
			Email:          email,
			Role:           role,
			Password:       "secret123",
		})
		if err != nil {
			t.Fatalf("seed %s: %v", email, err)
		}
		return emp
	}

	return &fixture{
		db:      db,
		book:    ucschedule.NewBookAppointment(scheduleRepo, dispatcher),
		resched: ucschedule.NewRescheduleAppointment(scheduleRepo, dispatcher),
		listDay: ucschedule.NewListDayAppointments(scheduleRepo),
		remove:  ucschedule.NewRemoveAppointment(scheduleRepo, dispatcher),
		barberA: seed("a@barberia.co", "1", domainEmployee.RoleBarber),
		barberB: seed("b@barberia.co", "2", domainEmployee.RoleBarber),
		admin:   seed("adm@barberia.co", "3", domainEmployee.RoleAdministrator),
	}
}

func requester(emp *models.Employee) domain.Requester {
	return domain.Requester{EmployeeID: emp.ID, Role: emp.Role}
}

func (f *fixture) mustBook(t *testing.T, by *models.Employee, target uint, date, hour string) *models.Appointment {
	t.Helper()
	ap, err := f.book.Execute(context.Background(), requester(by), ucschedule.BookAppointmentInput{
		ClientName: "Cliente",
		Date:       date,
		Time:       hour,
		EmployeeID: target,
	})
	if err != nil {
		t.Fatalf("book %s %s: %v", date, hour, err)
	}
	return ap
}

func TestBarberCannotBookForAnother(t *testing.T) {
	f := newFixture(t)

	_, err := f.book.Execute(context.Background(), requester(f.barberA), ucschedule.BookAppointmentInput{
		ClientName: "Cliente",
		Date:       "2026-09-01",
		Time:       "10:00",
		EmployeeID: f.barberB.ID,
	})
	if !httperr.IsBusiness(err, "forbidden_reassignment") {
		t.Errorf("got %v, want forbidden_reassignment", err)
	}

	// An administrator can.
	if _, err := f.book.Execute(context.Background(), requester(f.admin), ucschedule.BookAppointmentInput{
		ClientName: "Cliente",
		Date:       "2026-09-01",
		Time:       "10:00",
		EmployeeID: f.barberB.ID,
	}); err != nil {
		t.Errorf("admin booking for barber B: %v", err)
	}
}

func TestListDayScopedByRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.mustBook(t, f.barberA, 0, "2026-09-01", "10:00")
	f.mustBook(t, f.barberB, 0, "2026-09-01", "09:00")

	own, err := f.listDay.Execute(ctx, requester(f.barberA), "2026-09-01")
	if err != nil {
		t.Fatalf("barber listing: %v", err)
	}
	if len(own) != 1 || own[0].EmployeeID != f.barberA.ID {
		t.Errorf("barber sees %+v, want only their own", own)
	}
	if own[0].EmployeeName != "" {
		t.Error("own listing must not carry owner names")
	}

	all, err := f.listDay.Execute(ctx, requester(f.admin), "2026-09-01")
	if err != nil {
		t.Fatalf("admin listing: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin sees %d rows, want 2", len(all))
	}
	if all[0].Time != "09:00" || all[1].Time != "10:00" {
		t.Errorf("admin listing out of order: %+v", all)
	}
	for _, row := range all {
		if row.EmployeeName == "" {
			t.Errorf("row %d missing owner name", row.ID)
		}
	}
}

func TestRescheduleOwnershipAndReassignment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap := f.mustBook(t, f.barberA, 0, "2026-09-01", "10:00")

	in := ucschedule.RescheduleAppointmentInput{
		ClientName: "Cliente",
		Date:       "2026-09-01",
		Time:       "11:00",
	}

	// Another barber cannot touch A's appointment.
	if _, err := f.resched.Execute(ctx, requester(f.barberB), ap.ID, in); !httperr.IsBusiness(err, "forbidden_reassignment") {
		t.Errorf("foreign edit: got %v, want forbidden_reassignment", err)
	}

	// A barber cannot hand their appointment to someone else.
	moved := in
	moved.EmployeeID = f.barberB.ID
	if _, err := f.resched.Execute(ctx, requester(f.barberA), ap.ID, moved); !httperr.IsBusiness(err, "forbidden_reassignment") {
		t.Errorf("self reassignment: got %v, want forbidden_reassignment", err)
	}

	// An administrator reassigns, subject to the target's conflicts.
	f.mustBook(t, f.barberB, 0, "2026-09-01", "11:00")
	if _, err := f.resched.Execute(ctx, requester(f.admin), ap.ID, moved); !httperr.IsBusiness(err, "slot_conflict") {
		t.Errorf("reassign onto taken slot: got %v, want slot_conflict", err)
	}

	free := moved
	free.Time = "12:00"
	modified, err := f.resched.Execute(ctx, requester(f.admin), ap.ID, free)
	if err != nil || !modified {
		t.Errorf("admin reassign: modified=%v err=%v", modified, err)
	}
}

func TestRemoveScopedAndIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap := f.mustBook(t, f.barberA, 0, "2026-09-01", "10:00")

	// B's remove silently misses A's appointment.
	if err := f.remove.Execute(ctx, requester(f.barberB), ap.ID); err != nil {
		t.Fatalf("foreign remove: %v", err)
	}
	var count int64
	f.db.Model(&models.Appointment{}).Count(&count)
	if count != 1 {
		t.Fatal("appointment removed by non-owner")
	}

	if err := f.remove.Execute(ctx, requester(f.barberA), ap.ID); err != nil {
		t.Fatalf("owner remove: %v", err)
	}
	// Removing an id that no longer exists still succeeds.
	if err := f.remove.Execute(ctx, requester(f.admin), ap.ID); err != nil {
		t.Errorf("repeat remove: %v", err)
	}
}
