package agenda

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jardinverde/gardenia/internal/entity"
	"github.com/jardinverde/gardenia/internal/session"
	"github.com/jardinverde/gardenia/internal/store"
)

func newTestService(t *testing.T) (*Service, *session.Session) {
	t.Helper()
	remote := store.NewMemoryRemote()
	hub := store.NewHub(remote)
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("hub start: %v", err)
	}
	if err := hub.OpenProtected(context.Background()); err != nil {
		t.Fatalf("open protected: %v", err)
	}
	t.Cleanup(hub.Close)

	sess := &session.Session{
		Token:   "token-uid-0",
		Profile: entity.Profile{ID: "uid-0", Role: entity.RoleAdmin},
		State:   session.StateEstablished,
	}
	return NewService(hub, session.NewGate(remote)), sess
}

func schedule(t *testing.T, svc *Service, sess *session.Session, name, date, at string, status entity.AppointmentStatus) entity.Appointment {
	t.Helper()
	a, err := svc.Add(context.Background(), sess, Params{
		ClientName: name, Date: date, Time: at, Status: status,
	})
	if err != nil {
		t.Fatalf("add appointment: %v", err)
	}
	return a
}

func TestAddDefaultsToScheduled(t *testing.T) {
	svc, sess := newTestService(t)

	a := schedule(t, svc, sess, "Marta", "2026-03-14", "09:30", "")
	if a.Status != entity.AppointmentScheduled {
		t.Errorf("expected scheduled default, got %q", a.Status)
	}
	if len(svc.List()) != 1 {
		t.Error("appointment not mirrored")
	}
}

func TestUpdateUnknownAppointment(t *testing.T) {
	svc, sess := newTestService(t)

	_, err := svc.Update(context.Background(), sess, "nadie", Params{ClientName: "Marta"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDayDetailOrdersByTime(t *testing.T) {
	svc, sess := newTestService(t)

	schedule(t, svc, sess, "Jose", "2026-03-14", "09:00", entity.AppointmentScheduled)
	schedule(t, svc, sess, "Marta", "2026-03-14", "08:30", entity.AppointmentScheduled)
	schedule(t, svc, sess, "Laura", "2026-03-14", "10:15", entity.AppointmentCancelled)
	schedule(t, svc, sess, "Pedro", "2026-03-15", "07:00", entity.AppointmentScheduled)

	day := svc.DayDetail("2026-03-14")
	if len(day) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(day))
	}
	if day[0].Time != "08:30" || day[1].Time != "09:00" {
		t.Errorf("expected ascending by time, got %s then %s", day[0].Time, day[1].Time)
	}
}

func TestUpcoming(t *testing.T) {
	svc, sess := newTestService(t)

	schedule(t, svc, sess, "Pasada", "2026-03-10", "09:00", entity.AppointmentScheduled)
	schedule(t, svc, sess, "Hoy tarde", "2026-03-14", "15:00", entity.AppointmentScheduled)
	schedule(t, svc, sess, "Hoy temprano", "2026-03-14", "08:00", entity.AppointmentScheduled)
	schedule(t, svc, sess, "Anulada", "2026-03-20", "09:00", entity.AppointmentCancelled)
	schedule(t, svc, sess, "Semana", "2026-03-18", "09:00", entity.AppointmentScheduled)

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	up := svc.Upcoming(now)
	if len(up) != 2 {
		t.Fatalf("expected 2 upcoming, got %d: %+v", len(up), up)
	}
	if up[0].ClientName != "Hoy tarde" || up[1].ClientName != "Semana" {
		t.Errorf("unexpected order: %s then %s", up[0].ClientName, up[1].ClientName)
	}
}

func TestMonthAppointments(t *testing.T) {
	svc, sess := newTestService(t)

	schedule(t, svc, sess, "Feb", "2026-02-27", "09:00", entity.AppointmentScheduled)
	schedule(t, svc, sess, "Mar a", "2026-03-02", "09:00", entity.AppointmentScheduled)
	schedule(t, svc, sess, "Mar b", "2026-03-01", "10:00", entity.AppointmentScheduled)
	schedule(t, svc, sess, "Abr", "2026-04-01", "09:00", entity.AppointmentScheduled)

	got := svc.MonthAppointments(CalendarGrid(2026, time.March))
	if len(got) != 2 {
		t.Fatalf("expected 2 march appointments, got %d", len(got))
	}
	if got[0].ClientName != "Mar b" || got[1].ClientName != "Mar a" {
		t.Errorf("expected chronological order, got %s then %s", got[0].ClientName, got[1].ClientName)
	}
}
