// Package agenda derives calendar and appointment views from the
// appointment mirror. The derivations are pure; only the appointment
// CRUD touches the remote store.
package agenda

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jardinverde/gardenia/internal/entity"
	"github.com/jardinverde/gardenia/internal/platform/timeutil"
	"github.com/jardinverde/gardenia/internal/session"
	"github.com/jardinverde/gardenia/internal/store"
)

// ErrNotFound indicates an unknown appointment id.
var ErrNotFound = errors.New("appointment not found")

// Params for creating or updating an appointment.
type Params struct {
	ClientID    string
	ClientName  string
	Date        string
	Time        string
	Description string
	Status      entity.AppointmentStatus
}

// Service owns appointment mutations and agenda derivations.
type Service struct {
	hub  *store.Hub
	gate *session.Gate
}

// NewService creates an agenda service.
func NewService(hub *store.Hub, gate *session.Gate) *Service {
	return &Service{hub: hub, gate: gate}
}

// List returns the mirrored appointments in arrival order.
func (s *Service) List() []entity.Appointment {
	return s.hub.Appointments.Items()
}

// Add schedules an appointment.
func (s *Service) Add(ctx context.Context, sess *session.Session, params Params) (entity.Appointment, error) {
	apt := s.fromParams(uuid.NewString(), params)
	if apt.Status == "" {
		apt.Status = entity.AppointmentScheduled
	}
	if err := s.gate.Set(ctx, sess, store.ColAppointments, apt.ID, apt); err != nil {
		return entity.Appointment{}, err
	}
	return apt, nil
}

// Update replaces an appointment record.
func (s *Service) Update(ctx context.Context, sess *session.Session, id string, params Params) (entity.Appointment, error) {
	if _, ok := s.hub.Appointments.Find(func(a entity.Appointment) bool { return a.ID == id }); !ok {
		return entity.Appointment{}, ErrNotFound
	}
	apt := s.fromParams(id, params)
	if err := s.gate.Set(ctx, sess, store.ColAppointments, id, apt); err != nil {
		return entity.Appointment{}, err
	}
	return apt, nil
}

// Delete removes an appointment.
func (s *Service) Delete(ctx context.Context, sess *session.Session, id string) error {
	return s.gate.Delete(ctx, sess, store.ColAppointments, id)
}

func (s *Service) fromParams(id string, params Params) entity.Appointment {
	return entity.Appointment{
		ID:          id,
		ClientID:    params.ClientID,
		ClientName:  params.ClientName,
		Date:        params.Date,
		Time:        params.Time,
		Description: params.Description,
		Status:      params.Status,
	}
}

// DayDetail returns the non-cancelled appointments on the given day,
// ascending by time of day. HH:MM compares correctly as a string; equal
// times keep collection order.
func (s *Service) DayDetail(day string) []entity.Appointment {
	var out []entity.Appointment
	for _, a := range s.hub.Appointments.Items() {
		if a.Date == day && a.Status != entity.AppointmentCancelled {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// Upcoming returns the non-cancelled appointments at or after now,
// ascending by combined date and time.
func (s *Service) Upcoming(now time.Time) []entity.Appointment {
	cutoff := now.Format(timeutil.Day) + " " + now.Format(timeutil.Clock)

	var out []entity.Appointment
	for _, a := range s.hub.Appointments.Items() {
		if a.Status == entity.AppointmentCancelled {
			continue
		}
		if a.Date+" "+a.Time >= cutoff {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date+" "+out[i].Time < out[j].Date+" "+out[j].Time
	})
	return out
}

// MonthAppointments returns the non-cancelled appointments falling inside
// the grid's month, for rendering day markers on the calendar.
func (s *Service) MonthAppointments(g Grid) []entity.Appointment {
	start := time.Date(g.Year, g.Month, 1, 0, 0, 0, 0, time.UTC).Format(timeutil.Day)
	end := time.Date(g.Year, g.Month+1, 1, 0, 0, 0, 0, time.UTC).Format(timeutil.Day)

	var out []entity.Appointment
	for _, a := range s.hub.Appointments.Items() {
		if a.Status == entity.AppointmentCancelled {
			continue
		}
		if a.Date >= start && a.Date < end {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date+" "+out[i].Time < out[j].Date+" "+out[j].Time
	})
	return out
}
