package appointments

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jardinverde/gardenia/internal/entity"
	agendasvc "github.com/jardinverde/gardenia/internal/service/agenda"
	"github.com/jardinverde/gardenia/internal/session"
)

// Register registers appointment and agenda endpoints.
func Register(api huma.API, svc *agendasvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "list-appointments",
		Method:      http.MethodGet,
		Path:        "/appointments",
		Summary:     "List appointments",
		Tags:        []string{"Agenda"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *struct{}) (*ListOutput, error) {
		out := &ListOutput{}
		out.Body.Appointments = toHTTPAppointments(svc.List())
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-upcoming-appointments",
		Method:      http.MethodGet,
		Path:        "/appointments/upcoming",
		Summary:     "List upcoming appointments",
		Description: "Appointments at or after the current moment, soonest first. Cancelled visits are excluded.",
		Tags:        []string{"Agenda"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *struct{}) (*ListOutput, error) {
		out := &ListOutput{}
		out.Body.Appointments = toHTTPAppointments(svc.Upcoming(time.Now()))
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-day-appointments",
		Method:      http.MethodGet,
		Path:        "/appointments/day/{date}",
		Summary:     "List a day's appointments",
		Description: "Appointments on the given date ordered by time. Cancelled visits are excluded.",
		Tags:        []string{"Agenda"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *DayInput) (*ListOutput, error) {
		out := &ListOutput{}
		out.Body.Appointments = toHTTPAppointments(svc.DayDetail(input.Date))
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-calendar-month",
		Method:      http.MethodGet,
		Path:        "/appointments/calendar/{year}/{month}",
		Summary:     "Get a month's calendar grid",
		Description: "Month layout plus the appointments falling inside it.",
		Tags:        []string{"Agenda"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *MonthInput) (*MonthOutput, error) {
		grid := agendasvc.CalendarGrid(input.Year, time.Month(input.Month))
		out := &MonthOutput{}
		out.Body.Year = grid.Year
		out.Body.Month = int(grid.Month)
		out.Body.LeadingBlanks = grid.LeadingBlanks
		out.Body.DaysInMonth = grid.DaysInMonth
		out.Body.Cells = grid.Cells()
		out.Body.Appointments = toHTTPAppointments(svc.MonthAppointments(grid))
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-appointment",
		Method:        http.MethodPost,
		Path:          "/appointments",
		Summary:       "Create appointment",
		Tags:          []string{"Agenda"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *CreateInput) (*AppointmentOutput, error) {
		a, err := svc.Add(ctx, session.FromContext(ctx), params(input.Body))
		if err != nil {
			return nil, mapAgendaError(err)
		}
		return &AppointmentOutput{Body: toHTTPAppointment(a)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-appointment",
		Method:      http.MethodPut,
		Path:        "/appointments/{id}",
		Summary:     "Update appointment",
		Tags:        []string{"Agenda"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *UpdateInput) (*AppointmentOutput, error) {
		a, err := svc.Update(ctx, session.FromContext(ctx), input.ID, params(input.Body))
		if err != nil {
			return nil, mapAgendaError(err)
		}
		return &AppointmentOutput{Body: toHTTPAppointment(a)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-appointment",
		Method:        http.MethodDelete,
		Path:          "/appointments/{id}",
		Summary:       "Delete appointment",
		Tags:          []string{"Agenda"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *DeleteInput) (*struct{}, error) {
		if err := svc.Delete(ctx, session.FromContext(ctx), input.ID); err != nil {
			return nil, mapAgendaError(err)
		}
		return nil, nil
	})
}

func params(b AppointmentBody) agendasvc.Params {
	return agendasvc.Params{
		ClientID:    b.ClientID,
		ClientName:  b.ClientName,
		Date:        b.Date,
		Time:        b.Time,
		Description: b.Description,
		Status:      entity.AppointmentStatus(b.Status),
	}
}

func mapAgendaError(err error) error {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return huma.Error401Unauthorized("sign-in required")
	case errors.Is(err, agendasvc.ErrNotFound):
		return huma.Error404NotFound("appointment not found")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
