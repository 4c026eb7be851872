package appointments

import "github.com/jardinverde/gardenia/internal/entity"

// Appointment represents a scheduled visit in responses.
type Appointment struct {
	ID          string `json:"id"          doc:"Appointment identifier"`
	ClientID    string `json:"clientId"    doc:"Linked client, empty for ad-hoc visits"`
	ClientName  string `json:"clientName"  doc:"Display name"`
	Date        string `json:"date"        doc:"Visit date (YYYY-MM-DD)" example:"2026-03-14"`
	Time        string `json:"time"        doc:"Visit time (HH:MM)"      example:"09:30"`
	Description string `json:"description" doc:"Planned work"`
	Status      string `json:"status"      doc:"Lifecycle status" enum:"scheduled,completed,cancelled"`
}

func toHTTPAppointment(a entity.Appointment) Appointment {
	return Appointment{
		ID:          a.ID,
		ClientID:    a.ClientID,
		ClientName:  a.ClientName,
		Date:        a.Date,
		Time:        a.Time,
		Description: a.Description,
		Status:      string(a.Status),
	}
}

func toHTTPAppointments(in []entity.Appointment) []Appointment {
	out := make([]Appointment, 0, len(in))
	for _, a := range in {
		out = append(out, toHTTPAppointment(a))
	}
	return out
}
