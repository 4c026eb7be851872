package appointments

// AppointmentBody carries the writable appointment fields.
type AppointmentBody struct {
	ClientID    string `json:"clientId"                                                    doc:"Linked client, empty for ad-hoc visits"`
	ClientName  string `json:"clientName"  minLength:"1" maxLength:"200"   required:"true" doc:"Display name"`
	Date        string `json:"date"        pattern:"^\\d{4}-\\d{2}-\\d{2}$" required:"true" doc:"Visit date (YYYY-MM-DD)" example:"2026-03-14"`
	Time        string `json:"time"        pattern:"^\\d{2}:\\d{2}$"        required:"true" doc:"Visit time (HH:MM)"      example:"09:30"`
	Description string `json:"description"                                                 doc:"Planned work"`
	Status      string `json:"status"      enum:"scheduled,completed,cancelled"            doc:"Lifecycle status, scheduled when omitted"`
}

// CreateInput for POST /appointments
type CreateInput struct {
	Body AppointmentBody
}

// UpdateInput for PUT /appointments/{id}
type UpdateInput struct {
	ID   string `path:"id" doc:"Appointment identifier"`
	Body AppointmentBody
}

// DeleteInput for DELETE /appointments/{id}
type DeleteInput struct {
	ID string `path:"id" doc:"Appointment identifier"`
}

// MonthInput for GET /appointments/calendar/{year}/{month}
type MonthInput struct {
	Year  int `path:"year"  minimum:"1970" maximum:"2200" doc:"Calendar year"`
	Month int `path:"month" minimum:"1"    maximum:"12"   doc:"Calendar month (1 = January)"`
}

// DayInput for GET /appointments/day/{date}
type DayInput struct {
	Date string `path:"date" pattern:"^\\d{4}-\\d{2}-\\d{2}$" doc:"Visit date (YYYY-MM-DD)"`
}
