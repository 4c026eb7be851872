package appointments

// AppointmentOutput for create and update responses.
type AppointmentOutput struct {
	Body Appointment
}

// ListOutput for GET /appointments and the day and upcoming views.
type ListOutput struct {
	Body struct {
		Appointments []Appointment `json:"appointments"`
	}
}

// MonthOutput for GET /appointments/calendar/{year}/{month}
type MonthOutput struct {
	Body struct {
		Year          int           `json:"year"          doc:"Calendar year"`
		Month         int           `json:"month"         doc:"Calendar month (1 = January)"`
		LeadingBlanks int           `json:"leadingBlanks" doc:"Blank cells before day 1 (0 = month starts on Sunday)"`
		DaysInMonth   int           `json:"daysInMonth"   doc:"Number of days in the month"`
		Cells         []int         `json:"cells"         doc:"Display cells: zeros for blanks, then 1..daysInMonth"`
		Appointments  []Appointment `json:"appointments"  doc:"Appointments falling inside the month"`
	}
}
