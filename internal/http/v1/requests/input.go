package requests

// SubmitInput for POST /service-requests
type SubmitInput struct {
	Body struct {
		ClientName  string `json:"clientName"  minLength:"1" maxLength:"200" required:"true" doc:"Contact name" example:"Marta Paz"`
		PhoneNumber string `json:"phoneNumber" minLength:"1"                 required:"true" doc:"Contact phone"`
		HasWhatsapp bool   `json:"hasWhatsapp"                                               doc:"Whether the phone has WhatsApp"`
		Zone        string `json:"zone"                                                      doc:"Neighborhood or zone" example:"Nunez"`
		ServiceType string `json:"serviceType" minLength:"1"                 required:"true" doc:"Requested service" example:"Mantenimiento mensual"`
		Description string `json:"description"                                               doc:"Free-form details"`
	}
}

// StatusInput for PUT /service-requests/{id}/status
type StatusInput struct {
	ID   string `path:"id" doc:"Request identifier"`
	Body struct {
		Status string `json:"status" required:"true" enum:"pending,contacted,completed" doc:"New status"`
	}
}
