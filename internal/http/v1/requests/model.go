package requests

import "github.com/jardinverde/gardenia/internal/entity"

// ServiceRequest represents a contact-form request in responses.
type ServiceRequest struct {
	ID          string `json:"id"          doc:"Request identifier"`
	ClientName  string `json:"clientName"  doc:"Contact name"`
	PhoneNumber string `json:"phoneNumber" doc:"Contact phone"`
	HasWhatsapp bool   `json:"hasWhatsapp" doc:"Whether the phone has WhatsApp"`
	Zone        string `json:"zone"        doc:"Neighborhood or zone"`
	ServiceType string `json:"serviceType" doc:"Requested service"`
	Description string `json:"description" doc:"Free-form details"`
	Date        string `json:"date"        doc:"Submission timestamp"`
	Status      string `json:"status"      doc:"Handling status" enum:"pending,contacted,completed"`
}

// ListOutput for GET /service-requests
type ListOutput struct {
	Body struct {
		Requests     []ServiceRequest `json:"requests"`
		PendingCount int              `json:"pendingCount" doc:"Number of requests still pending"`
	}
}

// RequestOutput for POST /service-requests
type RequestOutput struct {
	Body ServiceRequest
}

func toHTTPRequest(r entity.ServiceRequest) ServiceRequest {
	return ServiceRequest{
		ID:          r.ID,
		ClientName:  r.ClientName,
		PhoneNumber: r.PhoneNumber,
		HasWhatsapp: r.HasWhatsapp,
		Zone:        r.Zone,
		ServiceType: r.ServiceType,
		Description: r.Description,
		Date:        r.Date,
		Status:      string(r.Status),
	}
}

func toHTTPRequests(in []entity.ServiceRequest) []ServiceRequest {
	out := make([]ServiceRequest, 0, len(in))
	for _, r := range in {
		out = append(out, toHTTPRequest(r))
	}
	return out
}
