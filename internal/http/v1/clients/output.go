package clients

// ListOutput for GET /clients
type ListOutput struct {
	Body struct {
		Clients []Client `json:"clients"`
	}
}

// ClientOutput for single-client responses.
type ClientOutput struct {
	Body Client
}

// LogOutput for POST /clients/{id}/logs
type LogOutput struct {
	Body WorkLog
}

// PendingOutput for GET /clients/pending-logs
type PendingOutput struct {
	Body struct {
		Pending []PendingLog `json:"pending"`
	}
}
