package clients

// ClientBody carries the writable client fields. Ledger state is never
// caller-supplied.
type ClientBody struct {
	Name         string  `json:"name"         minLength:"1" maxLength:"200" required:"true" doc:"Client name" example:"Marta Paz"`
	Address      string  `json:"address"                                                    doc:"Street address"`
	Zone         string  `json:"zone"                                                       doc:"Neighborhood or zone"`
	UsualService string  `json:"usualService"                                               doc:"Service typically performed"`
	IsRegular    bool    `json:"isRegular"                                                  doc:"Recurring client"`
	LastPrice    float64 `json:"lastPrice"    minimum:"0"                                   doc:"Most recent charge"`
}

// CreateInput for POST /clients
type CreateInput struct {
	Body ClientBody
}

// GetInput for GET /clients/{id}
type GetInput struct {
	ID string `path:"id" doc:"Client identifier"`
}

// UpdateInput for PUT /clients/{id}
type UpdateInput struct {
	ID   string `path:"id" doc:"Client identifier"`
	Body ClientBody
}

// DeleteInput for DELETE /clients/{id}
type DeleteInput struct {
	ID string `path:"id" doc:"Client identifier"`
}

// AddLogInput for POST /clients/{id}/logs
type AddLogInput struct {
	ID   string `path:"id" doc:"Client identifier"`
	Body struct {
		Date        string  `json:"date"        pattern:"^\\d{4}-\\d{2}-\\d{2}$" required:"true" doc:"Work date (YYYY-MM-DD)" example:"2026-03-14"`
		Description string  `json:"description"                                                  doc:"Work performed"`
		Hours       float64 `json:"hours"       minimum:"0"                                      doc:"Hours worked"`
		Amount      float64 `json:"amount"                                                       doc:"Amount charged"`
		Status      string  `json:"status"      enum:"pending,paid"                              doc:"Payment status, pending when omitted"`
	}
}

// LogStatusInput for PUT /clients/{id}/logs/{logId}/status
type LogStatusInput struct {
	ID    string `path:"id"    doc:"Client identifier"`
	LogID string `path:"logId" doc:"Log identifier"`
	Body  struct {
		Status string `json:"status" required:"true" enum:"pending,paid" doc:"New payment status"`
	}
}
