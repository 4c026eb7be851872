package api

// Envelope is the structured wire format for error responses: a null
// data slot, request correlation metadata, and the error body.
type Envelope[T any] struct {
	Data  *T         `json:"data"`
	Meta  Meta       `json:"meta"`
	Error *ErrorBody `json:"error"`
}

// Meta holds cross-cutting metadata.
type Meta struct {
	RequestID *string `json:"requestId,omitempty"`
}

// ErrorBody describes an error in a predictable structured format.
type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldIssue `json:"details,omitempty"`
}

// FieldIssue gives field-level or contextual error information.
type FieldIssue struct {
	Field string `json:"field,omitempty"`
	Issue string `json:"issue"`
}

// NewErrorEnvelope constructs an error envelope with no data.
func NewErrorEnvelope[T any](requestID *string, code, msg string, details []FieldIssue) Envelope[T] {
	var cloned []FieldIssue
	if len(details) > 0 {
		cloned = make([]FieldIssue, len(details))
		copy(cloned, details)
	}
	return Envelope[T]{
		Meta: Meta{RequestID: requestID},
		Error: &ErrorBody{
			Code:    code,
			Message: msg,
			Details: cloned,
		},
	}
}
