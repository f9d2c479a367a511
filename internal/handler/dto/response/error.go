package response

import "estate-booking/internal/domain/booking"

// ErrorDetail is the detail of wizard error responses. Wizard carries the
// state the failure left behind.
type ErrorDetail struct {
	Wizard   *WizardResponse      `json:"wizard,omitempty"`
	Fields   []FieldErrorResponse `json:"fields,omitempty"`
	Redirect string               `json:"redirect,omitempty"`
}

type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func FromFieldErrors(fe booking.FieldErrors) []FieldErrorResponse {
	out := make([]FieldErrorResponse, len(fe))
	for i, f := range fe {
		out[i] = FieldErrorResponse{Field: f.Field, Message: f.Message}
	}
	return out
}
