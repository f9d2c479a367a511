package booking

import (
	"fmt"
	"regexp"
	"strings"

	"estate-booking/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,18}[0-9]$`)
	timeRegex  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register phone validation: %v", err))
	}
	if err := v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return timeRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register hhmm validation: %v", err))
	}
	return v
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is returned for multi-field input problems; it is marked as a validation error.
type FieldErrors []FieldError

func (f FieldErrors) Error() string {
	msgs := make([]string, len(f))
	for i, e := range f {
		msgs[i] = e.Field + ": " + e.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

var fieldMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"phone":    "must be a valid phone number",
	"hhmm":     "must be in HH:MM format",
	"max":      "is too long",
}

var fieldNames = map[string]string{
	"Name":            "guestName",
	"Email":           "guestEmail",
	"Phone":           "guestPhone",
	"SpecialRequests": "specialRequests",
	"Time":            "inspectionTime",
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return errs.Mark(err, errs.ErrValidation)
	}
	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		name, ok := fieldNames[fe.Field()]
		if !ok {
			name = fe.Field()
		}
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		out = append(out, FieldError{Field: name, Message: msg})
	}
	return errs.Mark(out, errs.ErrValidation)
}
