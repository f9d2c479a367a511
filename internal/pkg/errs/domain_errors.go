package errs

import "errors"

// Error categories shared by the marketplace client, use cases and handlers.
// Concrete errors are marked with one of these so callers can classify with errs.Is.
var (
	// Local, synchronous input problems. Shown inline, block progression.
	ErrValidation = errors.New("validation error")

	// The server reported requested dates as unavailable.
	ErrConflict = errors.New("availability conflict")

	// Transport failure: no response was received.
	ErrNetwork = errors.New("network error")

	// The remote API answered with a 5xx or an unusable body.
	ErrServer = errors.New("server error")

	// Missing or invalid session, or an unloadable profile. Fatal to a wizard.
	ErrAuth = errors.New("authentication required")

	// Unknown coupon code. Non-blocking.
	ErrCoupon = errors.New("coupon error")

	// Remote resource or wizard session does not exist.
	ErrNotFound = errors.New("not found")

	// A step action was attempted that the current state does not allow.
	ErrInvalidTransition = errors.New("invalid wizard transition")

	// A second submission arrived while one is pending.
	ErrSubmissionInProgress = errors.New("submission in progress")
)

// IsRecoverable reports whether the wizard should keep its draft after err.
func IsRecoverable(err error) bool {
	return err != nil && !Is(err, ErrAuth)
}
