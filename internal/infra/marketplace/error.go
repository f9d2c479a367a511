package marketplace

import (
	"log/slog"
	"net/http"

	"estate-booking/internal/pkg/errs"
)

type ErrorKind string

// Client error kinds, classified from the transport outcome.
const (
	KindNetwork  ErrorKind = "NETWORK"
	KindServer   ErrorKind = "SERVER"
	KindAuth     ErrorKind = "AUTH"
	KindConflict ErrorKind = "CONFLICT"
	KindNotFound ErrorKind = "NOT_FOUND"
	KindRejected ErrorKind = "REJECTED"
	KindDecode   ErrorKind = "DECODE"
)

var kindCategory = map[ErrorKind]error{
	KindNetwork:  errs.ErrNetwork,
	KindServer:   errs.ErrServer,
	KindAuth:     errs.ErrAuth,
	KindConflict: errs.ErrConflict,
	KindNotFound: errs.ErrNotFound,
	KindRejected: errs.ErrValidation,
	KindDecode:   errs.ErrServer,
}

// ClientError describes a failed marketplace call. Message holds the
// server's own error text when the response carried one.
type ClientError struct {
	Kind      ErrorKind
	Operation string
	Status    int
	Message   string
	err       error
}

func (e ClientError) Error() string {
	s := string(e.Kind) + ": " + e.Operation
	if e.Status != 0 {
		s += ": " + http.StatusText(e.Status)
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e ClientError) Unwrap() error {
	return e.err
}

// Retryable is true for failures where the request may not have been processed.
func (e ClientError) Retryable() bool {
	return e.Kind == KindNetwork || e.Kind == KindServer
}

func newClientError(kind ErrorKind, op string, status int, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, op)
	}
	return errs.Mark(ClientError{Kind: kind, Operation: op, Status: status, Message: msg, err: err}, kindCategory[kind])
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= http.StatusInternalServerError:
		return KindServer
	default:
		return KindRejected
	}
}

func logClientErr(logger *slog.Logger, err error) {
	var ce ClientError
	if !errs.As(err, &ce) {
		return
	}
	attrs := []any{
		slog.String("kind", string(ce.Kind)),
		slog.String("operation", ce.Operation),
		slog.Int("status", ce.Status),
	}
	if ce.Kind == KindNetwork || ce.Kind == KindServer || ce.Kind == KindDecode {
		logger.Error("Marketplace call failed", append(attrs, slog.Any("error", err))...)
		return
	}
	logger.Warn("Marketplace call rejected", attrs...)
}

func IsKind(err error, kind ErrorKind) bool {
	var e ClientError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ServerMessage returns the server's error text, if any.
func ServerMessage(err error) string {
	var e ClientError
	if errs.As(err, &e) {
		return e.Message
	}
	return ""
}

func (e ClientError) ServerMessage() string {
	return e.Message
}
