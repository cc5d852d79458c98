package constants

import "net/http"

// CodedError is an error carrying the HTTP status the API error handler
// should respond with.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound      = NewCodedError("not found", http.StatusNotFound)
	ErrUnknownTable    = NewCodedError("unknown table", http.StatusNotFound)
	ErrNoSelector      = NewCodedError("no selector provided", http.StatusBadRequest)
	ErrBadDateRange    = NewCodedError("invalid date range", http.StatusBadRequest)
	ErrUnauthorized    = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrMissingAdmToken = NewCodedError("missing admin token", http.StatusUnauthorized)
)
