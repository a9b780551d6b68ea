package apierr

import "fmt"

// Error carries the HTTP status a service-level failure should surface with.
// Handlers unwrap it into the {message} envelope; only the message string
// crosses the API boundary.
type Error struct {
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, err error) *Error {
	return &Error{Status: status, Err: err}
}
