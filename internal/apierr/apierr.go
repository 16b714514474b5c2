package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound(code string, err error) *Error {
	return &Error{Status: http.StatusNotFound, Code: code, Err: err}
}

func Validation(code string, err error) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Err: err}
}

// Status maps any error to an HTTP status. Non *Error values are treated
// as internal failures.
func Status(err error) int {
	var aerr *Error
	if errors.As(err, &aerr) && aerr.Status != 0 {
		return aerr.Status
	}
	return http.StatusInternalServerError
}

// Code returns the machine readable code carried by err, if any.
func Code(err error) string {
	var aerr *Error
	if errors.As(err, &aerr) {
		return aerr.Code
	}
	return ""
}
