package constants

import (
	"fmt"
	"net/http"
)

// CodedError carries the http status code the api layer should answer with.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

// Invalidf builds a 400-coded validation error.
func Invalidf(format string, args ...any) error {
	return &CodedError{code: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

var (
	ErrDBNotFound       = NewCodedError(http.StatusNotFound, "not found")
	ErrInvalidDate      = NewCodedError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrEndBeforeStart   = NewCodedError(http.StatusBadRequest, "end date is before start date")
	ErrInvalidMonthKey  = NewCodedError(http.StatusBadRequest, "month must be between 01 and 12")
	ErrUnknownReason    = NewCodedError(http.StatusBadRequest, "unknown decline reason")
	ErrEmptyUpload      = NewCodedError(http.StatusBadRequest, "uploaded relation contains no records")
)
