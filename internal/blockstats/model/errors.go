package model

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is returned when a successful API response lacks a required field.
var ErrMalformedRecord = errors.New("malformed record")

// FieldError describes a missing or invalid field in an API response.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrMalformedRecord
}

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("get %s: unexpected status %d", e.URL, e.Code)
}
