package skydata

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedPeople = errors.New("people response has no roster")
	ErrMalformedBody   = errors.New("body response has no english name")
	ErrBodyMismatch    = errors.New("body response is for a different body")
)

// StatusError is returned when a source answers with a non-200 status.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.URL, e.Code)
}
