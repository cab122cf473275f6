package radiobrowser

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectoryUnavailable indicates that every candidate host failed a request
	ErrDirectoryUnavailable = errors.New("station directory unavailable")

	// ErrUnexpectedStatus indicates a host answered with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected status from station directory")
)

// UnavailableError is returned when a fetch exhausted its trial order
type UnavailableError struct {
	Hosts int
	Last  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("all %d radio-browser hosts failed: %v", e.Hosts, e.Last)
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrDirectoryUnavailable
}

func (e *UnavailableError) Unwrap() error {
	return e.Last
}

// StatusError carries the status code of a rejected request
type StatusError struct {
	Host       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Host, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
