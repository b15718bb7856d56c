package domain

import (
	"errors"
	"fmt"
)

// NetworkError means the request never produced a response (DNS, refused, timeout).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error requesting %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a response whose status is outside the 2xx range.
type HTTPError struct {
	URL    string
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// EmptyDataError is a successful response that carried no usable entries.
type EmptyDataError struct {
	What string
}

func (e *EmptyDataError) Error() string {
	if e.What == "" {
		return "no data received"
	}
	return fmt.Sprintf("no data received: %s", e.What)
}

// MalformedDataError is a payload missing fields the views depend on.
type MalformedDataError struct {
	Field string
	Err   error
}

func (e *MalformedDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed data: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("malformed data: missing %s", e.Field)
}

func (e *MalformedDataError) Unwrap() error { return e.Err }

// ErrorKind names the category of err for log fields.
func ErrorKind(err error) string {
	var (
		netErr       *NetworkError
		httpErr      *HTTPError
		emptyErr     *EmptyDataError
		malformedErr *MalformedDataError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &netErr):
		return "network"
	case errors.As(err, &httpErr):
		return "http"
	case errors.As(err, &emptyErr):
		return "empty"
	case errors.As(err, &malformedErr):
		return "malformed"
	default:
		return "unknown"
	}
}
