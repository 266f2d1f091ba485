package coinavg

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrClient        = errors.New("client error")
	ErrServer        = errors.New("server error")
	ErrUnknown       = errors.New("unknown error")
	ErrNoIdentifiers = errors.New("no identifiers to average")
	ErrInvalidDays   = errors.New("days must be a positive number")
)

type (
	// NetworkError is a transport failure: DNS, refused connection, timeout.
	NetworkError struct {
		Err error
	}

	HTTPStatusError struct {
		StatusCode int
		URL        string
	}

	// DecodeError means the body could not be decoded into a MarketDocument.
	DecodeError struct {
		Err error
	}
)

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *HTTPStatusError) Error() string {
	var kind string

	switch {
	case e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError:
		kind = "Client Error"
	case e.StatusCode >= http.StatusInternalServerError:
		kind = "Server Error"
	default:
		kind = "Unexpected Status"
	}

	return fmt.Sprintf("%d %s: %s for url: %s", e.StatusCode, kind, http.StatusText(e.StatusCode), e.URL)
}

func (e *HTTPStatusError) Unwrap() error {
	switch {
	case e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError:
		return ErrClient
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrServer
	}

	return ErrUnknown
}

func (e *DecodeError) Error() string {
	return "invalid market data: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
