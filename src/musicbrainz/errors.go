package musicbrainz

import (
	"errors"
	"fmt"
	"net/http"
)

// The kinds of errors returned by the Client. Returned errors are never these values
// directly. Use errors.Is for checking the kind of an error.
var (
	// ErrTransport is returned when the web service could not be reached or the
	// connection broke while reading its response.
	ErrTransport = errors.New("transport error")

	// ErrServiceUnavailable is returned when the web service says it is too busy or
	// that we are making too many requests.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRequestFailed is returned for all other unsuccessful HTTP statuses.
	ErrRequestFailed = errors.New("request failed")

	// ErrMalformedResponse is returned when a successful response could not be
	// decoded.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidQuery is returned without making any request when the arguments of
	// an operation are not valid. For example an MBID which is not well formed.
	ErrInvalidQuery = errors.New("invalid query")
)

// Error describes a failed operation. Its Kind is one of the Err* values of this
// package.
type Error struct {
	Kind error

	// Status is the HTTP status code returned by the web service. It is zero when
	// no response was received.
	Status int

	// Body is a short excerpt of the response body for unsuccessful responses.
	Body string

	// URL is the requested URL, if a request was attempted.
	URL string

	// Err is the underlying cause, if any.
	Err error

	msg string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.msg)
	}
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

// Is makes errors.Is(err, ErrNotFound) and friends work.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

func invalidQuery(format string, args ...any) error {
	return &Error{
		Kind: ErrInvalidQuery,
		msg:  fmt.Sprintf(format, args...),
	}
}

// kindForStatus maps an unsuccessful HTTP status code to an error kind.
func kindForStatus(status int) error {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return ErrRequestFailed
	}
}

// StatusError returns an error of the kind matching the HTTP `status`. It is exported
// for other clients which talk to MusicBrainz related services and want the same
// classification.
func StatusError(status int, url, body string) error {
	return &Error{
		Kind:   kindForStatus(status),
		Status: status,
		URL:    url,
		Body:   body,
	}
}

// TransportError wraps `err` as an ErrTransport.
func TransportError(url string, err error) error {
	return &Error{
		Kind: ErrTransport,
		URL:  url,
		Err:  err,
	}
}
