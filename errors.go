package pubchem

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrEmptyProperties is returned when a property request names no properties.
	// It is raised while building the request, before anything is sent.
	ErrEmptyProperties = errors.New("pubchem: property list is empty")

	// ErrNotFound is returned when PubChem has no record, or the record lacks
	// the requested property. A [RequestError] for a 404 also matches it.
	ErrNotFound = errors.New("pubchem: not found")
)

// IdentifierError reports an identifier that cannot be sent upstream.
type IdentifierError struct {
	Namespace Namespace
	Value     string
	Reason    string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("pubchem: invalid %s identifier %q: %s", e.Namespace, e.Value, e.Reason)
}

// FaultKind classifies a PUG REST fault code.
type FaultKind int

const (
	FaultUnknown FaultKind = iota
	FaultBadRequest
	FaultNotFound
	FaultNotAllowed
	FaultTimeout
	FaultServerBusy
	FaultUnimplemented
	FaultServerError
)

var faultKinds = map[string]FaultKind{
	"PUGREST.BadRequest":    FaultBadRequest,
	"PUGREST.NotFound":      FaultNotFound,
	"PUGREST.NotAllowed":    FaultNotAllowed,
	"PUGREST.Timeout":       FaultTimeout,
	"PUGREST.ServerBusy":    FaultServerBusy,
	"PUGREST.Unimplemented": FaultUnimplemented,
	"PUGREST.ServerError":   FaultServerError,
}

func (k FaultKind) String() string {
	switch k {
	case FaultBadRequest:
		return "bad request"
	case FaultNotFound:
		return "not found"
	case FaultNotAllowed:
		return "not allowed"
	case FaultTimeout:
		return "timeout"
	case FaultServerBusy:
		return "server busy"
	case FaultUnimplemented:
		return "unimplemented"
	case FaultServerError:
		return "server error"
	default:
		return "unknown error"
	}
}

// Fault is the error document PUG REST returns alongside a failure status.
type Fault struct {
	Code    string   `json:"Code"`
	Message string   `json:"Message"`
	Details []string `json:"Details,omitempty"`
}

func (f Fault) Kind() FaultKind {
	return faultKinds[f.Code]
}

// RequestError is returned when the request could not be completed: either
// the transport failed (StatusCode is 0) or the server answered with a
// non-2xx status.
type RequestError struct {
	URL        string
	StatusCode int
	// Fault is set when the error body could be decoded.
	Fault *Fault
	Err   error
}

func (e *RequestError) Error() string {
	var b strings.Builder
	b.WriteString("pubchem: GET ")
	b.WriteString(e.URL)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Fault != nil {
		fmt.Fprintf(&b, ": %s: %s", e.Fault.Kind(), e.Fault.Message)
		if len(e.Fault.Details) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(e.Fault.Details, "; "))
		}
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) Is(target error) bool {
	if target != ErrNotFound {
		return false
	}
	if e.Fault != nil && e.Fault.Kind() == FaultNotFound {
		return true
	}
	return e.StatusCode == http.StatusNotFound
}

// ParseError is returned when a successful response does not have the
// expected shape.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pubchem: parse %s response: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
