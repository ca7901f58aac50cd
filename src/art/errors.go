package art

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a lookup step failed.
type ErrorKind int

const (
	// KindTransport means the HTTP exchange could not be completed. This includes
	// network errors, timeouts, unreadable bodies and non-2xx status codes.
	KindTransport ErrorKind = iota + 1

	// KindDecode means a response was received but its body was not the JSON
	// document the service is supposed to return.
	KindDecode

	// KindNotFound means the service answered properly but had nothing to offer
	// for the query.
	KindNotFound
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindNotFound:
		return "not-found"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinel errors matching every *ResolveError of the corresponding kind. Use them
// with errors.Is.
var (
	ErrTransport = errors.New("request failed")
	ErrDecode    = errors.New("malformed response")
	ErrNotFound  = errors.New("not found")
)

// ResolveError is returned by the resolving methods of Client.
type ResolveError struct {
	// Service is the name of the web service which was queried.
	Service string

	// Kind is the failure class.
	Kind ErrorKind

	// Err is the underlying cause. It may be nil for KindNotFound.
	Err error
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Service, e.sentinel())
	}
	return fmt.Sprintf("%s: %s: %s", e.Service, e.sentinel(), e.Err)
}

// Unwrap returns the underlying cause.
func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrNotFound) and friends work.
func (e *ResolveError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *ResolveError) sentinel() error {
	switch e.Kind {
	case KindTransport:
		return ErrTransport
	case KindDecode:
		return ErrDecode
	case KindNotFound:
		return ErrNotFound
	}
	return nil
}

// KindOf returns the kind of the first *ResolveError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var rerr *ResolveError
	if !errors.As(err, &rerr) {
		return 0, false
	}
	return rerr.Kind, true
}

func transportErr(service string, err error) error {
	return &ResolveError{Service: service, Kind: KindTransport, Err: err}
}

func decodeErr(service string, err error) error {
	return &ResolveError{Service: service, Kind: KindDecode, Err: err}
}

func notFoundErr(service string, err error) error {
	return &ResolveError{Service: service, Kind: KindNotFound, Err: err}
}
