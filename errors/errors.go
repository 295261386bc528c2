// Package errors provides error types and utilities shared by the renderkit packages.
package errors

import (
	"errors"
	"fmt"
)

// Kind represents the category of error
type Kind string

const (
	// KindCache represents cache lifecycle errors
	KindCache Kind = "cache"
	// KindValidation represents rejected arguments
	KindValidation Kind = "validation"
	// KindConfiguration represents invalid component configuration
	KindConfiguration Kind = "configuration"
)

// Common error values
var (
	// Cache errors
	ErrCacheClosed = errors.New("cache is closed")
	ErrInvalidKey  = errors.New("invalid key")

	// Argument errors
	ErrInvalidTTL       = errors.New("invalid TTL value")
	ErrTTLTooShort      = errors.New("TTL value is too short")
	ErrTTLTooLong       = errors.New("TTL value is too long")
	ErrInvalidChunkSize = errors.New("chunk size must be greater than 0")

	// Configuration errors
	ErrInvalidExtent = errors.New("item extent must be greater than 0")
	ErrInvalidDelay  = errors.New("delay must not be negative")
)

// OpError represents a failed renderkit operation
type OpError struct {
	Op   string
	Key  any
	Err  error
	Kind Kind
}

// kindOf determines the error kind based on the error value
func kindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrCacheClosed) || errors.Is(err, ErrInvalidKey):
		return KindCache
	case errors.Is(err, ErrInvalidTTL) || errors.Is(err, ErrTTLTooShort) ||
		errors.Is(err, ErrTTLTooLong) || errors.Is(err, ErrInvalidChunkSize):
		return KindValidation
	case errors.Is(err, ErrInvalidExtent) || errors.Is(err, ErrInvalidDelay):
		return KindConfiguration
	default:
		return KindValidation
	}
}

// Error implements the error interface
func (e *OpError) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("%s: %s: key=%v: %v", e.Kind, e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *OpError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches the receiver
func (e *OpError) Is(target error) bool {
	t, ok := target.(*OpError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Op == t.Op && errors.Is(e.Err, t.Err)
}

// New creates a new OpError with an explicit kind
func New(kind Kind, op string, key any, err error) error {
	return &OpError{Kind: kind, Op: op, Key: key, Err: err}
}

// Wrap wraps an error with operation context
func Wrap(op string, key any, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Kind: kindOf(err), Op: op, Key: key, Err: err}
}

// IsOpError checks if an error is an OpError
func IsOpError(err error) bool {
	var oe *OpError
	return errors.As(err, &oe)
}

// KindOf returns the kind of an OpError, or the zero Kind otherwise
func KindOf(err error) Kind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

// IsValidation checks if an error is a rejected-argument error
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsConfiguration checks if an error is an invalid-configuration error
func IsConfiguration(err error) bool {
	return KindOf(err) == KindConfiguration
}

// IsInvalidTTL checks if the error is an invalid TTL error
func IsInvalidTTL(err error) bool {
	return errors.Is(err, ErrInvalidTTL)
}

// IsCacheClosed checks if the error is a cache closed error
func IsCacheClosed(err error) bool {
	return errors.Is(err, ErrCacheClosed)
}
