// Package errors provides structured error handling for the styling engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid theme or control configuration.
	KindConfig
	// KindResolution indicates a style resolution failure, such as an
	// incomplete default layer.
	KindResolution
	// KindAnimation indicates an animation driver error.
	KindAnimation
	// KindInteraction indicates an input-event handling error.
	KindInteraction
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindResolution:
		return "resolution"
	case KindAnimation:
		return "animation"
	case KindInteraction:
		return "interaction"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the styling engine.
type Error struct {
	// Op is the operation that failed (e.g., "theme.LoadConfig").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs a structured error for the given operation and kind.
func New(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Newf constructs a structured error wrapping a formatted message.
func Newf(op string, kind ErrorKind, format string, args ...any) *Error {
	return New(op, kind, fmt.Errorf(format, args...))
}

// ErrorHandler receives errors reported by the styling engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
}
