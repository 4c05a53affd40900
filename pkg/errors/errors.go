// Package errors provides structured error reporting for the Mosaic engine.
//
// The engine itself is pure in-memory computation and has no recoverable
// failure modes; invariants are enforced by clamping rather than error
// returns. This package exists for the edges: configuration parsing and
// panics raised by collaborator callbacks (mount, unmount, shape probes),
// which are recovered and reported without corrupting engine state.
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
	// KindConfig indicates a configuration load or validation error.
	KindConfig
	// KindLayout indicates an inconsistency detected during layout.
	KindLayout
	// KindHost indicates a failure in a collaborator callback.
	KindHost
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLayout:
		return "layout"
	case KindHost:
		return "host"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// MosaicError represents a structured error in the Mosaic engine.
type MosaicError struct {
	// Op is the operation that failed (e.g., "engine.SetItems").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Key is the item key involved, if applicable.
	Key string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MosaicError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s [%s] key=%s: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MosaicError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "pool.Reconcile/mount").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MosaicError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
