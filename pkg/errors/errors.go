// Package errors provides structured error handling for the neumorphic
// library. The render path itself never errors; these types cover the
// edges that can fail: preset loading, image encoding, and backend setup.
package errors

import "fmt"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a preset or configuration loading error.
	KindConfig
	// KindEncode indicates an image encoding or output error.
	KindEncode
	// KindRender indicates a rendering backend error.
	KindRender
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindEncode:
		return "encode"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// Error represents a structured error with the failing operation attached.
type Error struct {
	// Op is the operation that failed (e.g., "theme.LoadPresets").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E wraps err with the operation name and kind. Returns nil if err is nil.
func E(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}
