package xfsgen

import (
	"fmt"
)

// Error types for xfsgen operations
var (
	// ErrBadMagic is returned when an input image's signature does not match
	ErrBadMagic = &ImageError{Code: "BAD_MAGIC", Message: "not an XFS image"}

	// ErrShortHeader is returned when an input is smaller than the header region
	ErrShortHeader = &ImageError{Code: "SHORT_HEADER", Message: "input shorter than superblock"}

	// ErrBadGeometry is returned when decoded superblock fields are unusable
	ErrBadGeometry = &ImageError{Code: "BAD_GEOMETRY", Message: "corrupt superblock geometry"}
)

// ImageError represents a structured error in xfsgen operations
type ImageError struct {
	Code    string                 // Error code for programmatic handling
	Message string                 // Human-readable error message
	Cause   error                  // Underlying error, if any
	Details map[string]interface{} // Additional context
}

// Error implements the error interface
func (e *ImageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	if len(e.Details) > 0 {
		return fmt.Sprintf("[%s] %s (details: %v)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *ImageError) Unwrap() error {
	return e.Cause
}

// WithCause adds a cause to the error
func (e *ImageError) WithCause(cause error) *ImageError {
	return &ImageError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   cause,
		Details: e.Details,
	}
}

// WithDetail adds a detail key-value pair to the error
func (e *ImageError) WithDetail(key string, value interface{}) *ImageError {
	details := make(map[string]interface{})
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &ImageError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Details: details,
	}
}

// NewBadMagicError creates a format error for a signature mismatch
func NewBadMagicError(got uint32) error {
	return ErrBadMagic.WithDetail("magic", fmt.Sprintf("0x%08X", got))
}

// NewShortHeaderError creates a format error for a truncated header region
func NewShortHeaderError(length int) error {
	return ErrShortHeader.
		WithDetail("length", length).
		WithDetail("required", SuperblockSize)
}

// NewBadGeometryError creates a format error for unusable superblock fields
func NewBadGeometryError(reason string) error {
	return ErrBadGeometry.WithDetail("reason", reason)
}

// IsImageError checks if an error is an ImageError
func IsImageError(err error) bool {
	_, ok := err.(*ImageError)
	return ok
}

// GetErrorCode extracts the error code from an ImageError
func GetErrorCode(err error) string {
	if imgErr, ok := err.(*ImageError); ok {
		return imgErr.Code
	}
	return ""
}
