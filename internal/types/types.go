// Package types defines core data types and enums for the gazette extractor.
package types

import "fmt"

// ColumnSide identifies one of the two language columns on a page.
// Positionally: left = primary language, right = secondary language.
type ColumnSide string

const (
	// ColumnPrimary is the left column (source language A)
	ColumnPrimary ColumnSide = "primary"
	// ColumnSecondary is the right column (source language B)
	ColumnSecondary ColumnSide = "secondary"
)

// String returns the string representation of the column side
func (s ColumnSide) String() string {
	return string(s)
}

// ParseColumnSide parses a column side name
func ParseColumnSide(v string) (ColumnSide, error) {
	switch v {
	case "primary", "left":
		return ColumnPrimary, nil
	case "secondary", "right":
		return ColumnSecondary, nil
	}
	return "", NewAppError(ErrInvalidInput, fmt.Sprintf("unknown column side: %q", v), nil)
}

// BoundingBox is a rectangle in page coordinates with the origin at the
// top-left corner. A well-formed box satisfies Left < Right and Top < Bottom.
type BoundingBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Width returns the horizontal extent of the box
func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box
func (b BoundingBox) Height() float64 {
	return b.Bottom - b.Top
}

// Valid reports whether the box has positive extent on both axes
func (b BoundingBox) Valid() bool {
	return b.Left < b.Right && b.Top < b.Bottom
}

// PageInfo describes one page of the source document.
// Index is 1-based; Width and Height are in the document's native units.
type PageInfo struct {
	Index  int     `json:"index"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LayoutMargins holds the fixed page-template offsets used to derive the
// column bounding boxes. The defaults assume a single known gazette
// template; differently formatted documents need different values.
type LayoutMargins struct {
	Top        float64 `json:"top"`         // excluded header band
	Bottom     float64 `json:"bottom"`      // excluded footer band
	Side       float64 `json:"side"`        // outer page margin
	GutterHalf float64 `json:"gutter_half"` // half of the inter-column gutter
}

// DefaultMargins returns the documented template defaults
func DefaultMargins() LayoutMargins {
	return LayoutMargins{
		Top:        50,
		Bottom:     50,
		Side:       30,
		GutterHalf: 20,
	}
}

// Config holds the application configuration
type Config struct {
	Margins          LayoutMargins `json:"margins"`
	Engine           string        `json:"engine"`            // "pdfplumber" or "ledongthuc"
	ProgressInterval int           `json:"progress_interval"` // pages between progress reports
	WorkDirectory    string        `json:"work_directory"`    // manifests, error records, logs
	LogLevel         string        `json:"log_level"`
}

// ErrorCode classifies application errors
type ErrorCode string

const (
	// ErrSourceUnreadable means the document cannot be opened at all; fatal to the run
	ErrSourceUnreadable ErrorCode = "SOURCE_UNREADABLE"
	// ErrInvalidGeometry means page dimensions are non-positive; the page is skipped
	ErrInvalidGeometry ErrorCode = "INVALID_GEOMETRY"
	// ErrDegenerateRegion means the computed column box is empty or inverted
	ErrDegenerateRegion ErrorCode = "DEGENERATE_REGION"
	// ErrExtractFailed means the collaborator failed for a specific page
	ErrExtractFailed ErrorCode = "EXTRACT_FAILED"
	// ErrOutputWrite means an output file could not be written
	ErrOutputWrite ErrorCode = "OUTPUT_WRITE_ERROR"
	// ErrConfig means the configuration could not be loaded or saved
	ErrConfig ErrorCode = "CONFIG_ERROR"
	// ErrInvalidInput means a caller-supplied argument is unusable
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrInternal means an unexpected internal failure
	ErrInternal ErrorCode = "INTERNAL_ERROR"
)

// AppError is the application error type carrying a code and optional cause
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface for AppError
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError with the given code, message, and optional cause
func NewAppError(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewAppErrorWithDetails creates a new AppError with details
func NewAppErrorWithDetails(code ErrorCode, message, details string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

// CodeOf returns the ErrorCode carried by err, or ErrInternal for
// errors that are not AppErrors.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return ErrInternal
}
