// Package source is the boundary to the external PDF rendering collaborator.
// It exposes the document as a page sequence that can report its geometry
// and extract raw text confined to a bounding region, behind two
// interchangeable backends.
package source

import (
	"fmt"
	"os"

	"gazette-extractor/internal/types"
)

// Engine selects the extraction backend
type Engine string

const (
	// EnginePDFPlumber crops the page and extracts text from the cropped
	// region (the default)
	EnginePDFPlumber Engine = "pdfplumber"
	// EngineLedongthuc extracts row-positioned text and filters it to the
	// region by coordinates
	EngineLedongthuc Engine = "ledongthuc"
)

// ParseEngine parses an engine name; empty selects the default.
func ParseEngine(v string) (Engine, error) {
	switch v {
	case "", string(EnginePDFPlumber):
		return EnginePDFPlumber, nil
	case string(EngineLedongthuc):
		return EngineLedongthuc, nil
	}
	return "", types.NewAppError(types.ErrInvalidInput, fmt.Sprintf("unknown engine: %q", v), nil)
}

// Document is an open source document. Pages are visited 1-indexed and
// strictly sequentially; Close releases the underlying file handles.
type Document interface {
	// PageCount returns the total number of pages
	PageCount() int
	// Page returns the page with the given 1-based number
	Page(num int) (Page, error)
	// Close releases resources associated with the document
	Close() error
}

// Page is a single page of the source document
type Page interface {
	// Number returns the 1-based page number
	Number() int
	// Width returns the page width in native units
	Width() float64
	// Height returns the page height in native units
	Height() float64
	// ExtractRegion returns the raw text confined to the given box.
	// An empty string with a nil error is a valid outcome (blank region).
	ExtractRegion(box types.BoundingBox) (string, error)
}

// Open opens the document at path with the selected engine. A missing or
// unreadable file is fatal to the whole run and reported as
// SOURCE_UNREADABLE before any page is processed.
func Open(path string, engine Engine) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, types.NewAppError(types.ErrSourceUnreadable,
			fmt.Sprintf("cannot access source document: %s", path), err)
	}
	if info.IsDir() {
		return nil, types.NewAppError(types.ErrSourceUnreadable,
			fmt.Sprintf("source path is a directory: %s", path), nil)
	}

	switch engine {
	case EngineLedongthuc:
		return openLedongthuc(path)
	case EnginePDFPlumber, "":
		return openPlumber(path)
	}
	return nil, types.NewAppError(types.ErrInvalidInput, fmt.Sprintf("unknown engine: %q", engine), nil)
}

// safeExtract invokes fn and converts a collaborator panic into an
// EXTRACT_FAILED error. PDF parsers panic on malformed page content, and
// one malformed page must not abort the run.
func safeExtract(pageNum int, fn func() string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = types.NewAppError(types.ErrExtractFailed,
				fmt.Sprintf("extraction panicked on page %d: %v", pageNum, r), nil)
		}
	}()
	return fn(), nil
}
