// Package geometry computes the column bounding boxes for a two-column
// bilingual page layout. The model is a fixed bilateral split with a gutter
// gap, not a generalized column detector: it assumes a single known document
// template with consistent side margins and a consistent gutter.
package geometry

import (
	"fmt"

	"gazette-extractor/internal/types"
)

// Resolver derives per-column bounding boxes from page dimensions.
// It is stateless apart from its margin configuration and safe for
// concurrent use.
type Resolver struct {
	margins types.LayoutMargins
}

// NewResolver creates a Resolver with the given margins. Zero-valued
// margins are replaced with the template defaults.
func NewResolver(margins types.LayoutMargins) *Resolver {
	if margins == (types.LayoutMargins{}) {
		margins = types.DefaultMargins()
	}
	return &Resolver{margins: margins}
}

// Margins returns the margin configuration in effect
func (r *Resolver) Margins() types.LayoutMargins {
	return r.margins
}

// Resolve computes the bounding box for one column of a page.
//
// The returned box excludes the header band (top margin), the footer band
// (bottom margin), the outer page margin, and half of the inter-column
// gutter; the gutter gap keeps glyphs from the far column from bleeding
// into the near one.
//
// Non-positive page dimensions yield INVALID_GEOMETRY. A page too narrow
// to hold both columns (the box collapses or inverts) yields
// DEGENERATE_REGION; callers treat the page as unextractable for that side
// rather than failing the run.
func (r *Resolver) Resolve(pageWidth, pageHeight float64, side types.ColumnSide) (types.BoundingBox, error) {
	if pageWidth <= 0 || pageHeight <= 0 {
		return types.BoundingBox{}, types.NewAppError(types.ErrInvalidGeometry,
			fmt.Sprintf("non-positive page dimensions: %.2f x %.2f", pageWidth, pageHeight), nil)
	}

	box := types.BoundingBox{
		Top:    r.margins.Top,
		Bottom: pageHeight - r.margins.Bottom,
	}

	mid := pageWidth / 2
	switch side {
	case types.ColumnPrimary:
		box.Left = r.margins.Side
		box.Right = mid - r.margins.GutterHalf
	case types.ColumnSecondary:
		box.Left = mid + r.margins.GutterHalf
		box.Right = pageWidth - r.margins.Side
	default:
		return types.BoundingBox{}, types.NewAppError(types.ErrInvalidInput,
			fmt.Sprintf("unknown column side: %q", side), nil)
	}

	if !box.Valid() {
		return types.BoundingBox{}, types.NewAppErrorWithDetails(types.ErrDegenerateRegion,
			fmt.Sprintf("degenerate %s column box for %.2f x %.2f page", side, pageWidth, pageHeight),
			fmt.Sprintf("box: left=%.2f top=%.2f right=%.2f bottom=%.2f", box.Left, box.Top, box.Right, box.Bottom),
			nil)
	}

	return box, nil
}
