package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gazette-extractor/internal/types"
)

func TestResolve_DefaultMargins(t *testing.T) {
	r := NewResolver(types.DefaultMargins())

	tests := []struct {
		name     string
		width    float64
		height   float64
		side     types.ColumnSide
		expected types.BoundingBox
	}{
		{
			name:     "primary column on letter-sized page",
			width:    600,
			height:   800,
			side:     types.ColumnPrimary,
			expected: types.BoundingBox{Left: 30, Top: 50, Right: 280, Bottom: 750},
		},
		{
			name:     "secondary column on letter-sized page",
			width:    600,
			height:   800,
			side:     types.ColumnSecondary,
			expected: types.BoundingBox{Left: 320, Top: 50, Right: 570, Bottom: 750},
		},
		{
			name:     "primary column on A4-like page",
			width:    595.28,
			height:   841.89,
			side:     types.ColumnPrimary,
			expected: types.BoundingBox{Left: 30, Top: 50, Right: 595.28/2 - 20, Bottom: 791.89},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, err := r.Resolve(tt.width, tt.height, tt.side)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected.Left, box.Left, 0.001)
			assert.InDelta(t, tt.expected.Top, box.Top, 0.001)
			assert.InDelta(t, tt.expected.Right, box.Right, 0.001)
			assert.InDelta(t, tt.expected.Bottom, box.Bottom, 0.001)
			assert.True(t, box.Valid())
		})
	}
}

func TestResolve_InvalidGeometry(t *testing.T) {
	r := NewResolver(types.DefaultMargins())

	tests := []struct {
		name   string
		width  float64
		height float64
	}{
		{"zero width", 0, 800},
		{"zero height", 600, 0},
		{"negative width", -600, 800},
		{"negative height", 600, -800},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(tt.width, tt.height, types.ColumnPrimary)
			require.Error(t, err)
			assert.Equal(t, types.ErrInvalidGeometry, types.CodeOf(err))
		})
	}
}

func TestResolve_DegenerateRegion(t *testing.T) {
	r := NewResolver(types.DefaultMargins())

	// Pathologically narrow page: half width minus the gutter falls left
	// of the side margin, so the column collapses.
	_, err := r.Resolve(90, 800, types.ColumnPrimary)
	require.Error(t, err)
	assert.Equal(t, types.ErrDegenerateRegion, types.CodeOf(err))

	_, err = r.Resolve(90, 800, types.ColumnSecondary)
	require.Error(t, err)
	assert.Equal(t, types.ErrDegenerateRegion, types.CodeOf(err))

	// Too short: header and footer bands swallow the whole page
	_, err = r.Resolve(600, 80, types.ColumnPrimary)
	require.Error(t, err)
	assert.Equal(t, types.ErrDegenerateRegion, types.CodeOf(err))
}

func TestResolve_UnknownSide(t *testing.T) {
	r := NewResolver(types.DefaultMargins())

	_, err := r.Resolve(600, 800, types.ColumnSide("middle"))
	require.Error(t, err)
	assert.Equal(t, types.ErrInvalidInput, types.CodeOf(err))
}

// Columns never overlap: for every usable page size the primary column
// ends left of where the secondary column begins, with the full gutter
// between them.
func TestResolve_ColumnsNeverOverlap(t *testing.T) {
	r := NewResolver(types.DefaultMargins())

	for width := 120.0; width <= 2000; width += 7.5 {
		for _, height := range []float64{110, 400, 841.89, 1200} {
			primary, err := r.Resolve(width, height, types.ColumnPrimary)
			require.NoError(t, err, "width=%v height=%v", width, height)
			secondary, err := r.Resolve(width, height, types.ColumnSecondary)
			require.NoError(t, err, "width=%v height=%v", width, height)

			assert.Less(t, primary.Right, secondary.Left,
				"columns overlap at width=%v", width)
			assert.GreaterOrEqual(t, secondary.Left-primary.Right, 40.0,
				"gutter gap below 40 units at width=%v", width)
		}
	}
}

func TestResolve_CustomMargins(t *testing.T) {
	r := NewResolver(types.LayoutMargins{Top: 10, Bottom: 20, Side: 5, GutterHalf: 2})

	box, err := r.Resolve(200, 300, types.ColumnPrimary)
	require.NoError(t, err)
	assert.Equal(t, types.BoundingBox{Left: 5, Top: 10, Right: 98, Bottom: 280}, box)

	box, err = r.Resolve(200, 300, types.ColumnSecondary)
	require.NoError(t, err)
	assert.Equal(t, types.BoundingBox{Left: 102, Top: 10, Right: 195, Bottom: 280}, box)
}

func TestNewResolver_ZeroMarginsFallBackToDefaults(t *testing.T) {
	r := NewResolver(types.LayoutMargins{})
	assert.Equal(t, types.DefaultMargins(), r.Margins())
}

// Resolve is pure: same inputs, same box, no state between calls
func TestResolve_Deterministic(t *testing.T) {
	r := NewResolver(types.DefaultMargins())

	first, err := r.Resolve(612, 792, types.ColumnSecondary)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := r.Resolve(612, 792, types.ColumnSecondary)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
