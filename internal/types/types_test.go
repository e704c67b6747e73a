package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumnSide(t *testing.T) {
	tests := []struct {
		input    string
		expected ColumnSide
		wantErr  bool
	}{
		{"primary", ColumnPrimary, false},
		{"left", ColumnPrimary, false},
		{"secondary", ColumnSecondary, false},
		{"right", ColumnSecondary, false},
		{"middle", "", true},
		{"", "", true},
		{"PRIMARY", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			side, err := ParseColumnSide(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ErrInvalidInput, CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, side)
		})
	}
}

func TestBoundingBox(t *testing.T) {
	box := BoundingBox{Left: 30, Top: 50, Right: 280, Bottom: 750}
	assert.Equal(t, 250.0, box.Width())
	assert.Equal(t, 700.0, box.Height())
	assert.True(t, box.Valid())

	assert.False(t, BoundingBox{Left: 280, Top: 50, Right: 30, Bottom: 750}.Valid())
	assert.False(t, BoundingBox{Left: 30, Top: 750, Right: 280, Bottom: 50}.Valid())
	assert.False(t, BoundingBox{}.Valid())
}

func TestAppError(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := NewAppError(ErrExtractFailed, "page 7 failed", cause)

	assert.Equal(t, "[EXTRACT_FAILED] page 7 failed: underlying", err.Error())
	assert.True(t, errors.Is(err, cause))

	plain := NewAppError(ErrInvalidGeometry, "zero-width page", nil)
	assert.Equal(t, "[INVALID_GEOMETRY] zero-width page", plain.Error())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
	assert.Equal(t, ErrDegenerateRegion, CodeOf(NewAppError(ErrDegenerateRegion, "inverted box", nil)))
	assert.Equal(t, ErrInternal, CodeOf(fmt.Errorf("plain error")))
}

func TestDefaultMargins(t *testing.T) {
	m := DefaultMargins()
	assert.Equal(t, 50.0, m.Top)
	assert.Equal(t, 50.0, m.Bottom)
	assert.Equal(t, 30.0, m.Side)
	assert.Equal(t, 20.0, m.GutterHalf)
}
