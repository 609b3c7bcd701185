package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		in     string
		want   ShapeKind
		wantOK bool
	}{
		{"cube", Cube, true},
		{"Sphere", Sphere, true},
		{" cylinder ", Cylinder, true},
		{"plane", ShapeUnknown, false},
		{"", ShapeUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseShape(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShapeStringRoundTrip(t *testing.T) {
	for _, k := range Shapes {
		got, ok := ParseShape(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "unknown", ShapeUnknown.String())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#ff0000", want: Color{R: 255}},
		{in: "#00FF7f", want: Color{G: 255, B: 127}},
		{in: "#0f0", want: Color{G: 255}},
		{in: "blue", want: Color{B: 255}},
		{in: "SteelBlue", want: Color{R: 70, G: 130, B: 180}},
		{in: "#12345", wantErr: true},
		{in: "#gg0000", wantErr: true},
		{in: "not-a-color", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultColorIsRed(t *testing.T) {
	assert.Equal(t, "#ff0000", DefaultColor.Hex())
}
