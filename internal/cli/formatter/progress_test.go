package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name  string
		frac  float64
		width int
		want  string
	}{
		{"half", 0.5, 10, "█████░░░░░"},
		{"full", 1, 4, "████"},
		{"empty", 0, 4, "░░░░"},
		{"clamped above", 2, 4, "████"},
		{"clamped below", -1, 4, "░░░░"},
		{"rounds to nearest", 0.26, 10, "███░░░░░░░"},
		{"minimum width", 1, 0, "██"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderBar(tt.frac, tt.width, StyleGreen)))
		})
	}
}
