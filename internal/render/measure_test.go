package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellMeasurer_Measure(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "empty", input: "", expected: 0},
		{name: "latin", input: "Hund", expected: 4},
		{name: "umlaut", input: "Bär", expected: 3},
		{name: "wide", input: "日本", expected: 4},
		{name: "tab", input: "\t", expected: 4},
	}

	m := NewCellMeasurer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Measure(tt.input))
		})
	}
}

func TestCellMeasurer_RuleGlyphWidth(t *testing.T) {
	assert.Greater(t, NewCellMeasurer().RuleGlyphWidth(), float64(0))
}

func TestFixedMeasurer(t *testing.T) {
	m := NewFixedMeasurer(7.5)

	assert.Equal(t, float64(30), m.Measure("Hund"))
	assert.Equal(t, 7.5, m.RuleGlyphWidth())
}
