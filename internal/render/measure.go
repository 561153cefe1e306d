package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// CellMeasurer measures text in terminal cells
type CellMeasurer struct{}

// NewCellMeasurer creates a new cell measurer
func NewCellMeasurer() *CellMeasurer {
	return &CellMeasurer{}
}

func (m *CellMeasurer) Measure(text string) float64 {
	return float64(cells(text))
}

func (m *CellMeasurer) RuleGlyphWidth() float64 {
	return float64(runewidth.RuneWidth(RuleGlyph))
}

// FixedMeasurer approximates a monospace font of fixed glyph width
type FixedMeasurer struct {
	glyphWidth float64
}

// NewFixedMeasurer creates a measurer where one cell is glyphWidth units wide
func NewFixedMeasurer(glyphWidth float64) *FixedMeasurer {
	return &FixedMeasurer{glyphWidth: glyphWidth}
}

func (m *FixedMeasurer) Measure(text string) float64 {
	return float64(cells(text)) * m.glyphWidth
}

func (m *FixedMeasurer) RuleGlyphWidth() float64 {
	return m.glyphWidth
}

// cells counts display cells, with a tab taking four
func cells(text string) int {
	return runewidth.StringWidth(strings.ReplaceAll(text, "\t", "    "))
}
