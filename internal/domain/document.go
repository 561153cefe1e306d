package domain

// Document is the text currently loaded into a reading engine
type Document struct {
	OriginalText string
	Tokens       []Token
	Pair         LanguagePair
}

// RenderLine is one physical line of interlinear output
type RenderLine struct {
	ForeignMarkup string
	NativeMarkup  string

	// Plain padded text, without markup
	ForeignText string
	NativeText  string

	ForeignWidth float64
	NativeWidth  float64
}

// MaxWidth returns the wider of the two measured sides
func (l RenderLine) MaxWidth() float64 {
	if l.NativeWidth > l.ForeignWidth {
		return l.NativeWidth
	}
	return l.ForeignWidth
}

// Analysis is the result of analyzing a document
type Analysis struct {
	Markup string
	Lines  []RenderLine
	Stats  Statistics
}
