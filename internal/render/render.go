// Package render turns resolved tokens into an interlinear view: every
// physical line of foreign text is followed by the best known native
// translation of each word, column aligned by padding the shorter side.
package render

import (
	"strings"
	"unicode/utf8"

	"thesaurus/internal/domain"
)

// RuleGlyph is repeated to draw the separator between line pairs
const RuleGlyph = '⎯'

// WidthMeasurer measures plain text in the unit the output is displayed in
type WidthMeasurer interface {
	Measure(text string) float64
	RuleGlyphWidth() float64
}

// Styler produces the markup of one output format
type Styler interface {
	// Colorize marks text as known or unknown
	Colorize(text string, known bool) string
	// Native emphasizes a complete native line
	Native(line string) string
	// Rule draws count rule glyphs
	Rule(count int) string
	// Escape converts plain text to output-safe text
	Escape(text string) string
	LineBreak() string
}

// Renderer builds interlinear markup from resolved tokens
type Renderer struct {
	measurer WidthMeasurer
	styler   Styler
}

// New creates a new renderer
func New(measurer WidthMeasurer, styler Styler) *Renderer {
	return &Renderer{
		measurer: measurer,
		styler:   styler,
	}
}

// Styler returns the styler the renderer writes markup with
func (r *Renderer) Styler() Styler {
	return r.styler
}

// lineBuilder accumulates the two sides of the current physical line
type lineBuilder struct {
	foreignMarkup strings.Builder
	nativeMarkup  strings.Builder
	foreignText   strings.Builder
	nativeText    strings.Builder
}

func (b *lineBuilder) reset() {
	b.foreignMarkup.Reset()
	b.nativeMarkup.Reset()
	b.foreignText.Reset()
	b.nativeText.Reset()
}

// Render lays out tokens line by line and counts known and unknown words.
// It panics with a *domain.Error of kind KindAlignmentInvariant if the
// foreign and native sides end up with different line counts.
func (r *Renderer) Render(tokens []domain.Token) domain.Analysis {
	var (
		stats   domain.Statistics
		lines   []domain.RenderLine
		foreign []string
		native  []string
		cur     lineBuilder
	)

	closeLine := func() {
		line := domain.RenderLine{
			ForeignMarkup: cur.foreignMarkup.String(),
			NativeMarkup:  cur.nativeMarkup.String(),
			ForeignText:   cur.foreignText.String(),
			NativeText:    cur.nativeText.String(),
		}
		line.ForeignWidth = r.measurer.Measure(line.ForeignText)
		line.NativeWidth = r.measurer.Measure(line.NativeText)

		lines = append(lines, line)
		foreign = append(foreign, line.ForeignMarkup)
		native = append(native, line.NativeMarkup)
		cur.reset()
	}

	for _, token := range tokens {
		if token.IsWord() {
			if token.IsKnown() {
				stats.Known++
			} else {
				stats.Unknown++
			}
			r.appendWord(&cur, token)
			continue
		}

		for i, part := range strings.Split(token.Text, "\n") {
			if i > 0 {
				closeLine()
			}
			r.appendBoth(&cur, part)
		}
	}
	closeLine()

	return domain.Analysis{
		Markup: r.merge(foreign, native, lines),
		Lines:  lines,
		Stats:  stats,
	}
}

func (r *Renderer) appendWord(cur *lineBuilder, token domain.Token) {
	word := token.Text
	translation, known := token.BestTranslation()
	wordLen := utf8.RuneCountInString(word)

	cur.foreignMarkup.WriteString(r.styler.Colorize(word, known))
	cur.foreignText.WriteString(word)

	if !known {
		r.appendNative(cur, blanks(wordLen))
		return
	}

	r.appendNative(cur, translation)

	translationLen := utf8.RuneCountInString(translation)
	if translationLen < wordLen {
		r.appendNative(cur, blanks(wordLen-translationLen))
	} else {
		r.appendForeign(cur, blanks(translationLen-wordLen))
	}
}

func (r *Renderer) appendForeign(cur *lineBuilder, text string) {
	if text == "" {
		return
	}
	cur.foreignMarkup.WriteString(r.styler.Escape(text))
	cur.foreignText.WriteString(text)
}

func (r *Renderer) appendNative(cur *lineBuilder, text string) {
	if text == "" {
		return
	}
	cur.nativeMarkup.WriteString(r.styler.Escape(text))
	cur.nativeText.WriteString(text)
}

func (r *Renderer) appendBoth(cur *lineBuilder, text string) {
	r.appendForeign(cur, text)
	r.appendNative(cur, text)
}

// merge joins the line pairs, separating consecutive pairs with a rule
func (r *Renderer) merge(foreign, native []string, lines []domain.RenderLine) string {
	if len(foreign) != len(native) {
		panic(domain.NewAlignmentError(len(foreign), len(native)))
	}

	br := r.styler.LineBreak()
	var b strings.Builder
	for i := range foreign {
		b.WriteString(foreign[i])
		b.WriteString(br)
		b.WriteString(r.styler.Native(native[i]))

		if i != len(foreign)-1 {
			b.WriteString(br)
			b.WriteString(r.styler.Rule(r.ruleCount(lines[i].MaxWidth())))
			b.WriteString(br)
		}
	}
	return b.String()
}

// ruleCount returns how many rule glyphs span width
func (r *Renderer) ruleCount(width float64) int {
	if width <= 0 {
		return 0
	}
	glyph := r.measurer.RuleGlyphWidth()
	if glyph <= 0 {
		glyph = 1
	}
	return int(width/glyph) + 1
}

func blanks(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
