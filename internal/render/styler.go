package render

import (
	"fmt"
	"html"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// Colors used by both output formats
const (
	KnownColor   = "#32ab32"
	UnknownColor = "#ff0000"
	NativeColor  = "#010101"
	RuleColor    = "#bcbcbc"
)

// HTMLStyler writes markup for rich text views and standalone pages
type HTMLStyler struct{}

// NewHTMLStyler creates a new HTML styler
func NewHTMLStyler() *HTMLStyler {
	return &HTMLStyler{}
}

func (s *HTMLStyler) Colorize(text string, known bool) string {
	color := UnknownColor
	if known {
		color = KnownColor
	}
	return fmt.Sprintf(`<span style="color:%s">%s</span>`, color, s.Escape(text))
}

func (s *HTMLStyler) Native(line string) string {
	return fmt.Sprintf(`<span style="font-weight: bold; color:%s">%s</span>`, NativeColor, line)
}

func (s *HTMLStyler) Rule(count int) string {
	if count <= 0 {
		return ""
	}
	return fmt.Sprintf(`<span style="color:%s">%s</span>`, RuleColor, strings.Repeat(string(RuleGlyph), count))
}

// Escape masks whitespace so the browser keeps the column layout
func (s *HTMLStyler) Escape(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r == '\t':
			b.WriteString("&nbsp;&nbsp;&nbsp;&nbsp;")
		case r == '\n':
			b.WriteString("<br>")
		case unicode.IsSpace(r):
			b.WriteString("&nbsp;")
		default:
			b.WriteString(html.EscapeString(string(r)))
		}
	}
	return b.String()
}

func (s *HTMLStyler) LineBreak() string {
	return "<br>"
}

// TerminalStyler writes ANSI styled text for terminals
type TerminalStyler struct {
	known   lipgloss.Style
	unknown lipgloss.Style
	native  lipgloss.Style
	rule    lipgloss.Style
}

// NewTerminalStyler creates a new terminal styler
func NewTerminalStyler() *TerminalStyler {
	return &TerminalStyler{
		known:   lipgloss.NewStyle().Foreground(lipgloss.Color(KnownColor)),
		unknown: lipgloss.NewStyle().Foreground(lipgloss.Color(UnknownColor)),
		native:  lipgloss.NewStyle().Bold(true),
		rule:    lipgloss.NewStyle().Foreground(lipgloss.Color(RuleColor)),
	}
}

func (s *TerminalStyler) Colorize(text string, known bool) string {
	if known {
		return s.known.Render(s.Escape(text))
	}
	return s.unknown.Render(s.Escape(text))
}

func (s *TerminalStyler) Native(line string) string {
	if line == "" {
		return ""
	}
	return s.native.Render(line)
}

func (s *TerminalStyler) Rule(count int) string {
	if count <= 0 {
		return ""
	}
	return s.rule.Render(strings.Repeat(string(RuleGlyph), count))
}

// Escape expands tabs so both sides keep the same cell widths
func (s *TerminalStyler) Escape(text string) string {
	return strings.ReplaceAll(text, "\t", "    ")
}

func (s *TerminalStyler) LineBreak() string {
	return "\n"
}
