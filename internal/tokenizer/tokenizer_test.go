package tokenizer

import (
	"testing"

	"thesaurus/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []domain.Token
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:  "basic sentence",
			input: "Hund bellt.",
			expected: []domain.Token{
				domain.NewWord("Hund"),
				domain.NewSeparator(" "),
				domain.NewWord("bellt"),
				domain.NewSeparator("."),
			},
		},
		{
			name:  "leading separator",
			input: "  Hund",
			expected: []domain.Token{
				domain.NewSeparator("  "),
				domain.NewWord("Hund"),
			},
		},
		{
			name:  "word chars inside words",
			input: "l'homme e-mail",
			expected: []domain.Token{
				domain.NewWord("l'homme"),
				domain.NewSeparator(" "),
				domain.NewWord("e-mail"),
			},
		},
		{
			name:  "digits and punctuation are separators",
			input: "Hund, 42 Katzen!",
			expected: []domain.Token{
				domain.NewWord("Hund"),
				domain.NewSeparator(", 42 "),
				domain.NewWord("Katzen"),
				domain.NewSeparator("!"),
			},
		},
		{
			name:  "newline separator",
			input: "Hund\nbellt",
			expected: []domain.Token{
				domain.NewWord("Hund"),
				domain.NewSeparator("\n"),
				domain.NewWord("bellt"),
			},
		},
		{
			name:  "unicode letters",
			input: "Straße über",
			expected: []domain.Token{
				domain.NewWord("Straße"),
				domain.NewSeparator(" "),
				domain.NewWord("über"),
			},
		},
		{
			name:  "whitespace only",
			input: " \t\n",
			expected: []domain.Token{
				domain.NewSeparator(" \t\n"),
			},
		},
	}

	tok := New(DefaultWordChars)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tok.Tokenize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTokenizer_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"\n\n",
		"Hund bellt.",
		"Der Hund bellt.\nDie Katze miaut!\n",
		"Привет, мир — это тест",
		"日本語のテキスト、句読点。",
		"emoji 🐕 and tabs\tinside",
		"invalid \xff\xfe bytes",
		"ends with word chars -'",
	}

	tok := New(DefaultWordChars)

	for _, input := range inputs {
		tokens := tok.Tokenize(input)
		assert.Equal(t, input, domain.JoinTokens(tokens), "round trip of %q", input)
		assert.Equal(t, tokens, tok.Tokenize(input), "repeated tokenization of %q", input)

		for i := 1; i < len(tokens); i++ {
			assert.NotEqual(t, tokens[i-1].Kind, tokens[i].Kind, "adjacent tokens of %q share a kind", input)
		}
		for _, token := range tokens {
			assert.NotEmpty(t, token.Text)
		}
	}
}

func TestTokenizer_ConfigurableWordChars(t *testing.T) {
	withHyphen := New("-")
	withoutHyphen := New("")

	assert.Len(t, withHyphen.Tokenize("e-mail"), 1)
	assert.Equal(t, []domain.Token{
		domain.NewWord("e"),
		domain.NewSeparator("-"),
		domain.NewWord("mail"),
	}, withoutHyphen.Tokenize("e-mail"))
}

func TestTokenizer_WordAt(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		pos      int
		expected string
	}{
		{name: "first word", text: "Hund bellt.", pos: 1, expected: "Hund"},
		{name: "word before punctuation", text: "Hund bellt.", pos: 7, expected: "bellt"},
		{name: "leading quote", text: `sagt "Hallo"`, pos: 6, expected: "Hallo"},
		{name: "position past end", text: "Hund", pos: 10, expected: "Hund"},
		{name: "on whitespace", text: "Hund  bellt", pos: 4, expected: ""},
		{name: "empty text", text: "", pos: 0, expected: ""},
	}

	tok := New(DefaultWordChars)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tok.WordAt(tt.text, tt.pos))
		})
	}
}

func TestTokenizer_TrimSeparators(t *testing.T) {
	tok := New(DefaultWordChars)

	assert.Equal(t, "Hund", tok.TrimSeparators(`"Hund!"`))
	assert.Equal(t, "l'homme", tok.TrimSeparators("(l'homme)"))
	assert.Equal(t, "", tok.TrimSeparators("..."))
}
