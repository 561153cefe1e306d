package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_BestTranslation(t *testing.T) {
	tests := []struct {
		name         string
		token        Token
		expected     string
		expectedOK   bool
		expectedKnow bool
	}{
		{
			name:         "word with translations",
			token:        Token{Text: "Hund", Kind: KindWord, Translations: []string{"dog", "hound"}},
			expected:     "dog",
			expectedOK:   true,
			expectedKnow: true,
		},
		{
			name:         "word without translations",
			token:        NewWord("bellt"),
			expected:     "",
			expectedOK:   false,
			expectedKnow: false,
		},
		{
			name:         "separator",
			token:        NewSeparator(" "),
			expected:     "",
			expectedOK:   false,
			expectedKnow: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, ok := tt.token.BestTranslation()
			assert.Equal(t, tt.expected, best)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedKnow, tt.token.IsKnown())
		})
	}
}

func TestJoinTokens(t *testing.T) {
	tokens := []Token{NewWord("Hund"), NewSeparator(" "), NewWord("bellt"), NewSeparator(".")}

	assert.Equal(t, "Hund bellt.", JoinTokens(tokens))
	assert.Equal(t, "", JoinTokens(nil))
	assert.Equal(t, 2, CountWords(tokens))
}

func TestTokenKind_String(t *testing.T) {
	assert.Equal(t, "WORD", KindWord.String())
	assert.Equal(t, "SEPARATOR", KindSeparator.String())
}
