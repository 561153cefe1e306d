// Package tokenizer splits raw foreign-language text into word and separator
// tokens. Concatenating the produced token texts always yields the input.
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"thesaurus/internal/domain"
)

// DefaultWordChars are punctuation characters treated as part of a word
const DefaultWordChars = "-'’"

// Tokenizer classifies characters as word-forming or separating
type Tokenizer struct {
	wordChars map[rune]struct{}
}

// New creates a tokenizer; wordChars lists punctuation that belongs inside words
func New(wordChars string) *Tokenizer {
	set := make(map[rune]struct{}, utf8.RuneCountInString(wordChars))
	for _, r := range wordChars {
		set[r] = struct{}{}
	}
	return &Tokenizer{wordChars: set}
}

// IsWordRune reports whether r forms part of a word
func (t *Tokenizer) IsWordRune(r rune) bool {
	if unicode.IsLetter(r) {
		return true
	}
	_, ok := t.wordChars[r]
	return ok
}

// Tokenize splits text into alternating WORD and SEPARATOR tokens
func (t *Tokenizer) Tokenize(text string) []domain.Token {
	var tokens []domain.Token
	start := 0
	inWord := false

	for i, r := range text {
		word := t.IsWordRune(r)
		if i == 0 {
			inWord = word
			continue
		}
		if word != inWord {
			tokens = append(tokens, newToken(text[start:i], inWord))
			start = i
			inWord = word
		}
	}

	if start < len(text) {
		tokens = append(tokens, newToken(text[start:], inWord))
	}

	return tokens
}

func newToken(text string, word bool) domain.Token {
	if word {
		return domain.NewWord(text)
	}
	return domain.NewSeparator(text)
}

// WordAt returns the word under the rune offset pos. The word starts after
// the previous whitespace and runs while characters are word-forming.
func (t *Tokenizer) WordAt(text string, pos int) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= len(runes) {
		pos = len(runes) - 1
	}

	start := 0
	for i := pos; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			start = i + 1
			break
		}
	}

	for start < len(runes) && !t.IsWordRune(runes[start]) && !unicode.IsSpace(runes[start]) {
		start++
	}

	end := len(runes)
	for i := start; i < len(runes); i++ {
		if !t.IsWordRune(runes[i]) {
			end = i
			break
		}
	}

	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// TrimSeparators strips characters that are not word-forming from both ends
func (t *Tokenizer) TrimSeparators(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return !t.IsWordRune(r)
	})
}
