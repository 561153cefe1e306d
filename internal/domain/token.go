package domain

// TokenKind classifies a run of text produced by the tokenizer
type TokenKind int

const (
	KindWord TokenKind = iota
	KindSeparator
)

// String returns the kind name
func (k TokenKind) String() string {
	switch k {
	case KindWord:
		return "WORD"
	case KindSeparator:
		return "SEPARATOR"
	default:
		return "UNKNOWN"
	}
}

// Token is a contiguous run of word-forming or separator characters.
// Translations are in preference order; Translations[0] is the best translation.
type Token struct {
	Text         string
	Kind         TokenKind
	Translations []string
}

// NewWord creates a WORD token without translations
func NewWord(text string) Token {
	return Token{Text: text, Kind: KindWord}
}

// NewSeparator creates a SEPARATOR token
func NewSeparator(text string) Token {
	return Token{Text: text, Kind: KindSeparator}
}

// IsWord reports whether the token is a word
func (t Token) IsWord() bool {
	return t.Kind == KindWord
}

// IsKnown reports whether a word has at least one translation
func (t Token) IsKnown() bool {
	return t.IsWord() && len(t.Translations) > 0
}

// BestTranslation returns the preferred translation, if any
func (t Token) BestTranslation() (string, bool) {
	if len(t.Translations) == 0 {
		return "", false
	}
	return t.Translations[0], true
}

// JoinTokens concatenates token texts in order
func JoinTokens(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Text)
	}
	buf := make([]byte, 0, n)
	for _, t := range tokens {
		buf = append(buf, t.Text...)
	}
	return string(buf)
}

// CountWords returns the number of WORD tokens
func CountWords(tokens []Token) int {
	count := 0
	for _, t := range tokens {
		if t.IsWord() {
			count++
		}
	}
	return count
}
