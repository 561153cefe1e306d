package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// LanguagePair holds the resolved foreign and native languages of a document
type LanguagePair struct {
	ForeignID  int
	NativeID   int
	ForeignTag string
	NativeTag  string
}

// IsZero reports whether the pair was never resolved
func (p LanguagePair) IsZero() bool {
	return p.ForeignID == 0 && p.NativeID == 0
}

// SameLanguages reports whether both pairs refer to the same language ids
func (p LanguagePair) SameLanguages(other LanguagePair) bool {
	return p.ForeignID == other.ForeignID && p.NativeID == other.NativeID
}

// NormalizeTag converts a user supplied language tag ("DE", "de-AT", "en_US")
// to the lowercase base language code stored in the languages table
func NormalizeTag(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", ErrInvalidLanguageTag
	}

	parsed, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguageTag, tag)
	}

	base, _ := parsed.Base()
	return strings.ToLower(base.String()), nil
}
