// Package cache holds the session-scoped word to translations mapping used
// while reading a document. It is not safe for concurrent use; the reading
// engine serializes access.
package cache

// TranslationCache maps exact word text to its ordered translations
type TranslationCache struct {
	entries map[string][]string
}

// NewTranslationCache creates an empty cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		entries: make(map[string][]string),
	}
}

// Lookup returns a copy of the translations cached for word
func (c *TranslationCache) Lookup(word string) ([]string, bool) {
	translations, ok := c.entries[word]
	if !ok {
		return nil, false
	}
	return append([]string(nil), translations...), true
}

// Put inserts or replaces the entry for word. Empty lists are ignored.
func (c *TranslationCache) Put(word string, translations []string) {
	unique := dedupe(translations)
	if len(unique) == 0 {
		return
	}
	c.entries[word] = unique
}

// AddTranslation appends translation to word's list unless already present
func (c *TranslationCache) AddTranslation(word, translation string) {
	existing := c.entries[word]
	for _, t := range existing {
		if t == translation {
			return
		}
	}
	c.entries[word] = append(existing, translation)
}

// RemoveTranslation removes translation from word's list and drops the
// entry once the list is empty
func (c *TranslationCache) RemoveTranslation(word, translation string) {
	existing, ok := c.entries[word]
	if !ok {
		return
	}

	kept := make([]string, 0, len(existing))
	for _, t := range existing {
		if t != translation {
			kept = append(kept, t)
		}
	}

	if len(kept) == 0 {
		delete(c.entries, word)
		return
	}
	c.entries[word] = kept
}

// Clear empties the cache
func (c *TranslationCache) Clear() {
	c.entries = make(map[string][]string)
}

// Len returns the number of cached words
func (c *TranslationCache) Len() int {
	return len(c.entries)
}

func dedupe(translations []string) []string {
	seen := make(map[string]struct{}, len(translations))
	unique := make([]string, 0, len(translations))
	for _, t := range translations {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		unique = append(unique, t)
	}
	return unique
}
