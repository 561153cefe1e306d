// Package sqlstore implements the repositories on database/sql. Queries are
// written to run unchanged on PostgreSQL (lib/pq, pgx) and SQLite
// (go-sqlite3). Placeholders must appear in ascending order within a
// statement, since SQLite numbers $N parameters by first appearance.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"thesaurus/internal/domain"
	"thesaurus/internal/repository"
)

var _ repository.VocabularyStore = (*VocabularyStore)(nil)

// VocabularyStore implements repository.VocabularyStore
type VocabularyStore struct {
	db *sql.DB
}

// NewVocabularyStore creates a new vocabulary store
func NewVocabularyStore(db *sql.DB) *VocabularyStore {
	return &VocabularyStore{db: db}
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// GetLanguages returns all known language tags
func (s *VocabularyStore) GetLanguages(ctx context.Context) ([]string, error) {
	query := `SELECT lang FROM languages ORDER BY lang`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get languages: %w", err)
	}
	defer rows.Close()

	var languages []string
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		languages = append(languages, lang)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get languages: %w", err)
	}

	return languages, nil
}

// GetLangID returns the id of a language tag, 0 if the tag is unknown
func (s *VocabularyStore) GetLangID(ctx context.Context, tag string) (int, error) {
	var id int
	query := `SELECT id FROM languages WHERE lang = $1`
	err := s.db.QueryRowContext(ctx, query, tag).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get language id: %w", err)
	}

	return id, nil
}

// AddLanguage registers a language tag and returns its id
func (s *VocabularyStore) AddLanguage(ctx context.Context, tag string) (int, error) {
	query := `
		INSERT INTO languages (lang)
		VALUES ($1)
		ON CONFLICT (lang) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, tag); err != nil {
		return 0, fmt.Errorf("add language: %w", err)
	}
	return s.GetLangID(ctx, tag)
}

// GetTranslations returns the native translations of a foreign word in
// the order they were added
func (s *VocabularyStore) GetTranslations(ctx context.Context, word string, foreignLangID, nativeLangID int) ([]string, error) {
	entries, err := s.ListTranslations(ctx, word, foreignLangID, nativeLangID)
	if err != nil {
		return nil, err
	}

	translations := make([]string, 0, len(entries))
	for _, e := range entries {
		translations = append(translations, e.Text)
	}
	return translations, nil
}

// ListTranslations returns the native translations of a foreign word with their ids
func (s *VocabularyStore) ListTranslations(ctx context.Context, word string, foreignLangID, nativeLangID int) ([]domain.Word, error) {
	query := `
		SELECT w2.id, w2.word, w2.lang_id
		FROM words w1
		JOIN translations t ON t.from_word_id = w1.id
		JOIN words w2 ON w2.id = t.to_word_id
		WHERE w1.word = $1 AND w1.lang_id = $2 AND w2.lang_id = $3
		ORDER BY t.id
	`

	rows, err := s.db.QueryContext(ctx, query, word, foreignLangID, nativeLangID)
	if err != nil {
		return nil, fmt.Errorf("get translations: %w", err)
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.Text, &w.LangID); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get translations: %w", err)
	}

	return words, nil
}

// Translate links a foreign word and a native word in both directions,
// creating missing words
func (s *VocabularyStore) Translate(ctx context.Context, nativeWord string, nativeLangID int, foreignWord string, foreignLangID int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}
	defer tx.Rollback()

	foreignID, err := ensureWord(ctx, tx, foreignWord, foreignLangID)
	if err != nil {
		return err
	}
	nativeID, err := ensureWord(ctx, tx, nativeWord, nativeLangID)
	if err != nil {
		return err
	}

	if err := link(ctx, tx, foreignID, nativeID); err != nil {
		return err
	}
	if err := link(ctx, tx, nativeID, foreignID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("translate: %w", err)
	}
	return nil
}

// Untranslate removes the links between a foreign and a native word.
// The words themselves are kept.
func (s *VocabularyStore) Untranslate(ctx context.Context, nativeWord string, nativeLangID int, foreignWord string, foreignLangID int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("untranslate: %w", err)
	}
	defer tx.Rollback()

	foreignID, err := wordID(ctx, tx, foreignWord, foreignLangID)
	if err != nil {
		return err
	}
	nativeID, err := wordID(ctx, tx, nativeWord, nativeLangID)
	if err != nil {
		return err
	}
	if foreignID == 0 || nativeID == 0 {
		return nil
	}

	query := `
		DELETE FROM translations
		WHERE (from_word_id = $1 AND to_word_id = $2)
			OR (from_word_id = $2 AND to_word_id = $1)
	`
	if _, err := tx.ExecContext(ctx, query, foreignID, nativeID); err != nil {
		return fmt.Errorf("untranslate: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("untranslate: %w", err)
	}
	return nil
}

// GetWordID returns the id of a word, 0 if it is not stored
func (s *VocabularyStore) GetWordID(ctx context.Context, word string, langID int) (int, error) {
	return wordID(ctx, s.db, word, langID)
}

// Update changes the text of a stored word
func (s *VocabularyStore) Update(ctx context.Context, id int, text string) error {
	query := `UPDATE words SET word = $1 WHERE id = $2`
	result, err := s.db.ExecContext(ctx, query, text, id)
	if err != nil {
		return fmt.Errorf("update word: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update word: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update word %d: %w", id, domain.ErrWordNotFound)
	}
	return nil
}

// Remove deletes a word together with all its translation links
func (s *VocabularyStore) Remove(ctx context.Context, id int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("remove word: %w", err)
	}
	defer tx.Rollback()

	query := `DELETE FROM translations WHERE from_word_id = $1 OR to_word_id = $1`
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("remove word links: %w", err)
	}

	query = `DELETE FROM words WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("remove word: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("remove word: %w", err)
	}
	return nil
}

// IsHealthy reports whether the database answers
func (s *VocabularyStore) IsHealthy(ctx context.Context) bool {
	return s.db.PingContext(ctx) == nil
}

func wordID(ctx context.Context, q queryer, word string, langID int) (int, error) {
	var id int
	query := `SELECT id FROM words WHERE word = $1 AND lang_id = $2`
	err := q.QueryRowContext(ctx, query, word, langID).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get word id: %w", err)
	}

	return id, nil
}

func ensureWord(ctx context.Context, q queryer, word string, langID int) (int, error) {
	query := `
		INSERT INTO words (word, lang_id)
		VALUES ($1, $2)
		ON CONFLICT (word, lang_id) DO NOTHING
	`
	if _, err := q.ExecContext(ctx, query, word, langID); err != nil {
		return 0, fmt.Errorf("insert word: %w", err)
	}
	return wordID(ctx, q, word, langID)
}

func link(ctx context.Context, q queryer, fromID, toID int) error {
	query := `
		INSERT INTO translations (from_word_id, to_word_id)
		VALUES ($1, $2)
		ON CONFLICT (from_word_id, to_word_id) DO NOTHING
	`
	if _, err := q.ExecContext(ctx, query, fromID, toID); err != nil {
		return fmt.Errorf("link words: %w", err)
	}
	return nil
}
