package testutil

import (
	"time"

	"thesaurus/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, authorized bool) *domain.User {
	return &domain.User{
		UserID:     userID,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestPair creates a resolved German to English language pair
func NewTestPair() domain.LanguagePair {
	return domain.LanguagePair{
		ForeignID:  1,
		NativeID:   2,
		ForeignTag: "de",
		NativeTag:  "en",
	}
}

// NewTestWord creates a stored test word
func NewTestWord(id int, text string, langID int) domain.Word {
	return domain.Word{
		ID:     id,
		Text:   text,
		LangID: langID,
	}
}
