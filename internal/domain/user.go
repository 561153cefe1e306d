package domain

import "time"

// User represents a bot user and their language settings
type User struct {
	UserID      int64
	Authorized  bool
	ForeignLang string
	NativeLang  string
	CreatedAt   time.Time
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle               UserState = "idle"
	StateWaitingTranslation UserState = "waiting_translation"
	StateWaitingRemoval     UserState = "waiting_removal"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State       UserState
	CurrentWord string
}
