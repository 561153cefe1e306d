package domain

// Mode is the reading engine state
type Mode string

const (
	// ModeEdit holds raw, editable text without translations
	ModeEdit Mode = "edit"
	// ModeTranslate holds the rendered, read-only interlinear view
	ModeTranslate Mode = "translate"
)
