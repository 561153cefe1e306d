package domain

// Word is a stored vocabulary entry
type Word struct {
	ID     int
	Text   string
	LangID int
}
