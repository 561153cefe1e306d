package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrLanguageNotFound      = errors.New("language not found")
	ErrNativeLanguageNotSet  = errors.New("native language is not set")
	ErrForeignLanguageNotSet = errors.New("foreign language is not set")
	ErrInvalidLanguageTag    = errors.New("invalid language tag")
	ErrEmptyWord             = errors.New("word cannot be empty")
	ErrEmptyTranslation      = errors.New("translation cannot be empty")
	ErrWordNotFound          = errors.New("word not found")
	ErrLineCountMismatch     = errors.New("foreign and native line counts differ")
	ErrNoDocument            = errors.New("no document has been analyzed")
	ErrStoreUnavailable      = errors.New("vocabulary store is unavailable")
)

// ErrorKind classifies failures reported by the reading core
type ErrorKind int

const (
	// KindConfiguration means a required lookup resolved to nothing
	KindConfiguration ErrorKind = iota + 1
	// KindStoreQuery means the vocabulary store call itself failed
	KindStoreQuery
	// KindAlignmentInvariant is an internal rendering defect
	KindAlignmentInvariant
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindStoreQuery:
		return "store query"
	case KindAlignmentInvariant:
		return "alignment invariant"
	default:
		return "unknown"
	}
}

// Error is a typed failure carrying its kind and the failed operation
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigurationError wraps err as a configuration failure of op
func NewConfigurationError(op string, err error) *Error {
	return &Error{Kind: KindConfiguration, Op: op, Err: err}
}

// NewStoreQueryError wraps err as a store failure of op
func NewStoreQueryError(op string, err error) *Error {
	return &Error{Kind: KindStoreQuery, Op: op, Err: err}
}

// NewAlignmentError reports mismatched line counts
func NewAlignmentError(foreignLines, nativeLines int) *Error {
	return &Error{
		Kind: KindAlignmentInvariant,
		Op:   "render",
		Err:  fmt.Errorf("%w: %d foreign, %d native", ErrLineCountMismatch, foreignLines, nativeLines),
	}
}

// IsKind reports whether err is a *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
