package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"thesaurus/internal/domain"
	"thesaurus/internal/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized checks if user is authorized
func (r *UserRepo) IsAuthorized(ctx context.Context, userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM users WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&authorized)

	if err == sql.ErrNoRows {
		// User doesn't exist yet
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check authorization: %w", err)
	}

	return authorized, nil
}

// AuthorizeUser marks user as authorized
func (r *UserRepo) AuthorizeUser(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("authorize user: %w", err)
	}
	return nil
}

// EnsureUserExists creates user if not exists
func (r *UserRepo) EnsureUserExists(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	return nil
}

// GetUser returns the user with their language settings, nil if unknown
func (r *UserRepo) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	var u domain.User
	query := `
		SELECT user_id, authorized, foreign_lang, native_lang, created_at
		FROM users
		WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&u.UserID, &u.Authorized, &u.ForeignLang, &u.NativeLang, &u.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

// SetForeignLanguage stores the language the user reads
func (r *UserRepo) SetForeignLanguage(ctx context.Context, userID int64, tag string) error {
	query := `UPDATE users SET foreign_lang = $1 WHERE user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, tag, userID); err != nil {
		return fmt.Errorf("set foreign language: %w", err)
	}
	return nil
}

// SetNativeLanguage stores the language translations are shown in
func (r *UserRepo) SetNativeLanguage(ctx context.Context, userID int64, tag string) error {
	query := `UPDATE users SET native_lang = $1 WHERE user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, tag, userID); err != nil {
		return fmt.Errorf("set native language: %w", err)
	}
	return nil
}
