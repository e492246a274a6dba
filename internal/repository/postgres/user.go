package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pandey-i/note-taking-app/internal/model"
)

const (
	uniqueViolation = "23505"

	usersEmailKey    = "users_email_key"
	usersGoogleIDKey = "users_google_id_key"

	userColumns = `id, email, password_hash, name, google_id, email_verified, otp, otp_expires_at, created_at, updated_at`
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return model.User{}, wrapNotFound(err, "failed to get user by email")
	}

	return user, nil
}

func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, externalID))
	if err != nil {
		return model.User{}, wrapNotFound(err, "failed to get user by external id")
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return model.User{}, wrapNotFound(err, "failed to get user by id")
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (` + userColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.ExternalID,
		user.EmailVerified, user.OTP, user.OTPExpiresAt, user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return model.User{}, dup
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

// Save overwrites every mutable column of the user in one statement.
func (r *UserRepository) Save(ctx context.Context, user model.User) error {
	query := `UPDATE users
			  SET email = $2, password_hash = $3, name = $4, google_id = $5, email_verified = $6,
			      otp = $7, otp_expires_at = $8, updated_at = $9
			  WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.ExternalID,
		user.EmailVerified, user.OTP, user.OTPExpiresAt, user.UpdatedAt,
	)
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.ExternalID,
		&user.EmailVerified, &user.OTP, &user.OTPExpiresAt, &user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

func wrapNotFound(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func duplicateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case usersEmailKey:
		return model.ErrDuplicateEmail
	case usersGoogleIDKey:
		return model.ErrDuplicateExternalID
	default:
		return nil
	}
}
