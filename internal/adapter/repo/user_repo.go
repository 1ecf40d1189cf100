package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"donatehub/internal/domain"
	"donatehub/internal/infra"
	"donatehub/internal/sqlinline"
)

// UserRepository persists user accounts.
type UserRepository struct {
	sql infra.SQLExecutor
}

// NewUserRepository creates a new user repo over the SQL executor contract.
func NewUserRepository(sql infra.SQLExecutor) *UserRepository {
	return &UserRepository{sql: sql}
}

// Create inserts a new user and fills the generated id and timestamps.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertUser,
		user.Username, user.Email, user.FullName, user.PasswordHash, string(user.Role))
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return &domain.InternalError{Err: err}
	}
	return nil
}

// GetByID loads a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.scanUser(r.sql.QueryRow(ctx, sqlinline.QSelectUserByID, id))
}

// GetByLogin loads a user by username or email.
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	return r.scanUser(r.sql.QueryRow(ctx, sqlinline.QSelectUserByLogin, login))
}

// Exists reports whether a user with the given username or email is already
// registered.
func (r *UserRepository) Exists(ctx context.Context, username, email string) (bool, error) {
	var count int64
	row := r.sql.QueryRow(ctx, sqlinline.QCountUserConflicts, username, email)
	if err := row.Scan(&count); err != nil {
		return false, &domain.InternalError{Err: err}
	}
	return count > 0, nil
}

// UpdateFullName changes the display name.
func (r *UserRepository) UpdateFullName(ctx context.Context, id, fullName string) error {
	return r.exec(ctx, sqlinline.QUpdateUserFullName, id, fullName)
}

// UpdatePassword stores a new password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.exec(ctx, sqlinline.QUpdateUserPassword, id, passwordHash)
}

// SetRefreshToken stores the active refresh token; an empty token
// invalidates the session on logout.
func (r *UserRepository) SetRefreshToken(ctx context.Context, id, token string) error {
	return r.exec(ctx, sqlinline.QSetUserRefreshToken, id, token)
}

func (r *UserRepository) exec(ctx context.Context, query string, id string, value string) error {
	tag, err := r.sql.Exec(ctx, query, id, value)
	if err != nil {
		return &domain.InternalError{Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("user not found")
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.FullName,
		&user.PasswordHash, &user.Role, &user.RefreshToken, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFound("user not found")
	}
	if err != nil {
		return nil, &domain.InternalError{Err: err}
	}
	return &user, nil
}
