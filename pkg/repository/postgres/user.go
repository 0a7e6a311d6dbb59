package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/interfaces"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/repository"
	"github.com/m-mizutani/octogate/pkg/utils/safe"
)

// uniqueViolation is the PostgreSQL error code of a UNIQUE constraint failure.
const uniqueViolation = pq.ErrorCode("23505")

type userRepository struct {
	db *sql.DB
}

var _ interfaces.UserRepository = (*userRepository)(nil)

// New creates a UserRepository backed by the users table.
func New(db *sql.DB) interfaces.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUser(ctx context.Context, key types.UserKey, value string) (*model.User, error) {
	if err := key.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user key", goerr.V("key", key))
	}

	// key is one of the validated column constants
	query := fmt.Sprintf(`SELECT id, identity_id, github_access_token, github_username
		FROM users WHERE %s = $1 LIMIT 1`, key.String())

	var (
		user     model.User
		token    sql.NullString
		username sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, value).Scan(&user.ID, &user.IdentityID, &token, &username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "user not found",
				goerr.V("key", key),
				goerr.V("value", value),
			)
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("key", key))
	}

	if token.Valid {
		v := types.GitHubAccessToken(token.String)
		user.GitHubAccessToken = &v
	}
	if username.Valid {
		v := types.GitHubUsername(username.String)
		user.GitHubUsername = &v
	}

	return &user, nil
}

func (r *userRepository) PutUser(ctx context.Context, user *model.User) error {
	if user == nil || user.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "user ID is empty")
	}

	var token, username sql.NullString
	if user.GitHubAccessToken != nil {
		token = sql.NullString{String: string(*user.GitHubAccessToken), Valid: true}
	}
	if user.GitHubUsername != nil {
		username = sql.NullString{String: string(*user.GitHubUsername), Valid: true}
	}

	query := `
		INSERT INTO users (id, identity_id, github_access_token, github_username)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			identity_id = EXCLUDED.identity_id,
			github_access_token = EXCLUDED.github_access_token,
			github_username = EXCLUDED.github_username,
			updated_at = now()`

	if _, err := r.db.ExecContext(ctx, query, string(user.ID), string(user.IdentityID), token, username); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return goerr.Wrap(repository.ErrAlreadyExists, "identity_id is held by another user",
				goerr.V("id", user.ID),
				goerr.V("identity_id", user.IdentityID),
			)
		}
		return goerr.Wrap(err, "failed to put user", goerr.V("id", user.ID))
	}

	return nil
}

func (r *userRepository) ClearGitHubAccessToken(ctx context.Context, key types.UserKey, value string) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, goerr.Wrap(err, "invalid user key", goerr.V("key", key))
	}

	// key is one of the validated column constants
	query := fmt.Sprintf(`UPDATE users SET github_access_token = NULL, updated_at = now()
		WHERE %s = $1 AND github_access_token IS NOT NULL`, key.String())

	result, err := r.db.ExecContext(ctx, query, value)
	if err != nil {
		return false, goerr.Wrap(err, "failed to clear GitHub access token", goerr.V("key", key))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, goerr.Wrap(err, "failed to count cleared rows", goerr.V("key", key))
	}

	return n > 0, nil
}

func (r *userRepository) SampleUsers(ctx context.Context, limit int) ([]*model.User, error) {
	query := `
		SELECT id, identity_id, github_username
		FROM users ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to sample users")
	}
	defer safe.Close(rows)

	var users []*model.User
	for rows.Next() {
		var (
			user     model.User
			username sql.NullString
		)
		if err := rows.Scan(&user.ID, &user.IdentityID, &username); err != nil {
			return nil, goerr.Wrap(err, "failed to scan user")
		}
		if username.Valid {
			v := types.GitHubUsername(username.String)
			user.GitHubUsername = &v
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate users")
	}

	return users, nil
}
