package interfaces

import (
	"context"

	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
)

//go:generate moq -out ../mock/user_repository_mock.go -pkg mock . UserRepository

// UserRepository reads users and their stored GitHub tokens.
type UserRepository interface {
	// GetUser returns the user whose key column equals value, or an error
	// wrapping repository.ErrNotFound.
	GetUser(ctx context.Context, key types.UserKey, value string) (*model.User, error)
	// PutUser creates or replaces a user row. Another user holding the same
	// identity_id is rejected with repository.ErrAlreadyExists.
	PutUser(ctx context.Context, user *model.User) error
	// ClearGitHubAccessToken sets the stored token of the user whose key
	// column equals value to null. It reports whether a stored token was
	// removed; clearing an absent user or token is not an error.
	ClearGitHubAccessToken(ctx context.Context, key types.UserKey, value string) (bool, error)
	// SampleUsers returns at most limit users, for operator diagnostics.
	SampleUsers(ctx context.Context, limit int) ([]*model.User, error)
}
