package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/interfaces"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/repository"
)

// UserRepository keeps users in process memory. It is meant for tests and
// local development.
type UserRepository struct {
	mu    sync.RWMutex
	users map[types.UserID]*model.User
}

var _ interfaces.UserRepository = (*UserRepository)(nil)

// New creates a new in-memory repository
func New() *UserRepository {
	return &UserRepository{
		users: make(map[types.UserID]*model.User),
	}
}

func (r *UserRepository) GetUser(ctx context.Context, key types.UserKey, value string) (*model.User, error) {
	if err := key.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user key", goerr.V("key", key))
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if matchKey(user, key, value) {
			return copyUser(user), nil
		}
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "user not found",
		goerr.V("key", key),
		goerr.V("value", value),
	)
}

func (r *UserRepository) PutUser(ctx context.Context, user *model.User) error {
	if user == nil || user.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "user ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.users {
		if id != user.ID && existing.IdentityID == user.IdentityID {
			return goerr.Wrap(repository.ErrAlreadyExists, "identity_id is held by another user",
				goerr.V("id", user.ID),
				goerr.V("identity_id", user.IdentityID),
			)
		}
	}

	r.users[user.ID] = copyUser(user)
	return nil
}

func (r *UserRepository) ClearGitHubAccessToken(ctx context.Context, key types.UserKey, value string) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, goerr.Wrap(err, "invalid user key", goerr.V("key", key))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var cleared bool
	for _, user := range r.users {
		if matchKey(user, key, value) && user.GitHubAccessToken != nil {
			user.GitHubAccessToken = nil
			cleared = true
		}
	}

	return cleared, nil
}

// SampleUsers returns users ordered by ID without their tokens.
func (r *UserRepository) SampleUsers(ctx context.Context, limit int) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]types.UserID, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var users []*model.User
	for _, id := range ids {
		if len(users) >= limit {
			break
		}
		user := copyUser(r.users[id])
		user.GitHubAccessToken = nil
		users = append(users, user)
	}

	return users, nil
}

func matchKey(user *model.User, key types.UserKey, value string) bool {
	switch key {
	case types.UserKeyIdentityID:
		return string(user.IdentityID) == value
	case types.UserKeyID:
		return string(user.ID) == value
	default:
		return false
	}
}

func copyUser(src *model.User) *model.User {
	dst := *src
	if src.GitHubAccessToken != nil {
		token := *src.GitHubAccessToken
		dst.GitHubAccessToken = &token
	}
	if src.GitHubUsername != nil {
		name := *src.GitHubUsername
		dst.GitHubUsername = &name
	}
	return &dst
}
