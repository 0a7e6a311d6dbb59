package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/repository"
	"github.com/m-mizutani/octogate/pkg/utils/logging"
)

type userLookup struct {
	key   types.UserKey
	value string
}

type userFinder func(ctx context.Context, key types.UserKey, value string) (*model.User, error)

// resolveToken walks lookups in order and returns the first non-empty stored
// token. A missing user is a miss; any other store failure stops the walk.
func resolveToken(ctx context.Context, find userFinder, lookups []userLookup) (types.GitHubAccessToken, types.UserKey, error) {
	for _, lookup := range lookups {
		user, err := find(ctx, lookup.key, lookup.value)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return "", "", goerr.Wrap(err, "failed to look up user", goerr.V("key", lookup.key))
		}

		if user.HasGitHubToken() {
			return *user.GitHubAccessToken, lookup.key, nil
		}
	}

	return "", "", goerr.Wrap(types.ErrCredentialNotFound, "no stored GitHub token")
}

// ResolveGitHubToken finds the stored GitHub token of caller, trying the
// identity_id column first and then the id column.
func (x *UseCase) ResolveGitHubToken(ctx context.Context, caller types.CallerID) (types.GitHubAccessToken, error) {
	token, _, err := x.resolveGitHubToken(ctx, caller)
	return token, err
}

// resolveGitHubToken also returns the column the token was found by, which is
// the column a rejected token must be cleared by.
func (x *UseCase) resolveGitHubToken(ctx context.Context, caller types.CallerID) (types.GitHubAccessToken, types.UserKey, error) {
	return x.lookupGitHubToken(ctx, caller, []userLookup{
		{key: types.UserKeyIdentityID, value: string(caller)},
		{key: types.UserKeyID, value: string(caller)},
	})
}

func (x *UseCase) resolveGitHubTokenByIdentity(ctx context.Context, caller types.CallerID) (types.GitHubAccessToken, error) {
	token, _, err := x.lookupGitHubToken(ctx, caller, []userLookup{
		{key: types.UserKeyIdentityID, value: string(caller)},
	})
	return token, err
}

func (x *UseCase) lookupGitHubToken(ctx context.Context, caller types.CallerID, lookups []userLookup) (types.GitHubAccessToken, types.UserKey, error) {
	if caller == "" {
		return "", "", goerr.Wrap(types.ErrUnauthenticated, "caller ID is empty")
	}

	repo := x.clients.UserRepository()
	if repo == nil {
		return "", "", goerr.New("user repository is not configured")
	}

	token, key, err := resolveToken(ctx, repo.GetUser, lookups)
	if err != nil {
		if errors.Is(err, types.ErrCredentialNotFound) {
			x.logUserSample(ctx, caller)
		}
		return "", "", goerr.Wrap(err, "failed to resolve GitHub token", goerr.V("caller", caller))
	}

	logging.From(ctx).Debug("resolved GitHub token", "caller", caller, "key", key)
	return token, key, nil
}

func (x *UseCase) logUserSample(ctx context.Context, caller types.CallerID) {
	if x.userSample <= 0 {
		return
	}

	users, err := x.clients.UserRepository().SampleUsers(ctx, x.userSample)
	if err != nil {
		logging.From(ctx).Warn("failed to sample users", "error", err)
		return
	}

	logging.From(ctx).Debug("no GitHub token for caller",
		"caller", caller,
		"sample", users,
	)
}
