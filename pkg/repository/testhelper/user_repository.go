package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octogate/pkg/domain/interfaces"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/repository"
)

// TestAll runs all test cases for UserRepository
// This is the main entry point for testing any UserRepository implementation
func TestAll(t *testing.T, repo interfaces.UserRepository) {
	t.Run("GetUserByKey", func(t *testing.T) {
		TestGetUserByKey(t, repo)
	})
	t.Run("GetUserNotFound", func(t *testing.T) {
		TestGetUserNotFound(t, repo)
	})
	t.Run("PutUserReplaces", func(t *testing.T) {
		TestPutUserReplaces(t, repo)
	})
	t.Run("PutUserDuplicateIdentity", func(t *testing.T) {
		TestPutUserDuplicateIdentity(t, repo)
	})
	t.Run("ClearGitHubAccessToken", func(t *testing.T) {
		TestClearGitHubAccessToken(t, repo)
	})
	t.Run("ClearGitHubAccessTokenByID", func(t *testing.T) {
		TestClearGitHubAccessTokenByID(t, repo)
	})
	t.Run("SampleUsers", func(t *testing.T) {
		TestSampleUsers(t, repo)
	})
}

// NewTestUser builds a user with unique IDs and a stored token.
func NewTestUser() *model.User {
	suffix := uuid.New().String()[:8]
	token := types.GitHubAccessToken(fmt.Sprintf("gho_%s", suffix))
	username := types.GitHubUsername(fmt.Sprintf("user-%s", suffix))

	return &model.User{
		ID:                types.UserID(uuid.NewString()),
		IdentityID:        types.IdentityID(fmt.Sprintf("auth0|%s", suffix)),
		GitHubAccessToken: &token,
		GitHubUsername:    &username,
	}
}

// TestGetUserByKey tests lookup by both identity_id and id
func TestGetUserByKey(t *testing.T, repo interfaces.UserRepository) {
	ctx := context.Background()
	user := NewTestUser()
	gt.NoError(t, repo.PutUser(ctx, user))

	byIdentity, err := repo.GetUser(ctx, types.UserKeyIdentityID, string(user.IdentityID))
	gt.NoError(t, err)
	gt.V(t, byIdentity.ID).Equal(user.ID)
	gt.V(t, byIdentity.IdentityID).Equal(user.IdentityID)
	gt.V(t, *byIdentity.GitHubAccessToken).Equal(*user.GitHubAccessToken)
	gt.V(t, *byIdentity.GitHubUsername).Equal(*user.GitHubUsername)

	byID, err := repo.GetUser(ctx, types.UserKeyID, string(user.ID))
	gt.NoError(t, err)
	gt.V(t, byID.IdentityID).Equal(user.IdentityID)

	// identity_id value must not match the id column and vice versa
	_, err = repo.GetUser(ctx, types.UserKeyID, string(user.IdentityID))
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestGetUserNotFound tests that unknown users and invalid keys are reported
func TestGetUserNotFound(t *testing.T, repo interfaces.UserRepository) {
	ctx := context.Background()

	_, err := repo.GetUser(ctx, types.UserKeyIdentityID, "unknown-"+uuid.NewString())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = repo.GetUser(ctx, types.UserKey("email"), "x")
	gt.Error(t, err)
	gt.False(t, errors.Is(err, repository.ErrNotFound))
}

// TestPutUserReplaces tests that PutUser overwrites an existing row
func TestPutUserReplaces(t *testing.T, repo interfaces.UserRepository) {
	ctx := context.Background()
	user := NewTestUser()
	gt.NoError(t, repo.PutUser(ctx, user))

	newToken := types.GitHubAccessToken("gho_rotated")
	user.GitHubAccessToken = &newToken
	gt.NoError(t, repo.PutUser(ctx, user))

	got, err := repo.GetUser(ctx, types.UserKeyID, string(user.ID))
	gt.NoError(t, err)
	gt.V(t, *got.GitHubAccessToken).Equal(newToken)
}

// TestPutUserDuplicateIdentity tests that two users cannot share an identity_id
func TestPutUserDuplicateIdentity(t *testing.T, repo interfaces.UserRepository) {
	ctx := context.Background()
	user := NewTestUser()
	gt.NoError(t, repo.PutUser(ctx, user))

	dup := NewTestUser()
	dup.IdentityID = user.IdentityID
	err := repo.PutUser(ctx, dup)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	// the first owner is untouched and the duplicate was not stored
	got, err := repo.GetUser(ctx, types.UserKeyIdentityID, string(user.IdentityID))
	gt.NoError(t, err)
	gt.V(t, got.ID).Equal(user.ID)
	_, err = repo.GetUser(ctx, types.UserKeyID, string(dup.ID))
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestClearGitHubAccessToken tests token invalidation by identity_id
func TestClearGitHubAccessToken(t *testing.T, repo interfaces.UserRepository) {
	ctx := context.Background()
	user := NewTestUser()
	other := NewTestUser()
	gt.NoError(t, repo.PutUser(ctx, user))
	gt.NoError(t, repo.PutUser(ctx, other))

	cleared, err := repo.ClearGitHubAccessToken(ctx, types.UserKeyIdentityID, string(user.IdentityID))
	gt.NoError(t, err)
	gt.True(t, cleared)

	got, err := repo.GetUser(ctx, types.UserKeyIdentityID, string(user.IdentityID))
	gt.NoError(t, err)
	gt.False(t, got.HasGitHubToken())
	gt.V(t, *got.GitHubUsername).Equal(*user.GitHubUsername)

	// other users keep their token
	got, err = repo.GetUser(ctx, types.UserKeyIdentityID, string(other.IdentityID))
	gt.NoError(t, err)
	gt.True(t, got.HasGitHubToken())

	// clearing again, or clearing an unknown user, is not an error and changes nothing
	cleared, err = repo.ClearGitHubAccessToken(ctx, types.UserKeyIdentityID, string(user.IdentityID))
	gt.NoError(t, err)
	gt.False(t, cleared)

	cleared, err = repo.ClearGitHubAccessToken(ctx, types.UserKeyIdentityID, "unknown-"+uuid.NewString())
	gt.NoError(t, err)
	gt.False(t, cleared)

	_, err = repo.ClearGitHubAccessToken(ctx, types.UserKey("email"), "x")
	gt.Error(t, err)
}

// TestClearGitHubAccessTokenByID tests token invalidation by the id column
func TestClearGitHubAccessTokenByID(t *testing.T, repo interfaces.UserRepository) {
	ctx := context.Background()
	user := NewTestUser()
	gt.NoError(t, repo.PutUser(ctx, user))

	// an identity_id value does not match the id column
	cleared, err := repo.ClearGitHubAccessToken(ctx, types.UserKeyID, string(user.IdentityID))
	gt.NoError(t, err)
	gt.False(t, cleared)

	cleared, err = repo.ClearGitHubAccessToken(ctx, types.UserKeyID, string(user.ID))
	gt.NoError(t, err)
	gt.True(t, cleared)

	got, err := repo.GetUser(ctx, types.UserKeyID, string(user.ID))
	gt.NoError(t, err)
	gt.False(t, got.HasGitHubToken())
}

// TestSampleUsers tests that the sample is bounded and carries no tokens
func TestSampleUsers(t *testing.T, repo interfaces.UserRepository) {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		gt.NoError(t, repo.PutUser(ctx, NewTestUser()))
	}

	users, err := repo.SampleUsers(ctx, 2)
	gt.NoError(t, err)
	gt.V(t, len(users)).Equal(2)
	for _, u := range users {
		gt.V(t, u.ID).NotEqual(types.UserID(""))
		gt.False(t, u.HasGitHubToken())
	}
}
