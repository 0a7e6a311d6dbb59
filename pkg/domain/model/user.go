package model

import (
	"log/slog"

	"github.com/m-mizutani/octogate/pkg/domain/types"
)

// User is a row of the users table. GitHubAccessToken and GitHubUsername are
// nullable and written by the account linking flow.
type User struct {
	ID                types.UserID
	IdentityID        types.IdentityID
	GitHubAccessToken *types.GitHubAccessToken
	GitHubUsername    *types.GitHubUsername
}

// HasGitHubToken reports whether the user holds a non-empty stored token.
func (x *User) HasGitHubToken() bool {
	return x != nil && x.GitHubAccessToken != nil && *x.GitHubAccessToken != ""
}

func (x *User) LogValue() slog.Value {
	var username string
	if x.GitHubUsername != nil {
		username = string(*x.GitHubUsername)
	}
	return slog.GroupValue(
		slog.Any("id", x.ID),
		slog.Any("identity_id", x.IdentityID),
		slog.String("github_username", username),
		slog.Bool("has_token", x.HasGitHubToken()),
	)
}
