package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octogate/pkg/cli/config"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func userCommand() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Manage linked users in the user store",
		Commands: []*cli.Command{
			userPutCommand(),
		},
	}
}

// userPutCommand links a GitHub token to a user. It stands in for the
// account linking flow in development and operations.
func userPutCommand() *cli.Command {
	var (
		database config.Database

		id          string
		identityID  string
		githubToken string
		githubUser  string
	)

	return &cli.Command{
		Name:  "put",
		Usage: "Create or replace a user and its stored GitHub token",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "id",
				Usage:       "Internal user ID (required)",
				Destination: &id,
			},
			&cli.StringFlag{
				Name:        "identity-id",
				Usage:       "External identity ID, the subject of identity tokens (required)",
				Destination: &identityID,
			},
			&cli.StringFlag{
				Name:        "github-token",
				Usage:       "GitHub OAuth access token",
				Sources:     cli.EnvVars("OCTOGATE_GITHUB_TOKEN"),
				Destination: &githubToken,
			},
			&cli.StringFlag{
				Name:        "github-username",
				Usage:       "GitHub login name",
				Destination: &githubUser,
			},
		}, database.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			user, err := buildUser(id, identityID, githubToken, githubUser)
			if err != nil {
				return err
			}

			repo, closeRepo, err := database.NewUserRepository(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			if err := repo.PutUser(ctx, user); err != nil {
				return err
			}

			logging.Default().Info("user stored", slog.Any("user", user))
			return nil
		},
	}
}

func buildUser(id, identityID, githubToken, githubUser string) (*model.User, error) {
	if id == "" || identityID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "--id and --identity-id are required")
	}

	user := &model.User{
		ID:         types.UserID(id),
		IdentityID: types.IdentityID(identityID),
	}
	if githubToken != "" {
		token := types.GitHubAccessToken(githubToken)
		user.GitHubAccessToken = &token
	}
	if githubUser != "" {
		name := types.GitHubUsername(githubUser)
		user.GitHubUsername = &name
	}
	return user, nil
}
