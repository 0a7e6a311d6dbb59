package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/utils/logging"
)

// ValidateRepository checks that repositoryURL names a GitHub repository the
// caller's stored token can read. Only the identity_id column is consulted.
func (x *UseCase) ValidateRepository(ctx context.Context, caller types.CallerID, repositoryURL string) (result *model.RepositoryValidation, err error) {
	var ref model.RepositoryRef
	defer func() {
		x.audit(ctx, newAuditEvent(model.AuditValidateRepository, caller, ref.Owner, ref.Name, err))
	}()

	ref, err = model.ParseRepositoryURL(repositoryURL)
	if err != nil {
		return nil, err
	}

	token, err := x.resolveGitHubTokenByIdentity(ctx, caller)
	if err != nil {
		return nil, err
	}

	repo, err := x.clients.GitHub().GetRepository(ctx, token, ref.Owner, ref.Name)
	if err != nil {
		// Without any upstream response nothing is known about the repository.
		var upErr *types.UpstreamError
		if !errors.As(err, &upErr) || upErr.StatusCode == 0 {
			return nil, goerr.Wrap(err, "failed to get repository", goerr.V("repo", ref.String()))
		}

		logging.From(ctx).Info("repository is not accessible", "repo", ref.String(), "status", upErr.StatusCode)
		return nil, goerr.Wrap(types.ErrRepositoryNotAccessible, "failed to get repository",
			goerr.V("repo", ref.String()),
			goerr.V("status", upErr.StatusCode),
		)
	}

	return &model.RepositoryValidation{
		Valid: true,
		Repository: &model.ValidatedRepository{
			ID:            repo.ID,
			Name:          repo.Name,
			FullName:      repo.FullName,
			DefaultBranch: repo.DefaultBranch,
			Visibility:    repo.Visibility,
		},
	}, nil
}
