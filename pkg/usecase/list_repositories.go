package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
)

// ListRepositories returns the repositories visible to caller's stored GitHub
// token, most recently updated first. A token rejected by GitHub is cleared.
func (x *UseCase) ListRepositories(ctx context.Context, caller types.CallerID) (repos []*model.RepositorySummary, err error) {
	defer func() {
		x.audit(ctx, newAuditEvent(model.AuditListRepositories, caller, "", "", err))
	}()

	token, key, err := x.resolveGitHubToken(ctx, caller)
	if err != nil {
		return nil, err
	}

	resp, err := x.clients.GitHub().ListRepositories(ctx, token)
	if err != nil {
		var upErr *types.UpstreamError
		if errors.As(err, &upErr) && upErr.StatusCode == http.StatusUnauthorized {
			x.invalidateBestEffort(ctx, caller, key)
			return nil, goerr.Wrap(types.ErrCredentialInvalid, "GitHub rejected stored token",
				goerr.V("caller", caller),
				goerr.V("upstream", upErr.Message),
			)
		}
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("caller", caller))
	}

	repos = make([]*model.RepositorySummary, 0, len(resp))
	for _, r := range resp {
		repos = append(repos, toRepositorySummary(r))
	}

	return repos, nil
}

func toRepositorySummary(r *github.Repository) *model.RepositorySummary {
	summary := &model.RepositorySummary{
		ID:            r.ID,
		Name:          r.Name,
		FullName:      r.FullName,
		HTMLURL:       r.HTMLURL,
		Description:   r.Description,
		DefaultBranch: r.DefaultBranch,
		Visibility:    r.Visibility,
	}
	if r.UpdatedAt != nil {
		t := r.UpdatedAt.Time
		summary.UpdatedAt = &t
	}
	return summary
}
