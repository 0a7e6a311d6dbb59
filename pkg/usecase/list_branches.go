package usecase

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
)

// ListBranches returns the first page of branches of owner/repo exactly as
// GitHub encodes them.
func (x *UseCase) ListBranches(ctx context.Context, caller types.CallerID, owner, repo string) (branches []json.RawMessage, err error) {
	defer func() {
		x.audit(ctx, newAuditEvent(model.AuditListBranches, caller, owner, repo, err))
	}()

	token, err := x.ResolveGitHubToken(ctx, caller)
	if err != nil {
		return nil, err
	}

	branches, err = x.clients.GitHub().ListBranches(ctx, token, owner, repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list branches",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return branches, nil
}
