package usecase

import (
	"context"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/utils/errutil"
	"github.com/m-mizutani/octogate/pkg/utils/logging"
)

// InvalidateGitHubToken clears the stored token of the user whose key column
// equals caller. key is the column the rejected token was resolved by. The
// clear outlives cancellation of ctx.
func (x *UseCase) InvalidateGitHubToken(ctx context.Context, caller types.CallerID, key types.UserKey) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidateTimeout)
	defer cancel()

	cleared, err := x.clients.UserRepository().ClearGitHubAccessToken(ctx, key, string(caller))
	if err != nil {
		return goerr.Wrap(err, "failed to clear GitHub token", goerr.V("caller", caller), goerr.V("key", key))
	}

	if !cleared {
		logging.From(ctx).Info("no stored GitHub token to clear", "caller", caller, "key", key)
		return nil
	}

	logging.From(ctx).Info("cleared rejected GitHub token", "caller", caller, "key", key)
	x.audit(ctx, &model.AuditEvent{
		Operation:  model.AuditInvalidateToken,
		CallerID:   string(caller),
		StatusCode: http.StatusOK,
	})
	return nil
}

// invalidateBestEffort clears the token and reports a failure without
// returning it.
func (x *UseCase) invalidateBestEffort(ctx context.Context, caller types.CallerID, key types.UserKey) {
	if err := x.InvalidateGitHubToken(ctx, caller, key); err != nil {
		errutil.HandleError(ctx, "failed to invalidate GitHub token", err)
	}
}
