package usecase

import (
	"context"

	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
)

// Export unexported functions for testing
var (
	CreateOrUpdateAuditTableForTest = createOrUpdateAuditTable
	ToRepositorySummaryForTest      = toRepositorySummary
	AuditObjectNameForTest          = auditObjectName
)

type UserLookupForTest = userLookup

func NewUserLookupForTest(key types.UserKey, value string) UserLookupForTest {
	return userLookup{key: key, value: value}
}

func ResolveTokenForTest(ctx context.Context, find func(context.Context, types.UserKey, string) (*model.User, error), lookups []UserLookupForTest) (types.GitHubAccessToken, types.UserKey, error) {
	return resolveToken(ctx, find, lookups)
}
