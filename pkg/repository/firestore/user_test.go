package firestore_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octogate/pkg/repository/firestore"
	"github.com/m-mizutani/octogate/pkg/repository/testhelper"
	"github.com/m-mizutani/octogate/pkg/utils/testutil"
)

func TestFirestoreUserRepository(t *testing.T) {
	envs := testutil.GetEnvsOrSkip(t, "TEST_FIRESTORE_PROJECT_ID", "TEST_FIRESTORE_DATABASE_ID")
	projectID, databaseID := envs[0], envs[1]

	ctx := context.Background()
	repo, err := firestore.New(ctx, projectID, databaseID)
	gt.NoError(t, err)

	testhelper.TestAll(t, repo)
}
