package bq_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/infra/bq"
	"github.com/m-mizutani/octogate/pkg/utils/testutil"
)

func TestClient(t *testing.T) {
	envs := testutil.GetEnvsOrSkip(t, "TEST_BIGQUERY_PROJECT_ID", "TEST_BIGQUERY_DATASET_ID")
	projectID, datasetID := envs[0], envs[1]

	ctx := context.Background()

	tblName := types.BQTableID(time.Now().Format("audit_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)
	gt.NoError(t, err)

	var schema bigquery.Schema

	t.Run("Table does not exist at first", func(t *testing.T) {
		md, err := client.GetMetadata(ctx)
		gt.NoError(t, err)
		gt.V(t, md).Equal(nil)
	})

	t.Run("Create table from inferred schema", func(t *testing.T) {
		schema = gt.R1(bqs.Infer(model.AuditEvent{})).NoError(t)
		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: schema,
		}))
	})

	t.Run("Insert audit event", func(t *testing.T) {
		ev := &model.AuditEvent{
			ID:         types.NewAuditID(),
			Timestamp:  time.Now().UTC(),
			RequestID:  "req-1",
			Operation:  model.AuditListRepositories,
			CallerID:   "auth0|test",
			StatusCode: 200,
		}
		gt.NoError(t, client.Insert(ctx, schema, ev))
	})
}
