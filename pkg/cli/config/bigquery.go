package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/octogate/pkg/domain/interfaces"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/infra/bq"
	"github.com/urfave/cli/v3"
)

// BigQuery configures the audit table. Auditing is off unless both project
// and dataset are set.
type BigQuery struct {
	projectID string
	datasetID string
	tableID   string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID of the audit table",
			Category:    "BigQuery",
			Destination: &x.projectID,
			Sources:     cli.EnvVars("OCTOGATE_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID of the audit table",
			Category:    "BigQuery",
			Destination: &x.datasetID,
			Sources:     cli.EnvVars("OCTOGATE_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID of the audit table",
			Category:    "BigQuery",
			Value:       "audit",
			Destination: &x.tableID,
			Sources:     cli.EnvVars("OCTOGATE_BIGQUERY_TABLE_ID"),
		},
	}
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ProjectID", x.projectID),
		slog.String("DatasetID", x.datasetID),
		slog.String("TableID", x.tableID),
	)
}

// NewClient returns nil without error when auditing is not configured.
func (x *BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	if x.projectID == "" || x.datasetID == "" {
		return nil, nil
	}

	client, err := bq.New(ctx,
		types.GoogleProjectID(x.projectID),
		types.BQDatasetID(x.datasetID),
		types.BQTableID(x.tableID),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}
