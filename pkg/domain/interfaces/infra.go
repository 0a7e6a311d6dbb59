package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHub ObjectStorage

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/bigquery"
	"github.com/google/go-github/v53/github"

	"github.com/m-mizutani/octogate/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitHub calls the GitHub REST API on behalf of a user. Non-2xx responses and
// transport failures are returned as *types.UpstreamError.
type GitHub interface {
	ListRepositories(ctx context.Context, token types.GitHubAccessToken) ([]*github.Repository, error)
	ListBranches(ctx context.Context, token types.GitHubAccessToken, owner, repo string) ([]json.RawMessage, error)
	GetRepository(ctx context.Context, token types.GitHubAccessToken, owner, repo string) (*github.Repository, error)
}

// ObjectStorage writes whole objects into one bucket.
type ObjectStorage interface {
	PutObject(ctx context.Context, name string, data []byte) error
}
