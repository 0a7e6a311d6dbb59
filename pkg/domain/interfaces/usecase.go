package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
)

type UseCase interface {
	ListRepositories(ctx context.Context, caller types.CallerID) ([]*model.RepositorySummary, error)
	ListBranches(ctx context.Context, caller types.CallerID, owner, repo string) ([]json.RawMessage, error)
	ValidateRepository(ctx context.Context, caller types.CallerID, repositoryURL string) (*model.RepositoryValidation, error)
}
