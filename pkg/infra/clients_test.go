package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octogate/pkg/domain/mock"
	"github.com/m-mizutani/octogate/pkg/infra"
	"github.com/m-mizutani/octogate/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.UserRepository()).Equal(nil)
		gt.V(t, clients.BigQuery()).Equal(nil)
		gt.V(t, clients.AuditArchive()).Equal(nil)
	})

	t.Run("WithAuditArchive option sets archive storage", func(t *testing.T) {
		archive := &mock.ObjectStorageMock{}
		clients := infra.New(infra.WithAuditArchive(archive))
		gt.V(t, clients.AuditArchive()).Equal(archive)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("WithUserRepository option sets user repository", func(t *testing.T) {
		repo := memory.New()
		clients := infra.New(infra.WithUserRepository(repo))
		gt.V(t, clients.UserRepository()).Equal(repo)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		mockBQ := &mock.BigQueryMock{}
		repo := &mock.UserRepositoryMock{}

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithBigQuery(mockBQ),
			infra.WithUserRepository(repo),
		)

		gt.V(t, clients.GitHub()).Equal(mockGH)
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
		gt.V(t, clients.UserRepository()).Equal(repo)
	})
}
