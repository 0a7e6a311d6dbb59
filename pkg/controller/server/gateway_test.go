package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octogate/pkg/controller/server"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/infra"
	"github.com/m-mizutani/octogate/pkg/infra/gh"
	"github.com/m-mizutani/octogate/pkg/repository/memory"
	"github.com/m-mizutani/octogate/pkg/usecase"
)

// newGateway wires the real use case, an in-memory user store and a GitHub
// client pointed at ghServer.
func newGateway(t *testing.T, ghServer *httptest.Server, users ...*model.User) (*server.Server, *memory.UserRepository) {
	t.Helper()

	repo := memory.New()
	for _, u := range users {
		gt.NoError(t, repo.PutUser(context.Background(), u))
	}

	baseURL := gt.R1(gh.ParseBaseURL(ghServer.URL)).NoError(t)
	ghClient := gt.R1(gh.New(gh.WithBaseURL(baseURL))).NoError(t)

	uc := usecase.New(infra.New(
		infra.WithGitHub(ghClient),
		infra.WithUserRepository(repo),
	))
	return server.New(uc, server.WithJWTSecret(testSecret), server.WithJWTIssuer(testIssuer)), repo
}

func TestGatewayRejectedToken(t *testing.T) {
	var ghCalls int
	ghServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ghCalls++
		gt.V(t, r.URL.Path).Equal("/user/repos")
		gt.V(t, r.Header.Get("Authorization")).Equal("token gho_revoked")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer ghServer.Close()

	token := types.GitHubAccessToken("gho_revoked")
	srv, repo := newGateway(t, ghServer, &model.User{
		ID:                "u1",
		IdentityID:        "caller-1",
		GitHubAccessToken: &token,
	})

	rec := doRequest(t, srv, http.MethodGet, "/repositories", "", signToken(t, validClaims("caller-1")))
	gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
	gt.V(t, decodeError(t, rec).Error).Equal(model.ErrorCodeGitHubAuthRequired)
	gt.V(t, ghCalls).Equal(1)

	user := gt.R1(repo.GetUser(context.Background(), types.UserKeyIdentityID, "caller-1")).NoError(t)
	gt.False(t, user.HasGitHubToken())

	// The cleared token is not sent again
	rec = doRequest(t, srv, http.MethodGet, "/repositories", "", signToken(t, validClaims("caller-1")))
	gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
	gt.V(t, decodeError(t, rec).Error).Equal(model.ErrorCodeGitHubAuthRequired)
	gt.V(t, ghCalls).Equal(1)
}

func TestGatewayValidateRepository(t *testing.T) {
	ghServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/repos/acme/widgets")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"widgets","full_name":"acme/widgets","default_branch":"main","visibility":"public","private":false,"forks_count":3}`))
	}))
	defer ghServer.Close()

	token := types.GitHubAccessToken("gho_valid")
	srv, _ := newGateway(t, ghServer, &model.User{
		ID:                "u1",
		IdentityID:        "caller-1",
		GitHubAccessToken: &token,
	})

	rec := doRequest(t, srv, http.MethodPost, "/repositories/validate",
		`{"repositoryUrl":"https://github.com/acme/widgets.git"}`, signToken(t, validClaims("caller-1")))
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal(`{"valid":true,"repository":{"id":1,"name":"widgets","full_name":"acme/widgets","default_branch":"main","visibility":"public"}}`)
}
